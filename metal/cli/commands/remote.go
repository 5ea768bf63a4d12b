package commands

import (
	"errors"
	"fmt"

	"github.com/paragon0107/notive/pkg/blogapi"
	"github.com/paragon0107/notive/pkg/cli"
	"github.com/spf13/cobra"
)

func newRemoteCmd(printer func(*cobra.Command) cli.Printer) *cobra.Command {
	var baseURL string

	remote := &cobra.Command{
		Use:   "remote",
		Short: "Read a running notive API",
	}

	remote.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API")

	store := func() *blogapi.Store {
		return blogapi.NewStore(blogapi.NewClient(baseURL, nil))
	}

	remote.AddCommand(
		&cobra.Command{
			Use:   "post <slug>",
			Short: "Fetch a post detail from the API",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				detail, err := store().EnsurePostDetail(cmd.Context(), args[0])
				if err != nil {
					return remoteError(err)
				}

				return writeJSON(cmd.OutOrStdout(), detail)
			},
		},
		&cobra.Command{
			Use:   "posts",
			Short: "List the published posts known to the API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s := store()

				if err := s.EnsureBootstrap(cmd.Context()); err != nil {
					return remoteError(err)
				}

				p := printer(cmd)
				for _, post := range s.Posts() {
					p.Cyanln(fmt.Sprintf("%s  %s", post.Date, post.Slug))
					p.Println("  " + post.Title)
				}

				return nil
			},
		},
	)

	return remote
}

func remoteError(err error) error {
	var reqErr *blogapi.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("api responded %d: %s", reqErr.Status, reqErr.Message)
	}

	return err
}
