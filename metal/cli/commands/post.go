package commands

import (
	"fmt"

	"github.com/paragon0107/notive/content/repository"
	"github.com/spf13/cobra"
)

func newPostCmd(blog func() (*repository.Blog, error)) *cobra.Command {
	var htmlOnly bool

	cmd := &cobra.Command{
		Use:   "post <slug>",
		Short: "Print the detail payload of a published post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := blog()
			if err != nil {
				return err
			}

			detail, err := b.PostDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if htmlOnly {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), detail.HTML)

				return err
			}

			return writeJSON(cmd.OutOrStdout(), detail)
		},
	}

	cmd.Flags().BoolVar(&htmlOnly, "html", false, "Print only the rendered HTML body")

	return cmd
}
