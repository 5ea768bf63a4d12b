package commands

import (
	"github.com/paragon0107/notive/content/repository"
	"github.com/spf13/cobra"
)

func newCollectionsCmd(blog func() (*repository.Blog, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "Resolve the collection ids under the root page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := blog()
			if err != nil {
				return err
			}

			dbMap, err := b.Collections.Resolve(cmd.Context())
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), dbMap)
		},
	}
}
