package commands

import (
	"fmt"
	"time"

	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/pkg/cli"
	"github.com/spf13/cobra"
)

func newWarmCmd(blog func() (*repository.Blog, error), printer func(*cobra.Command) cli.Printer) *cobra.Command {
	return &cobra.Command{
		Use:   "warm",
		Short: "Load the bootstrap payload once, end to end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := blog()
			if err != nil {
				return err
			}

			started := time.Now()

			if err := b.Warm(cmd.Context()); err != nil {
				return err
			}

			printer(cmd).Successln(fmt.Sprintf("Bootstrap loaded in %s.", time.Since(started).Round(time.Millisecond)))

			return nil
		},
	}
}
