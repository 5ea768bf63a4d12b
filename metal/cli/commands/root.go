package commands

import (
	"fmt"

	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/metal/env"
	"github.com/paragon0107/notive/metal/kernel"
	"github.com/paragon0107/notive/pkg/cli"
	"github.com/paragon0107/notive/pkg/portal"
	"github.com/spf13/cobra"
)

// Deps builds what the commands run against. Tests swap them for fakes.
type Deps struct {
	Blog  func(envPath string) (*repository.Blog, error)
	Serve func(envPath string) error
}

func DefaultDeps() Deps {
	return Deps{
		Blog:  localBlog,
		Serve: serve,
	}
}

func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(DefaultDeps())
}

func NewRootCmdWith(deps Deps) *cobra.Command {
	var envPath string
	var plain bool

	root := &cobra.Command{
		Use:           "notive",
		Short:         "Notion backed blog API",
		Long:          "Serve the blog API or read the Notion workspace behind it from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&envPath, "env", "e", "./.env", "Path to the .env file")
	root.PersistentFlags().BoolVar(&plain, "plain", false, "Disable coloured output")

	printer := func(cmd *cobra.Command) cli.Printer {
		return cli.Printer{Out: cmd.OutOrStdout(), Plain: plain}
	}

	blog := func() (*repository.Blog, error) {
		return deps.Blog(envPath)
	}

	root.AddCommand(
		newServeCmd(func() error { return deps.Serve(envPath) }),
		newCollectionsCmd(blog),
		newPostCmd(blog),
		newWarmCmd(blog, printer),
		newRemoteCmd(printer),
	)

	return root
}

// ignite loads the environment and turns the validation panic into an error.
func ignite(envPath string) (environment *env.Environment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	return kernel.Ignite(envPath, portal.GetDefaultValidator())
}

func localBlog(envPath string) (*repository.Blog, error) {
	environment, err := ignite(envPath)
	if err != nil {
		return nil, err
	}

	return kernel.MakeBlog(environment, kernel.MakeNotionClient(environment))
}

func serve(envPath string) error {
	environment, err := ignite(envPath)
	if err != nil {
		return err
	}

	app, err := kernel.MakeApp(environment, portal.GetDefaultValidator())
	if err != nil {
		return err
	}

	defer app.CloseLogs()
	defer app.Shutdown()

	return app.Serve()
}
