package llogs

import (
	"io"
	"log/slog"
	"os"

	"github.com/paragon0107/notive/metal/env"
)

type StdoutLogs struct {
	logger *slog.Logger
}

func MakeStdoutLogs(env *env.Environment) Driver {
	return makeStdoutLogs(os.Stdout, env)
}

func makeStdoutLogs(w io.Writer, env *env.Environment) StdoutLogs {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: env.Logs.SlogLevel(),
	})).With("app", env.App.Name)

	slog.SetDefault(logger)

	return StdoutLogs{logger: logger}
}

func (s StdoutLogs) Close() bool {
	return true
}
