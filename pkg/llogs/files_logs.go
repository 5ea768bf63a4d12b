package llogs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/paragon0107/notive/metal/env"
)

// FilesLogs writes text records to a dated file, one file per start-up day.
type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
}

// PathFor expands the Dir pattern with the UTC date of now.
func PathFor(logs env.LogsEnvironment, now time.Time) string {
	return fmt.Sprintf(logs.Dir, now.UTC().Format(logs.DateFormat))
}

func MakeFilesLogs(env *env.Environment) (Driver, error) {
	return openFilesLogs(PathFor(env.Logs, time.Now()), env)
}

func openFilesLogs(path string, env *env.Environment) (FilesLogs, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return FilesLogs{}, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return FilesLogs{}, fmt.Errorf("open log file %s: %w", path, err)
	}

	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level:     env.Logs.SlogLevel(),
		AddSource: env.Logs.SlogLevel() == slog.LevelDebug,
	})).With("app", env.App.Name)

	slog.SetDefault(logger)

	return FilesLogs{path: path, file: file, logger: logger}, nil
}

func (f FilesLogs) Path() string {
	return f.path
}

// Close releases the file and points the default logger back at stderr.
func (f FilesLogs) Close() bool {
	if f.file == nil {
		return true
	}

	err := f.file.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err != nil {
		slog.Error("close log file", "path", f.path, "error", err)

		return false
	}

	return true
}
