package llogs

import "github.com/paragon0107/notive/metal/env"

type Driver interface {
	Close() bool
}

// Make picks the files driver when a logs directory is configured and the
// stdout JSON driver otherwise.
func Make(env *env.Environment) (Driver, error) {
	if env.Logs.UsesFiles() {
		return MakeFilesLogs(env)
	}

	return MakeStdoutLogs(env), nil
}
