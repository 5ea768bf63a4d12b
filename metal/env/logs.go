package env

import "log/slog"

type LogsEnvironment struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	Dir        string `validate:"required_with=DateFormat,logpattern"`
	DateFormat string `validate:"required_with=Dir,timelayout"`
}

func (e LogsEnvironment) UsesFiles() bool {
	return e.Dir != ""
}

func (e LogsEnvironment) SlogLevel() slog.Level {
	switch e.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
