package env

type SentryEnvironment struct {
	DSN string `validate:"omitempty,url"`
	CSP string `validate:"omitempty"`
}

func (e SentryEnvironment) Enabled() bool {
	return e.DSN != ""
}
