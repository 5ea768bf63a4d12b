package env

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Environment struct {
	App     AppEnvironment    `validate:"required"`
	Logs    LogsEnvironment   `validate:"required"`
	Network NetEnvironment    `validate:"required"`
	Notion  NotionEnvironment `validate:"required"`
	Site    SiteEnvironment   `validate:"required"`
	Sentry  SentryEnvironment
	Cache   CacheEnvironment
	Tracing TracingEnvironment
}

// SecretsDir defines where secret files are read from. It can be overridden in
// tests.
var SecretsDir = "/run/secrets"

func GetEnvVar(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvVarOr(key, fallback string) string {
	if value := GetEnvVar(key); value != "" {
		return value
	}

	return fallback
}

// GetIntEnvVar returns fallback when the variable is unset and an error when
// it holds something other than an integer.
func GetIntEnvVar(key string, fallback int) (int, error) {
	raw := GetEnvVar(key)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}

func GetSecretOrEnv(secretName string, envVarName string) string {
	secretPath := filepath.Join(SecretsDir, secretName)

	content, err := os.ReadFile(secretPath)
	if err == nil {
		return strings.TrimSpace(string(content))
	}

	return GetEnvVar(envVarName)
}
