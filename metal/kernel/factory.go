package kernel

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/metal/env"
	"github.com/paragon0107/notive/pkg/llogs"
	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/portal"
	"github.com/paragon0107/notive/pkg/scheduler"
)

const warmerTimeout = 2 * time.Minute

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:              env.Sentry.DSN,
		Debug:            !env.App.IsProduction(),
		Environment:      env.App.Type,
		Release:          portal.ServiceVersion,
		AttachStacktrace: true,
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.Make(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeTracer(env *env.Environment) *portal.TracerProvider {
	tp, err := portal.NewTracerProvider(env)

	if err != nil {
		slog.Warn("tracing disabled", "error", err)

		return &portal.TracerProvider{Env: env}
	}

	return tp
}

func MakeNotionClient(env *env.Environment) *notion.Client {
	return notion.NewClient(
		env.Notion.Token,
		notion.WithBaseURL(env.Notion.BaseURL),
		notion.WithVersion(env.Notion.Version),
	)
}

// MakeSite merges the environment names over the built-in defaults and then
// applies the optional YAML file on top.
func MakeSite(env *env.Environment) (content.Site, error) {
	site := content.DefaultSite()
	site.Name = env.Site.Name
	site.Description = env.Site.Description
	site.ProfileRole = env.Site.ProfileRole

	return content.LoadSite(env.Site.DefaultsFile, site)
}

func MakeBlog(env *env.Environment, api notion.API) (*repository.Blog, error) {
	site, err := MakeSite(env)
	if err != nil {
		return nil, err
	}

	source := content.NewSource(api, env.Notion.PageID, env.Cache.TTL(), site)

	return repository.NewBlog(source), nil
}

// MakeWarmer returns nil when no warm schedule is configured.
func MakeWarmer(env *env.Environment, blog *repository.Blog) (*scheduler.Scheduler, error) {
	if !env.Cache.ShouldWarm() {
		return nil, nil
	}

	return scheduler.New(
		env.Cache.WarmCron,
		func(ctx context.Context) error {
			return blog.Warm(ctx)
		},
		scheduler.WithName("cache-warmer"),
		scheduler.WithJobTimeout(warmerTimeout),
		scheduler.WithRunOnStart(),
	)
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	ttl, err := env.GetIntEnvVar("ENV_CACHE_TTL_SECONDS", env.DefaultCacheTTLSeconds)
	if err != nil {
		panic(errorSuffix + "invalid value for ENV_CACHE_TTL_SECONDS: " + err.Error())
	}

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVarOr("ENV_APP_LOG_LEVEL", "info"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	notionEnv := env.NotionEnvironment{
		Token:   env.GetSecretOrEnv("notion_token", "ENV_NOTION_TOKEN"),
		PageID:  env.GetEnvVar("ENV_NOTION_PAGE_ID"),
		BaseURL: env.GetEnvVarOr("ENV_NOTION_API_URL", env.DefaultNotionBaseURL),
		Version: env.GetEnvVarOr("ENV_NOTION_VERSION", env.DefaultNotionVersion),
	}

	cacheEnv := env.CacheEnvironment{
		TTLSeconds: ttl,
		WarmCron:   env.GetEnvVar("ENV_CACHE_WARM_CRON"),
	}

	siteEnv := env.SiteEnvironment{
		Name:         env.GetEnvVarOr("ENV_SITE_NAME", env.DefaultSiteName),
		Description:  env.GetEnvVarOr("ENV_SITE_DESCRIPTION", env.DefaultSiteDescription),
		ProfileRole:  env.GetEnvVarOr("ENV_SITE_PROFILE_ROLE", env.DefaultSiteProfileRole),
		DefaultsFile: env.GetEnvVar("ENV_SITE_DEFAULTS_FILE"),
	}

	tracingEnv := env.NewTracingEnvironment()

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs Credentials] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(notionEnv); err != nil {
		panic(errorSuffix + "invalid [NOTION] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(cacheEnv); err != nil {
		panic(errorSuffix + "invalid [CACHE] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(siteEnv); err != nil {
		panic(errorSuffix + "invalid [SITE] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(tracingEnv); err != nil {
		panic(errorSuffix + "invalid [TRACING] model: " + validate.GetErrorsAsJson())
	}

	blog := &env.Environment{
		App:     app,
		Logs:    logsEnv,
		Network: netEnv,
		Notion:  notionEnv,
		Site:    siteEnv,
		Sentry:  sentryEnv,
		Cache:   cacheEnv,
		Tracing: tracingEnv,
	}

	if _, err := validate.Rejects(blog); err != nil {
		panic(errorSuffix + "invalid [notive] model: " + validate.GetErrorsAsJson())
	}

	return blog
}
