package env

import "time"

const DefaultCacheTTLSeconds = 30

type CacheEnvironment struct {
	TTLSeconds int    `validate:"gte=0,lte=86400"`
	WarmCron   string `validate:"omitempty,cron"`
}

func (e CacheEnvironment) TTL() time.Duration {
	return time.Duration(e.TTLSeconds) * time.Second
}

func (e CacheEnvironment) ShouldWarm() bool {
	return e.WarmCron != ""
}
