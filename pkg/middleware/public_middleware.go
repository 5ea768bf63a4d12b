package middleware

import (
	"context"
	"fmt"
	baseHttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/limiter"
	"github.com/paragon0107/notive/pkg/portal"
)

const PublicRateWindow = time.Minute
const PublicRateLimit = 120

// PublicMiddleware guards the read-only blog API. It stamps every request with
// a request id (kept from X-Request-ID when the caller sends a valid one) and
// applies a per-client sliding-window rate limit.
type PublicMiddleware struct {
	rateLimiter *limiter.MemoryLimiter
	newID       func() string
}

func MakePublicMiddleware() PublicMiddleware {
	return PublicMiddleware{
		rateLimiter: limiter.NewMemoryLimiter(PublicRateWindow, PublicRateLimit),
		newID:       func() string { return uuid.NewString() },
	}
}

func (p PublicMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		if err := p.GuardDependencies(); err != nil {
			return err
		}

		reqID := p.requestID(r)
		clientIP := portal.ParseClientIP(r)

		ctx := context.WithValue(r.Context(), portal.RequestIDKey, reqID)
		ctx = context.WithValue(ctx, portal.ClientIPKey, clientIP)
		r = r.WithContext(ctx)

		w.Header().Set(portal.RequestIDHeader, reqID)

		allowed, remaining := p.rateLimiter.Allow(clientIP)
		w.Header().Set(portal.RateLimitRemainingHeader, strconv.Itoa(remaining))

		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(PublicRateWindow/time.Second)))

			return endpoint.TooManyRequests(
				"Too many requests.",
				map[string]any{"client_ip": clientIP, "request_id": reqID},
			)
		}

		return next(w, r)
	}
}

func (p PublicMiddleware) requestID(r *baseHttp.Request) string {
	incoming := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

	if parsed, err := uuid.Parse(incoming); err == nil {
		return parsed.String()
	}

	return p.newID()
}

func (p PublicMiddleware) GuardDependencies() *endpoint.ApiError {
	missing := []string{}

	if p.rateLimiter == nil {
		missing = append(missing, "rateLimiter")
	}

	if p.newID == nil {
		missing = append(missing, "newID")
	}

	if len(missing) > 0 {
		err := fmt.Errorf("public middleware missing dependencies: %s", strings.Join(missing, ","))

		return endpoint.LogInternalError("public middleware missing dependencies", err)
	}

	return nil
}
