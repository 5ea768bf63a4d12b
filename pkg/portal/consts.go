package portal

const DatesLayout = "2006-01-02"

// ---- Middleware / HTTP

const RequestIDHeader = "X-Request-ID"
const ForwardedForHeader = "X-Forwarded-For"
const RateLimitRemainingHeader = "X-RateLimit-Remaining"

// ---- Middleware / Context

type contextKey string

const RequestIDKey contextKey = "request.id"
const ClientIPKey contextKey = "request.client_ip"
