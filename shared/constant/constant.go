package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUsername contextKey = "username"
)

const (
	RequestParamID    = "id"
	RequestParamOrder = "order"
)

const (
	OrderDesc = "desc"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseStatusOK                  = "ok"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
