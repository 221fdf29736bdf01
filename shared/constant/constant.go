package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyLocale contextKey = "locale"
)

const (
	RequestParamLocale = "locale"
	RequestMaxMemory   = 1 << 20 // 1 MB
)

const (
	DateOnlyFormat = "2006-01-02"
	SlotFormat     = "15:04"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"
	OtelQueryAttributeKey   = "db.query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAcceptLanguage     = "Accept-Language"
	RequestHeaderVary               = "Vary"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorMissingFields        = "Missing required fields"
	ResponseErrorInvalidBody          = "Invalid request body"
	ResponseErrorInternal             = "Internal server error"
	ResponseErrorNotFound             = "Not found"
	ResponseMessageReservationOK      = "Reservation received successfully"
	ResponseMessageHealthy            = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CookieSession = "lg_session"
)
