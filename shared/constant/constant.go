package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyBearerToken contextKey = "bearer_token"
	ContextKeyRequestID   contextKey = "request_id"
)

const (
	RequestParamID         = "id"
	RequestParamRoomNumber = "roomNumber"
	RequestParamNIC        = "nic"
	RequestParamQuery      = "query"
	RequestParamSearch     = "search"
	RequestParamStatus     = "status"
	RequestParamSort       = "sort"
	RequestParamRoomTypeID = "roomTypeId"
	RequestParamFloor      = "floor"
	RequestParamRoomStatus = "roomStatusId"
	RequestParamGuestID    = "guestId"
	RequestParamResource   = "resource"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelWizardScopeName     = "wizard"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	BearerPrefix    = "Bearer "
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

const (
	Asterix = "*"
	Empty   = ""
)
