package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/google/uuid"
)

const (
	cacheKeyRateLimit = "limiter"
	rateLimitOperator = "operator"
	rateLimitClient   = "client"
)

// unlimitedPaths are not counted. A guest search parks until its debounce fires and is
// superseded by the next keystroke, so counting it would lock out an operator who types.
var unlimitedPaths = []string{
	"/health",
	"/guests/search",
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable || isUnlimited(r.URL.Path) {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := a.rateLimitKey(r)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				// a broken cache never blocks the console
				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
			if err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitKey counts per operator when a bearer token is sent, since every desk of a hotel
// usually shares one public address. The token itself never reaches the cache, only a
// name-based uuid of it.
func (a *appMiddleware) rateLimitKey(r *http.Request) string {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get(constant.RequestHeaderAuthorization), constant.BearerPrefix))
	if token != "" {
		return shared.BuildCacheKey(cacheKeyRateLimit, rateLimitOperator, uuid.NewSHA1(uuid.NameSpaceOID, []byte(token)).String())
	}

	return shared.BuildCacheKey(cacheKeyRateLimit, rateLimitClient, a.getClientIP(r), a.getUA(r))
}

func isUnlimited(path string) bool {
	path = strings.TrimRight(path, "/")

	for _, suffix := range unlimitedPaths {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// first hop is the client
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
