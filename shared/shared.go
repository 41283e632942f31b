package shared

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"frontdesk/shared/cache"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToInt returns nil for an empty or malformed value.
func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends the encoded query so each parameter set gets its own entry.
// url.Values.Encode sorts by key, which keeps the key stable.
func BuildCacheKeyWithQuery(prefix string, query url.Values) string {
	encoded := query.Encode()
	if encoded == "" {
		return prefix
	}

	return BuildCacheKey(prefix, encoded)
}

// InvalidateCaches drops every entry under prefix. Errors are logged, never returned.
func InvalidateCaches(ctx context.Context, c cache.Cache, prefix string) {
	if err := c.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")

		return
	}

	log.Debug().Str("prefix", prefix).Msg("caches invalidated")
}

// SaveCache stores a read-through result before the caller returns, so an invalidation issued
// after the read can never be overwritten by it. Errors are logged, never returned.
func SaveCache(ctx context.Context, c cache.Cache, key string, value any, ttl int) {
	if err := c.Save(ctx, key, value, ttl); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
