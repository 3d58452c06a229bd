package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// fixedWindow counts requests per key in Redis. The counter expires window seconds after its last
// write, so a steady caller stays limited until it backs off.
type fixedWindow struct {
	cache  cache.RedisCache
	limit  int
	window int
}

// take counts one request against key and returns the count including it.
func (f fixedWindow) take(ctx context.Context, key string) (int, error) {
	var count int

	err := f.cache.Get(ctx, key, &count)
	if err != nil && !errors.Is(err, cache.Nil) {
		return 0, err
	}

	count++

	if count > f.limit {
		return count, nil
	}

	if err := f.cache.Save(ctx, key, count, f.window); err != nil {
		return 0, err
	}

	return count, nil
}

// RateLimit is a no-op unless the limiter is enabled and Redis is configured. Cache failures let the
// request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	cfg := a.config.App.RateLimiter
	if !cfg.Enable || a.config.Cache.Redis.Primary.Host == constant.Empty {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := fixedWindow{cache: a.cache, limit: cfg.MaxRequests, window: cfg.WindowSeconds}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count, err := limiter.take(r.Context(), clientKey(r))
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			if count > limiter.limit {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.limit))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(limiter.limit-count))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.window))

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies a caller by address and user agent.
func clientKey(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = unknownUserAgent
	}

	return shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), ua)
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != constant.Empty {
			return first
		}
	}

	if xri := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); xri != constant.Empty {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
