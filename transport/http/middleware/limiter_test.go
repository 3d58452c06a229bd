package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	"salon/shared/cache"
	cacheMocks "salon/shared/cache/mocks"
	"salon/shared/constant"
	"salon/transport/http/middleware"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "localhost"
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 30

	return cfg
}

func serveLimited(t *testing.T, cfg *config.Config, redisCache cache.RedisCache, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit()(next).ServeHTTP(rec, req)

	return rec
}

func storedCount(count int) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, value any) error {
		*value.(*int) = count

		return nil
	}
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		cfg           *config.Config
		headers       map[string]string
		remoteAddr    string
		setup         func(m *cacheMocks.MockRedisCache)
		wantStatus    int
		wantRemaining string
	}{
		{
			name:       "disabled",
			cfg:        limiterConfig(false),
			setup:      func(*cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "first request from forwarded client",
			cfg:  limiterConfig(true),
			headers: map[string]string{
				constant.RequestHeaderForwardedFor: " 203.0.113.7 , 10.0.0.1",
				constant.RequestHeaderUserAgent:    "kiosk",
			},
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), "limiter:203.0.113.7:kiosk", gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), "limiter:203.0.113.7:kiosk", 1, 30).Return(nil)
			},
			wantStatus:    http.StatusNoContent,
			wantRemaining: "1",
		},
		{
			name:       "real ip and unknown agent",
			cfg:        limiterConfig(true),
			headers:    map[string]string{constant.RequestHeaderRealIP: "198.51.100.2"},
			remoteAddr: "10.0.0.9:5555",
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), "limiter:198.51.100.2:unknown", gomock.Any()).DoAndReturn(storedCount(1))
				m.EXPECT().Save(gomock.Any(), "limiter:198.51.100.2:unknown", 2, 30).Return(nil)
			},
			wantStatus:    http.StatusNoContent,
			wantRemaining: "0",
		},
		{
			name:       "over the limit is not stored",
			cfg:        limiterConfig(true),
			remoteAddr: "192.0.2.4:1234",
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), "limiter:192.0.2.4:unknown", gomock.Any()).DoAndReturn(storedCount(2))
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "cache failure lets the request through",
			cfg:        limiterConfig(true),
			remoteAddr: "192.0.2.4:1234",
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			tt.setup(m)

			req := httptest.NewRequest(http.MethodGet, "/v1/admin/overview", nil)
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := serveLimited(t, tt.cfg, m, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
