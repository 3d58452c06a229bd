package di

import (
	"context"
	"salon/infras/otel"
	"salon/internal/domains/reservation/service"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// provideViewCache builds the view cache and drops views left behind by a previous process.
func provideViewCache(client *goRedis.Client, o otel.Otel) cache.RedisCache {
	c := cache.NewRedisCache(client, o)

	pattern := shared.BuildCacheKey(service.CachePrefix, constant.Asterix)
	if err := c.Clear(context.Background(), pattern); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("failed to clear cached views")
	}

	return c
}
