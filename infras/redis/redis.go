package redis

import (
	"context"
	"net"
	"time"

	"hotelos/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary redis. Redis only backs caching and rate limiting, so an unreachable
// server is fatal only when CACHE_REDIS_REQUIRED is set; otherwise reads fall through to postgres.
func New(config *config.Config) *goRedis.Client {
	redisConfig := config.Cache.Redis
	timeout := time.Duration(max(1, redisConfig.TimeoutSeconds)) * time.Second

	client := goRedis.NewClient(&goRedis.Options{
		Addr:         net.JoinHostPort(redisConfig.Primary.Host, redisConfig.Primary.Port),
		Password:     redisConfig.Primary.Password,
		DB:           redisConfig.Primary.DB,
		PoolSize:     redisConfig.PoolSize,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if redisConfig.Required {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}

		log.Warn().Err(err).Msg("Redis unreachable, running without cache")

		return client
	}

	log.Info().
		Int("db", redisConfig.Primary.DB).
		Str("host", redisConfig.Primary.Host).
		Str("port", redisConfig.Primary.Port).
		Msg("Connected to Redis")

	return client
}
