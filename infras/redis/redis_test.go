package redis_test

import (
	"context"
	"net"
	"testing"

	"hotelos/config"
	"hotelos/infras/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(addr string) *config.Config {
	host, port, _ := net.SplitHostPort(addr)

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = host
	cfg.Cache.Redis.Primary.Port = port
	cfg.Cache.Redis.TimeoutSeconds = 1

	return cfg
}

func TestNew(t *testing.T) {
	server := miniredis.RunT(t)

	client := redis.New(redisConfig(server.Addr()))
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(context.Background(), "room:101", "ok", 0).Err())
	assert.Equal(t, "ok", mustGet(t, server, "room:101"))
}

func TestNew_UnreachableIsNotFatal(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	client := redis.New(redisConfig(addr))
	t.Cleanup(func() { _ = client.Close() })

	assert.Error(t, client.Ping(context.Background()).Err())
}

func mustGet(t *testing.T, server *miniredis.Miniredis, key string) string {
	t.Helper()

	value, err := server.Get(key)
	require.NoError(t, err)

	return value
}
