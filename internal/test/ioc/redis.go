package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cache ecache.Cache
	rc    redis.Cmdable
)

func InitRedis() redis.Cmdable {
	if rc != nil {
		return rc
	}
	rc = redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	return rc
}

func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(InitRedis()),
		Namespace: "coach:",
	}
	return cache
}
