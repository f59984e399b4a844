package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// If one connection needs to be broken up new function should be introduced
// example: SessionsReplicaClient()

type Factory struct {
	sessions     *redis.Client
	lookupsCache *redis.Client
}

func New() *Factory {
	opt, err := redis.ParseURL(os.Getenv("SESSIONS_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	sessions := redis.NewClient(opt)

	opt, err = redis.ParseURL(os.Getenv("LOOKUPS_CACHE_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	lookupsCache := redis.NewClient(opt)

	return &Factory{
		sessions:     sessions,
		lookupsCache: lookupsCache,
	}
}

func (f *Factory) SessionsClient() *redis.Client {
	return f.sessions
}

func (f *Factory) LookupsCacheClient() *redis.Client {
	return f.lookupsCache
}
