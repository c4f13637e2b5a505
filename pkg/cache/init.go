package cache

import (
	"context"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/vidloom/vidloom/config"
)

var (
	Client  *redis.Client
	RedSync *redsync.Redsync
)

func Init() {
	Client = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	if err := Client.Ping(context.Background()).Err(); err != nil {
		panic(err)
	}
	RedSync = redsync.New(goredis.NewPool(Client))
}
