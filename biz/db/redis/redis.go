package redis

import (
	"context"
	"fmt"

	"gymweb/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Init() {
	conf := config.GetRedisConf()

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		panic(err)
	}

	hlog.Infof("redis connected: %s:%d/%d", conf.IP, conf.Port, conf.DB)
	redisClient = client
}

func GetRedisClient() *redis.Client {
	return redisClient
}
