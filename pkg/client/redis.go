package client

import (
	"Inkwell/config"
	"Inkwell/pkg/log"
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置 redis 时返回 nil, 依赖方需自行降级
func NewRedisClient(conf *config.Config) *redis.Client {
	if conf.Redis == nil || conf.Redis.Address == "" {
		log.L.Warn("redis not configured, review lock and view dedup disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.Error(err))
	}
	log.L.Info("redis client success")
	return client
}
