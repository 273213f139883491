//go:build wireinject
// +build wireinject

package main

import (
	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/handler"
	"Inkwell/pkg/client"
	"Inkwell/pkg/database"
	"Inkwell/pkg/server"
	"Inkwell/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Book), "*"),
		wire.Struct(new(handler.Chapter), "*"),
		wire.Struct(new(handler.Card), "*"),
		wire.Struct(new(handler.Review), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}
