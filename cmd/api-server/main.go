package main

import (
	"Inkwell/config"
	"Inkwell/pkg/database"
	"Inkwell/pkg/log"
	"Inkwell/pkg/server"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 可选
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = fmt.Sprintf("configs/config.%s.yaml", env)
	}
	cfg := config.New(path)
	log.Setup(cfg.Log)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "Inkwell authoring API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
