package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/KNset/blog-bot/core/bootstrap"
	corecmd "github.com/KNset/blog-bot/core/cmd"
	coredatabase "github.com/KNset/blog-bot/core/database"
	"github.com/KNset/blog-bot/internal/bot"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "configs/config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return bot.LoadConfig(path)
		},
		Bootstrap: func(ctx context.Context, carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg, ok := carrier.(*bot.Config)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", carrier)
			}

			res, err := bootstrap.Run(bootstrap.Options{
				Config: cfg.CoreConfig(),
				Database: coredatabase.Config{
					Path:           cfg.Core.Storage.Path,
					MaxConnections: cfg.Core.Storage.MaxConnections,
					BusyTimeoutMS:  cfg.Core.Storage.BusyTimeoutMS,
				},
			})
			if err != nil {
				return nil, err
			}

			return bot.New(ctx, cfg, res.DB)
		},
	})
	if err != nil {
		log.Fatalf("blogbot: %v", err)
	}
}
