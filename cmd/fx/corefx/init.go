package corefx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/infra"
	"tripmate/pkg/config"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideDB, provideTokenMaker, provideSocialVerifier, provideGenerator)

func provideConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}

func provideTokenMaker(cfg *config.Config) *utils.TokenMaker {
	return utils.NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL)
}

func provideSocialVerifier() utils.SocialVerifier {
	return utils.NewGoogleVerifier()
}

// provideGenerator returns nil when no API key is configured; the
// recommendation service then serves local templates only.
func provideGenerator(cfg *config.Config) utils.Generator {
	if cfg.AIAPIKey == "" {
		logger.Log.Infow("no AI API key configured, using local generator only")
		return nil
	}
	gen, err := utils.NewGenerator(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel)
	if err != nil {
		logger.Log.Warnw("remote generator init failed, using local generator only", "err", err)
		return nil
	}
	return gen
}
