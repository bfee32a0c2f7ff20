package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BuzzLog/configs"
	"droscher.com/BuzzLog/pkg/repository"
)

// newLogger builds the development logger used by the one-shot commands. It only shows
// warnings unless debug is set, so that command output stays readable.
func newLogger(debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

type app struct {
	conf   *configs.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// openApp loads the configuration and opens a migrated store.
func openApp(configFile string, ctx *Context) (*app, error) {
	logger := newLogger(ctx.Debug)

	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, err
	}

	if err = repo.Migrate(); err != nil {
		_ = repo.Close()

		return nil, err
	}

	return &app{conf: conf, repo: repo, logger: logger}, nil
}

func (a *app) close() {
	if err := a.repo.Close(); err != nil {
		a.logger.Warn("error closing database", zap.Error(err))
	}

	_ = a.logger.Sync()
}
