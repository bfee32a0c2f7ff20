package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BuzzLog/configs"
	"droscher.com/BuzzLog/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if err = repo.Migrate(); err != nil {
		return err
	}

	logger.Info("migrated database", zap.String("driver", conf.DB.Driver), zap.Bool("debug", ctx.Debug))

	return nil
}
