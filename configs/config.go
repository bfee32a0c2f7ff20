package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"

	"droscher.com/BuzzLog/pkg/model"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DB struct {
	Driver             string `default:"sqlite"`
	Path               string
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Integrations struct {
	Beer []string `default:"untappd_web"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
	Options      model.Options
}

type Auth struct {
	SecretKey string
	Audience  string
}

const (
	envPrefix     = "BUZZLOG" // env prefix for env vars
	appDir        = "BuzzLog"
	defaultDBFile = "buzzlog.db"
)

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.DB.resolve(); err != nil {
		return nil, err
	}

	if err = ValidateOptions(config.Options); err != nil {
		return nil, err
	}

	return &config, nil
}

func (db *DB) resolve() error {
	switch db.Driver {
	case DriverSQLite:
		if len(db.Path) == 0 {
			db.Path = defaultDBPath()
		}
	case DriverPostgres:
		var missing []string

		if len(db.Host) == 0 {
			missing = append(missing, "DB.Host")
		}

		if len(db.Password) == 0 {
			missing = append(missing, "DB.Password")
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s required for postgres", ErrConfiguration, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: unknown DB.Driver %q", ErrConfiguration, db.Driver)
	}

	return nil
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	return filepath.Join(dir, appDir, defaultDBFile)
}
