package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BuzzLog/configs"
	"droscher.com/BuzzLog/pkg/auth"
	"droscher.com/BuzzLog/pkg/common/clock"
	"droscher.com/BuzzLog/pkg/integrations"
	"droscher.com/BuzzLog/pkg/repository"
	"droscher.com/BuzzLog/pkg/server"
	"droscher.com/BuzzLog/pkg/server/grpc/api/v1/apiv1connect"
	"droscher.com/BuzzLog/pkg/streak"
	"droscher.com/BuzzLog/pkg/summary"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
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
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	authManager := auth.NewAuthManager(conf.Auth, logger)
	if !authManager.Enabled() {
		logger.Warn("no Auth.SecretKey configured, API calls are not authenticated")
	}

	interceptors := connect.WithInterceptors(authManager.GrpcAuthInterceptor())

	systemClock := &clock.DefaultClock{}
	streaks := streak.NewCalculator(repo, systemClock, logger)
	summaries := summary.NewService(repo, streaks, systemClock, logger)

	mux := http.NewServeMux()

	path, handler := apiv1connect.NewDrinkServiceHandler(server.NewDrinkServer(repo, integrations.FromConfig(conf.Integrations.Beer, logger), logger), interceptors)
	mux.Handle(path, handler)

	path, handler = apiv1connect.NewStatsServiceHandler(server.NewStatsServer(summaries, streaks, conf.Options, logger), interceptors)
	mux.Handle(path, handler)

	// the API messages are plain JSON, so only the health service can be described
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker(apiv1connect.DrinkServiceName, apiv1connect.StatsServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("serving", zap.String("address", address), zap.String("driver", conf.DB.Driver))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"authorization",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"origin",
			"user-agent",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge: 86400, //nolint:mnd // 24 hours
	})

	return corsOpts.Handler(mux)
}
