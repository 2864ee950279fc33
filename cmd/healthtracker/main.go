package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/health-tracker/internal/config"
	"github.com/deppfellow/health-tracker/internal/database"
	"github.com/deppfellow/health-tracker/internal/handler"
	"github.com/deppfellow/health-tracker/internal/logger"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/router"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/deppfellow/health-tracker/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const DefaultContextTimeout = 30

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(serve)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(cfg *config.Config, log *zerolog.Logger, _ *logger.LoggerService) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
				defer cancel()
				return database.Migrate(ctx, log, cfg.Database.DSN())
			})
		},
	}

	root := &cobra.Command{
		Use:           "healthtracker",
		Short:         "Health tracker REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.AddCommand(serveCmd, migrateCmd)

	return root
}

type appFunc func(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error

// withApp loads config and the logger, runs fn and logs its error.
func withApp(fn appFunc) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		// No logger yet.
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("failed to load config")
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if err := fn(cfg, &log, loggerService); err != nil {
		log.Error().Err(err).Msg("exiting")
		return err
	}
	return nil
}

func serve(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	if cfg.Primary.Env != "local" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Migrate(ctx, log, cfg.Database.DSN())
		cancel()
		if err != nil {
			return err
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)

	handlers := handler.NewHandlers(srv, repos, service.NewService(srv))
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		err = errors.Join(err, shutdownErr)
	}

	log.Info().Msg("server exited properly")
	return err
}
