package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tlogic-co/pqrs-service/internal/cases"
	"github.com/tlogic-co/pqrs-service/internal/dashboard"
	"github.com/tlogic-co/pqrs-service/internal/letter"
	"github.com/tlogic-co/pqrs-service/internal/observability"
	"github.com/tlogic-co/pqrs-service/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PQRS letter server",
	Long:  `Starts the HTTP server with the JSON API, the websocket generation channel and the embedded agent console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		logLevel := cfg.LogLevel
		if verbose {
			logLevel = "debug"
		}
		logger, err := observability.NewLogger(logLevel)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		service, err := buildService(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{Port: cfg.Port}, logger)

		store := cases.NewStore()
		api := cases.NewAPI(service, store, buildComposer(cfg), letter.NewDocxExporter(), logger)
		api.RegisterRoutes(srv.Router())
		dashboard.New(store, logger).RegisterRoutes(srv.Router())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down")
			srv.Shutdown(context.Background())
		}()

		logger.Info("starting pqrs server",
			zap.Int("port", cfg.Port),
			zap.String("provider", string(cfg.Provider)),
			zap.String("model", cfg.Model))
		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the configured HTTP port")
	rootCmd.AddCommand(serveCmd)
}
