package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_changer_pos/internal/adapters/export/xlsx"
	"github.com/SscSPs/money_changer_pos/internal/adapters/memory"
	"github.com/SscSPs/money_changer_pos/internal/adapters/static"
	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
	"github.com/SscSPs/money_changer_pos/internal/core/services"
	"github.com/SscSPs/money_changer_pos/internal/handlers"
	"github.com/SscSPs/money_changer_pos/internal/middleware"
	"github.com/SscSPs/money_changer_pos/internal/platform/config"
	"github.com/SscSPs/money_changer_pos/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the counter web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (overrides PORT)")
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	currencyRepo, err := static.NewCurrencyRepository()
	if err != nil {
		logger.Error("Failed to load currency table", slog.String("error", err.Error()))
		return err
	}

	repos := portsrepo.RepositoryProvider{
		CurrencyRepo:  currencyRepo,
		SessionRepo:   memory.NewSessionRepository(cfg.SessionIdleTimeout),
		ReceiptWriter: xlsx.NewReceiptWriter(),
	}

	var sessionOptions []services.SessionServiceOption
	if posthogClient.IsInitialized() {
		sessionOptions = append(sessionOptions, services.WithEventTracker(posthogClient))
	}
	container := services.NewServiceContainer(repos, sessionOptions...)

	r, err := newRouter(cfg, logger, container, posthogClient)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("production", cfg.IsProduction))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, container *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware (logging, recovery, rate limiting, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.RateLimit(rateLimiter, "/health"),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return nil, err
	}
	return r, nil
}
