package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiaot623/snippetagent/internal/adapter/llm"
	"github.com/xiaot623/snippetagent/internal/auth"
	"github.com/xiaot623/snippetagent/internal/config"
	"github.com/xiaot623/snippetagent/internal/logger"
	"github.com/xiaot623/snippetagent/internal/policy"
	"github.com/xiaot623/snippetagent/internal/repository"
	"github.com/xiaot623/snippetagent/internal/service"
	server "github.com/xiaot623/snippetagent/internal/transport/http"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "snippetagent",
	Short: "Code snippet explainer agent service",
	Long: `snippetagent serves one bearer-protected endpoint that explains code snippets
with a hosted language model and keeps the conversation in a messages table.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the messages table on the configured database",
	RunE:  runMigrate,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// setup loads configuration and installs the process logger.
func setup() (*config.Config, error) {
	cfg := config.Load()

	l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return nil, err
	}
	logger.Set(l)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.L().Sync()

	logger.Info("Starting snippet agent",
		zap.String("version", version),
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database_driver", cfg.DatabaseDriver),
		zap.String("llm_base_url", cfg.LLMBaseURL),
		zap.String("llm_model", cfg.LLMModel),
	)
	if cfg.APIBearerToken == "" {
		logger.Warn("API_BEARER_TOKEN is not set; every request will fail with a configuration error")
	}

	ctx := context.Background()

	// Initialize store
	db, err := repository.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize store", zap.Error(err))
		return err
	}
	defer db.Close()

	// Initialize policy engine
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		logger.Error("Failed to initialize policy engine", zap.Error(err))
		return err
	}

	// Initialize service
	svc := service.New(db, llm.NewCompleter(cfg), cfg, policyEngine)

	e := server.NewServer(svc, auth.NewVerifier(cfg.APIBearerToken), version)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("HTTP server started", zap.String("addr", addr))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		logger.Error("Failed to start server", zap.Error(err))
		return err
	}

	logger.Info("Shutting down snippet agent...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server gracefully", zap.Error(err))
	}

	logger.Info("Snippet agent stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.L().Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := repository.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Schema is up to date", zap.String("database_driver", cfg.DatabaseDriver))
	return nil
}
