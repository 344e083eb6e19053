package cmd

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

	"github.com/iamtheretronerd/levelup/internal/auth"
	"github.com/iamtheretronerd/levelup/internal/handlers"
	"github.com/iamtheretronerd/levelup/internal/journeys"
	"github.com/iamtheretronerd/levelup/internal/llm"
	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/progression"
	"github.com/iamtheretronerd/levelup/internal/server"
	"github.com/iamtheretronerd/levelup/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PORT env var)")
}

func runServe(cmd *cobra.Command) error {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	log.Info("database ready", "path", dbPath)

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		return fmt.Errorf("LLM config: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := llm.NewProvider(ctx, llmCfg, log)
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}
	log.Info("task generator ready", "provider", llmCfg.Provider, "model", provider.ModelID())

	engineCfg := progression.DefaultConfig()
	engineCfg.GenerationTimeout = llmCfg.Timeout
	engine := progression.NewEngine(s.LevelRepo(), provider, engineCfg, log)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    handlers.NewAuthHandler(auth.NewService(s.UserRepo(), log)),
		JourneyHandler: handlers.NewJourneyHandler(journeys.NewService(s.JourneyRepo(), log)),
		LevelHandler:   handlers.NewLevelHandler(engine),
	})

	addr := listenAddr(cmd)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-stop.Done():
	}

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// listenAddr resolves the listen address: --addr flag, then PORT env
// var, then the original backend's default port 3001.
func listenAddr(cmd *cobra.Command) string {
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		return a
	}
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":3001"
}
