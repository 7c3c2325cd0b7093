package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"crossword/internal/config"
	"crossword/internal/handler"
	"crossword/internal/middleware"
	"crossword/internal/repository/postgres"
	"crossword/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const cleanupInterval = 24 * time.Hour

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Long: `Bot serves crossword games over Telegram. Each player gets their own
in-memory session; clues are kept in PostgreSQL.`,
	Args: cobra.NoArgs,
	RunE: runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateBot(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting crossword bot", zap.String("version", version))

	words, err := loadWordList(cfg.DictionaryFile)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg, postgres.DefaultConnectOptions, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Database ready")

	// Initialize repositories
	playerRepo := postgres.NewPlayerRepo(db)
	clueRepo := postgres.NewClueRepo(db)

	// Initialize services
	accessService := service.NewAccessService(playerRepo, cfg.BotPassword)
	clueService := service.NewClueService(clueRepo, logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	h := handler.NewHandler(bot, accessService, clueService, newSessionFactory(words, clueService, logger), logger)
	h.RegisterHandlers(middleware.AccessMiddleware(accessService, logger))

	logger.Info("Handlers registered")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runCleanupJob(ctx, clueService, cleanupInterval, logger)

	go func() {
		logger.Info("Bot started")
		bot.Start()
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping bot...")
	bot.Stop()
	logger.Info("Bot stopped gracefully")

	return nil
}

// runCleanupJob removes expired clues at startup and then on every tick
func runCleanupJob(ctx context.Context, clueService *service.ClueService, interval time.Duration, logger *zap.Logger) {
	if err := clueService.CleanupOldData(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := clueService.CleanupOldData(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
