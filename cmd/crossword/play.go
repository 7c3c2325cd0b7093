package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"crossword/internal/config"
	"crossword/internal/console"
	"crossword/internal/domain"
	"crossword/internal/repository/postgres"
	"crossword/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var playDictionary string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a crossword in the terminal",
	Long: `Play reads clue sentences and answers from standard input, then quizzes
you on each clue and prints the grid after every placement.
When DB_PASSWORD is set, clues are also saved to the clue bank.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playDictionary, "dictionary", "", "extra word list, one word per line (default: $DICTIONARY_FILE)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if playDictionary != "" {
		cfg.DictionaryFile = playDictionary
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	words, err := loadWordList(cfg.DictionaryFile)
	if err != nil {
		return err
	}

	var clueService *service.ClueService
	if cfg.HasDatabase() {
		db, err := openDatabase(cfg, postgres.ConnectOptions{MaxRetries: 1}, logger)
		if err != nil {
			return err
		}
		defer db.Close()
		clueService = service.NewClueService(postgres.NewClueRepo(db), logger)
	}

	s, err := newSessionFactory(words, clueService, logger)(domain.ConsolePlayerID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = console.Run(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openDatabase connects to PostgreSQL and applies migrations
func openDatabase(cfg *config.Config, opts postgres.ConnectOptions, logger *zap.Logger) (*sql.DB, error) {
	db, err := postgres.Connect(cfg.DSN(), opts, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := postgres.Migrate(db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}
