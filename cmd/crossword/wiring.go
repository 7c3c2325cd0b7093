package main

import (
	"bytes"
	"fmt"
	"os"

	"crossword/internal/dictionary"
	"crossword/internal/grid"
	"crossword/internal/service"
	"crossword/internal/session"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a production logger writing to stderr at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}

// loadWordList reads an extra word list. An empty path means none.
func loadWordList(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary file: %w", err)
	}
	return data, nil
}

// newSessionFactory returns a factory whose sessions start with the embedded
// word list, the extra words, and recent answers from the clue bank.
// clueService may be nil.
func newSessionFactory(extraWords []byte, clueService *service.ClueService, logger *zap.Logger) session.Factory {
	return func(playerID int64) (*session.Session, error) {
		dict := dictionary.New()
		if _, err := dict.LoadDefault(); err != nil {
			return nil, fmt.Errorf("load default dictionary: %w", err)
		}
		if len(extraWords) > 0 {
			if _, err := dict.Load(bytes.NewReader(extraWords)); err != nil {
				return nil, fmt.Errorf("load dictionary file: %w", err)
			}
		}

		var recorder session.Recorder
		if clueService != nil {
			n, err := clueService.SeedDictionary(dict, service.DefaultSeedSize)
			if err != nil {
				logger.Warn("Failed to seed dictionary from clue bank", zap.Error(err))
			} else {
				logger.Debug("Dictionary seeded", zap.Int("words", n))
			}
			recorder = clueService
		}

		return session.New(dict, grid.New(), recorder, playerID, logger), nil
	}
}
