package service

import (
	"fmt"
	"strings"

	"crossword/internal/dictionary"
	"crossword/internal/domain"
	"crossword/internal/repository"

	"go.uber.org/zap"
)

// Clue bank limits
const (
	RetentionDays   = 60
	DefaultSeedSize = 500
)

// ClueService handles the clue bank
type ClueService struct {
	clueRepo repository.ClueRepository
	logger   *zap.Logger
}

// NewClueService creates a new clue service
func NewClueService(clueRepo repository.ClueRepository, logger *zap.Logger) *ClueService {
	return &ClueService{
		clueRepo: clueRepo,
		logger:   logger,
	}
}

// RecordClue saves a clue and its answer
func (s *ClueService) RecordClue(playerID int64, clue, word string) error {
	clue = strings.TrimSpace(clue)
	if clue == "" {
		return domain.ErrEmptyClue
	}
	word = domain.NormalizeWord(word)
	if err := domain.ValidateWord(word); err != nil {
		return err
	}
	return s.clueRepo.SaveClue(playerID, clue, word)
}

// SeedDictionary inserts up to limit recently used answers into dict
// and returns how many were inserted
func (s *ClueService) SeedDictionary(dict *dictionary.Dictionary, limit int) (int, error) {
	if limit < 1 {
		limit = DefaultSeedSize
	}

	words, err := s.clueRepo.GetRecentWords(limit)
	if err != nil {
		return 0, fmt.Errorf("load recent words: %w", err)
	}

	inserted := 0
	for _, w := range words {
		if err := dict.Insert(w); err != nil {
			s.logger.Debug("Skipping stored word", zap.String("word", w), zap.Error(err))
			continue
		}
		inserted++
	}
	return inserted, nil
}

// RecentClues returns the player's latest clues
func (s *ClueService) RecentClues(playerID int64, limit int) ([]domain.StoredClue, error) {
	if limit < 1 {
		limit = 10
	}
	return s.clueRepo.GetCluesByPlayer(playerID, limit)
}

// CountClues returns how many clues the player has in the bank
func (s *ClueService) CountClues(playerID int64) (int, error) {
	count, err := s.clueRepo.CountCluesByPlayer(playerID)
	if err != nil {
		return 0, fmt.Errorf("count clues: %w", err)
	}
	return count, nil
}

// CleanupOldData removes clues older than RetentionDays
func (s *ClueService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old clues", zap.Int("retention_days", RetentionDays))

	if err := s.clueRepo.CleanOldClues(RetentionDays); err != nil {
		s.logger.Error("Failed to cleanup old clues", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
