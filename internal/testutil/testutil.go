package testutil

import (
	"time"

	"crossword/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPlayer creates a test player
func NewTestPlayer(playerID int64, authorized bool) *domain.Player {
	return &domain.Player{
		PlayerID:   playerID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestClue creates a stored test clue
func NewTestClue(id int, playerID int64, clue, word string) domain.StoredClue {
	return domain.StoredClue{
		ID:        id,
		PlayerID:  playerID,
		Clue:      clue,
		Word:      word,
		CreatedAt: time.Now(),
	}
}
