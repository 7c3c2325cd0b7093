package repository

import (
	"crossword/internal/domain"
)

// PlayerRepository defines player access operations
type PlayerRepository interface {
	IsAuthorized(playerID int64) (bool, error)
	AuthorizePlayer(playerID int64) error
	EnsurePlayerExists(playerID int64) error
}

// ClueRepository defines clue bank operations
type ClueRepository interface {
	SaveClue(playerID int64, clue, word string) error
	GetRecentWords(limit int) ([]string, error)
	GetCluesByPlayer(playerID int64, limit int) ([]domain.StoredClue, error)
	CountCluesByPlayer(playerID int64) (int, error)
	CleanOldClues(days int) error
}
