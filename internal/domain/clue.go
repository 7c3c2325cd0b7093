package domain

import "time"

// ClueCard pairs a free-text clue with the word that answers it
type ClueCard struct {
	Clue string
	Word string
}

// StoredClue is a clue card kept in the clue bank
type StoredClue struct {
	ID        int
	PlayerID  int64
	Clue      string
	Word      string
	CreatedAt time.Time
}
