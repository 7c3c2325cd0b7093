package postgres

import (
	"database/sql"

	"crossword/internal/domain"
)

// ClueRepo implements repository.ClueRepository
type ClueRepo struct {
	db *sql.DB
}

// NewClueRepo creates a new clue repository
func NewClueRepo(db *sql.DB) *ClueRepo {
	return &ClueRepo{db: db}
}

// SaveClue stores a clue and its answer
func (r *ClueRepo) SaveClue(playerID int64, clue, word string) error {
	query := `
		INSERT INTO clues (player_id, clue, word)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, playerID, clue, word)
	return err
}

// GetRecentWords returns distinct answers, most recently used first
func (r *ClueRepo) GetRecentWords(limit int) ([]string, error) {
	query := `
		SELECT word
		FROM clues
		GROUP BY word
		ORDER BY MAX(created_at) DESC
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// GetCluesByPlayer returns the player's latest clues, newest first
func (r *ClueRepo) GetCluesByPlayer(playerID int64, limit int) ([]domain.StoredClue, error) {
	query := `
		SELECT id, player_id, clue, word, created_at
		FROM clues
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(query, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clues []domain.StoredClue
	for rows.Next() {
		var c domain.StoredClue
		if err := rows.Scan(&c.ID, &c.PlayerID, &c.Clue, &c.Word, &c.CreatedAt); err != nil {
			return nil, err
		}
		clues = append(clues, c)
	}

	return clues, rows.Err()
}

// CountCluesByPlayer returns how many clues the player has in the bank
func (r *ClueRepo) CountCluesByPlayer(playerID int64) (int, error) {
	query := `SELECT COUNT(*) FROM clues WHERE player_id = $1`

	var count int
	if err := r.db.QueryRow(query, playerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CleanOldClues deletes clues older than the given number of days
func (r *ClueRepo) CleanOldClues(days int) error {
	query := `
		DELETE FROM clues
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
