package postgres

import (
	"database/sql"
)

// PlayerRepo implements repository.PlayerRepository
type PlayerRepo struct {
	db *sql.DB
}

// NewPlayerRepo creates a new player repository
func NewPlayerRepo(db *sql.DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// IsAuthorized checks if the player entered the bot password
func (r *PlayerRepo) IsAuthorized(playerID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM players WHERE player_id = $1`
	err := r.db.QueryRow(query, playerID).Scan(&authorized)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizePlayer marks player as authorized
func (r *PlayerRepo) AuthorizePlayer(playerID int64) error {
	query := `
		INSERT INTO players (player_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (player_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, playerID)
	return err
}

// EnsurePlayerExists creates the player row if missing
func (r *PlayerRepo) EnsurePlayerExists(playerID int64) error {
	query := `
		INSERT INTO players (player_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (player_id) DO NOTHING
	`
	_, err := r.db.Exec(query, playerID)
	return err
}
