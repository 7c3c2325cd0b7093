package service

import (
	"crossword/internal/repository"
)

// AccessService gates bot players behind a shared password
type AccessService struct {
	playerRepo  repository.PlayerRepository
	botPassword string
}

// NewAccessService creates a new access service
func NewAccessService(playerRepo repository.PlayerRepository, botPassword string) *AccessService {
	return &AccessService{
		playerRepo:  playerRepo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AccessService) CheckPassword(password string) bool {
	return s.botPassword != "" && password == s.botPassword
}

// IsAuthorized checks if player is authorized
func (s *AccessService) IsAuthorized(playerID int64) (bool, error) {
	return s.playerRepo.IsAuthorized(playerID)
}

// AuthorizePlayer authorizes a player
func (s *AccessService) AuthorizePlayer(playerID int64) error {
	return s.playerRepo.AuthorizePlayer(playerID)
}

// EnsurePlayerExists creates player record if it doesn't exist
func (s *AccessService) EnsurePlayerExists(playerID int64) error {
	return s.playerRepo.EnsurePlayerExists(playerID)
}
