package testutil

import (
	"crossword/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPlayerRepository is a mock for PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) IsAuthorized(playerID int64) (bool, error) {
	args := m.Called(playerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlayerRepository) AuthorizePlayer(playerID int64) error {
	args := m.Called(playerID)
	return args.Error(0)
}

func (m *MockPlayerRepository) EnsurePlayerExists(playerID int64) error {
	args := m.Called(playerID)
	return args.Error(0)
}

// MockClueRepository is a mock for ClueRepository
type MockClueRepository struct {
	mock.Mock
}

func (m *MockClueRepository) SaveClue(playerID int64, clue, word string) error {
	args := m.Called(playerID, clue, word)
	return args.Error(0)
}

func (m *MockClueRepository) GetRecentWords(limit int) ([]string, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClueRepository) GetCluesByPlayer(playerID int64, limit int) ([]domain.StoredClue, error) {
	args := m.Called(playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredClue), args.Error(1)
}

func (m *MockClueRepository) CountCluesByPlayer(playerID int64) (int, error) {
	args := m.Called(playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockClueRepository) CleanOldClues(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockClueRecorder is a mock for session.Recorder
type MockClueRecorder struct {
	mock.Mock
}

func (m *MockClueRecorder) RecordClue(playerID int64, clue, word string) error {
	args := m.Called(playerID, clue, word)
	return args.Error(0)
}
