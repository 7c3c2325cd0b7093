package domain

import (
	"errors"
	"strings"
)

// Word errors
var (
	ErrEmptyWord   = errors.New("word cannot be empty")
	ErrInvalidWord = errors.New("word must contain only letters A-Z")
	ErrEmptyClue   = errors.New("clue cannot be empty")
)

// NormalizeWord trims surrounding whitespace and uppercases the word
func NormalizeWord(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// ValidateWord checks that word is non-empty and spelled with A-Z only.
// The word is expected to be normalized already.
func ValidateWord(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return ErrInvalidWord
		}
	}
	return nil
}

// LetterIndex maps an uppercase letter to 0..25
func LetterIndex(ch byte) (int, bool) {
	if ch < 'A' || ch > 'Z' {
		return 0, false
	}
	return int(ch - 'A'), true
}
