package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgPasswordPrompt = "Hi! Enter the password to start building crosswords:"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	playerID := c.Sender().ID

	h.logger.Info("Player started bot",
		zap.Int64("player_id", playerID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.accessService.EnsurePlayerExists(playerID); err != nil {
		h.logger.Error("Failed to ensure player exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	authorized, err := h.accessService.IsAuthorized(playerID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if !authorized {
		return c.Send(msgPasswordPrompt)
	}

	return h.startPuzzle(c, h.greeting(playerID, "👋 Welcome back!"))
}

// greeting prefixes opener with the size of the player's clue bank
func (h *Handler) greeting(playerID int64, opener string) string {
	count, err := h.clueService.CountClues(playerID)
	if err != nil {
		h.logger.Warn("Failed to count clues", zap.Error(err), zap.Int64("player_id", playerID))
		return opener
	}
	return opener + " " + clueBankLine(count)
}

func clueBankLine(count int) string {
	switch count {
	case 0:
		return "Your clue bank is empty, time to write some clues."
	case 1:
		return "You have 1 clue in your bank."
	default:
		return fmt.Sprintf("You have %d clues in your bank.", count)
	}
}
