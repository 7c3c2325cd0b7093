package handler

import (
	"strings"
	"unicode"

	"crossword/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles callback queries that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("player_id", c.Sender().ID),
	)

	action := callback.Unique
	if action == "" {
		action = data
	}

	switch action {
	case btnNewPuzzle.Unique:
		return h.handleNewPuzzle(c)
	case btnAddMore.Unique:
		return h.handleAddMore(c)
	case btnStartQuiz.Unique:
		return h.handleStartQuiz(c)
	case btnSkip.Unique:
		return h.handleSkip(c)
	case btnShowGrid.Unique:
		return h.handleShowGrid(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleAddMore answers "y" to the add-another prompt
func (h *Handler) handleAddMore(c tele.Context) error {
	return h.answerCallback(c, "y", session.PhaseMore)
}

// handleStartQuiz answers "n" to the add-another prompt
func (h *Handler) handleStartQuiz(c tele.Context) error {
	return h.answerCallback(c, "n", session.PhaseMore)
}

// handleSkip abandons the clue being quizzed
func (h *Handler) handleSkip(c tele.Context) error {
	return h.answerCallback(c, session.SkipCommand, session.PhaseQuiz)
}

// handleShowGrid prints the grid without changing the game
func (h *Handler) handleShowGrid(c tele.Context) error {
	return h.answerCallback(c, "/grid", session.PhaseQuiz)
}

// answerCallback feeds input to the session if it is still in the phase the
// button was shown for. Stale buttons are only acknowledged.
func (h *Handler) answerCallback(c tele.Context, input string, phase session.Phase) error {
	playerID := c.Sender().ID
	unlock := h.lockPlayer(playerID)
	defer unlock()

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	s, ok := h.GetSession(playerID)
	if !ok || s.Phase() != phase {
		h.logger.Debug("Ignoring stale button",
			zap.Int64("player_id", playerID),
			zap.String("input", input),
		)
		return nil
	}

	return h.sendReply(c, s, s.Handle(input))
}
