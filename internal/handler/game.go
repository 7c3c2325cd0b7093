package handler

import (
	"fmt"
	"html"
	"strings"

	"crossword/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const maxRecentClues = 10

// handleText handles all plain text messages
func (h *Handler) handleText(c tele.Context) error {
	playerID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

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
		return h.handlePassword(c, text)
	}

	return h.feedSession(c, text)
}

// handlePassword processes password input from unauthorized players
func (h *Handler) handlePassword(c tele.Context, password string) error {
	playerID := c.Sender().ID

	if !h.accessService.CheckPassword(password) {
		h.logger.Info("Wrong password attempt", zap.Int64("player_id", playerID))
		return c.Send("Wrong password. Try again:")
	}

	if err := h.accessService.AuthorizePlayer(playerID); err != nil {
		h.logger.Error("Failed to authorize player", zap.Error(err))
		return c.Send(msgInternalError)
	}

	h.logger.Info("Player authorized", zap.Int64("player_id", playerID))
	return h.startPuzzle(c, h.greeting(playerID, "✅ Access granted!"))
}

// handleSessionCommand forwards in-game commands to the player's session
func (h *Handler) handleSessionCommand(c tele.Context) error {
	return h.feedSession(c, stripBotName(c.Text()))
}

// handleNewPuzzle drops the current game and starts over
func (h *Handler) handleNewPuzzle(c tele.Context) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return h.startPuzzle(c, "")
}

// handleRecentClues lists the latest clues the player recorded
func (h *Handler) handleRecentClues(c tele.Context) error {
	playerID := c.Sender().ID

	clues, err := h.clueService.RecentClues(playerID, maxRecentClues)
	if err != nil {
		h.logger.Error("Failed to load recent clues", zap.Error(err), zap.Int64("player_id", playerID))
		return c.Send(msgInternalError)
	}

	if len(clues) == 0 {
		return c.Send("You have not written any clues yet.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 Your recent clues (%d):\n\n", len(clues))
	for i, clue := range clues {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, clue.Word, clue.Clue)
	}
	return c.Send(b.String())
}

// startPuzzle replaces the player's session and greets them with the banner
func (h *Handler) startPuzzle(c tele.Context, intro string) error {
	playerID := c.Sender().ID
	unlock := h.lockPlayer(playerID)
	defer unlock()

	s, err := h.ResetSession(playerID)
	if err != nil {
		h.logger.Error("Failed to start session", zap.Error(err), zap.Int64("player_id", playerID))
		return c.Send(msgInternalError)
	}

	lines := []string{session.Banner, s.Prompt()}
	if intro != "" {
		lines = append([]string{intro}, lines...)
	}
	return c.Send(html.EscapeString(strings.Join(lines, "\n\n")), tele.ModeHTML)
}

// feedSession passes one line of input to the player's session and sends the reply
func (h *Handler) feedSession(c tele.Context, input string) error {
	playerID := c.Sender().ID
	unlock := h.lockPlayer(playerID)
	defer unlock()

	s, err := h.sessionFor(playerID)
	if err != nil {
		h.logger.Error("Failed to start session", zap.Error(err), zap.Int64("player_id", playerID))
		return c.Send(msgInternalError)
	}

	reply := s.Handle(input)
	return h.sendReply(c, s, reply)
}

// sendReply renders a session reply with the keyboard for its phase
func (h *Handler) sendReply(c tele.Context, s *session.Session, reply session.Reply) error {
	text := formatReply(reply, s.Prompt())
	if text == "" {
		return nil
	}

	opts := []interface{}{tele.ModeHTML}
	if markup := phaseMarkup(s.Phase()); markup != nil {
		opts = append(opts, markup)
	}
	return c.Send(text, opts...)
}

// formatReply builds the HTML message for a reply. Grids go into <pre> blocks
// so the columns line up.
func formatReply(reply session.Reply, prompt string) string {
	parts := make([]string, 0, len(reply.Messages)+1)
	for _, m := range reply.Messages {
		if m.Grid {
			parts = append(parts, "<pre>"+html.EscapeString(m.Text)+"</pre>")
			continue
		}
		parts = append(parts, html.EscapeString(m.Text))
	}
	if prompt != "" && !reply.Done {
		parts = append(parts, html.EscapeString(prompt))
	}
	return strings.Join(parts, "\n")
}

// stripBotName turns "/grid@SomeBot SUN" into "/grid SUN"
func stripBotName(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	cmd, rest, _ := strings.Cut(text, " ")
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	if rest == "" {
		return cmd
	}
	return cmd + " " + rest
}
