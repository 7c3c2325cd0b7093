package handler

import (
	"sync"

	"crossword/internal/service"
	"crossword/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot           *tele.Bot
	accessService *service.AccessService
	clueService   *service.ClueService
	newSession    session.Factory
	logger        *zap.Logger

	// One game per player, kept in memory only
	sessions   map[int64]*session.Session
	sessionMux sync.RWMutex

	// Serializes updates from the same player
	playerLocks map[int64]*sync.Mutex
	lockMux     sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	accessService *service.AccessService,
	clueService *service.ClueService,
	newSession session.Factory,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		accessService: accessService,
		clueService:   clueService,
		newSession:    newSession,
		logger:        logger,
		sessions:      make(map[int64]*session.Session),
		playerLocks:   make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers(access tele.MiddlewareFunc) {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/new", h.handleNewPuzzle, access)
	h.bot.Handle("/clues", h.handleRecentClues, access)
	for _, cmd := range []string{"/grid", "/skip", "/check", "/remove"} {
		h.bot.Handle(cmd, h.handleSessionCommand, access)
	}

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnNewPuzzle, h.handleNewPuzzle, access)
	h.bot.Handle(&btnAddMore, h.handleAddMore, access)
	h.bot.Handle(&btnStartQuiz, h.handleStartQuiz, access)
	h.bot.Handle(&btnSkip, h.handleSkip, access)
	h.bot.Handle(&btnShowGrid, h.handleShowGrid, access)

	// Generic callback handler for buttons whose Unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback, access)
}

// GetSession returns the player's current session, if any
func (h *Handler) GetSession(playerID int64) (*session.Session, bool) {
	h.sessionMux.RLock()
	defer h.sessionMux.RUnlock()

	s, exists := h.sessions[playerID]
	return s, exists
}

// SetSession replaces the player's session
func (h *Handler) SetSession(playerID int64, s *session.Session) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	h.sessions[playerID] = s
}

// ResetSession starts a new game for the player
func (h *Handler) ResetSession(playerID int64) (*session.Session, error) {
	s, err := h.newSession(playerID)
	if err != nil {
		return nil, err
	}
	h.SetSession(playerID, s)

	h.logger.Info("Session started",
		zap.Int64("player_id", playerID),
		zap.String("session_id", s.ID()),
	)
	return s, nil
}

// sessionFor returns the player's session, starting one if needed
func (h *Handler) sessionFor(playerID int64) (*session.Session, error) {
	if s, ok := h.GetSession(playerID); ok {
		return s, nil
	}
	return h.ResetSession(playerID)
}

// lockPlayer serializes work for one player and returns the unlock func
func (h *Handler) lockPlayer(playerID int64) func() {
	h.lockMux.Lock()
	lock, exists := h.playerLocks[playerID]
	if !exists {
		lock = &sync.Mutex{}
		h.playerLocks[playerID] = lock
	}
	h.lockMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Inline keyboard buttons
var (
	btnNewPuzzle = tele.Btn{
		Unique: "new_puzzle",
		Text:   "🧩 New puzzle",
	}
	btnAddMore = tele.Btn{
		Unique: "add_more",
		Text:   "➕ Add another clue",
	}
	btnStartQuiz = tele.Btn{
		Unique: "start_quiz",
		Text:   "▶️ Start quiz",
	}
	btnSkip = tele.Btn{
		Unique: "skip",
		Text:   "⏭ Skip clue",
	}
	btnShowGrid = tele.Btn{
		Unique: "show_grid",
		Text:   "🔠 Show grid",
	}
)

// phaseMarkup returns the keyboard that fits the session phase, or nil
func phaseMarkup(phase session.Phase) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	switch phase {
	case session.PhaseMore:
		menu.Inline(menu.Row(btnAddMore, btnStartQuiz))
	case session.PhaseQuiz:
		menu.Inline(menu.Row(btnSkip, btnShowGrid))
	case session.PhaseDone:
		menu.Inline(menu.Row(btnNewPuzzle))
	default:
		return nil
	}
	return menu
}
