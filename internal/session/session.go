// Package session drives one crossword game: collecting clue/word pairs,
// then quizzing the player and placing each answered word on the grid.
//
// A Session is a step machine. Drivers show Prompt(), read one line of
// input and pass it to Handle, so a blocking console and a chat bot can
// share the same game logic.
package session

import (
	"fmt"
	"strings"

	"crossword/internal/dictionary"
	"crossword/internal/domain"
	"crossword/internal/grid"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is the step a session is waiting on
type Phase int

const (
	PhaseClue Phase = iota
	PhaseWord
	PhaseMore
	PhaseQuiz
	PhaseDone
)

// Player-facing text
const (
	Banner       = "Enter sentences for the crossword puzzle (type 'n' when prompted to stop):"
	promptClue   = "Enter a sentence:"
	promptWord   = "Enter a word for this sentence:"
	promptMore   = "Do you want to add another sentence? (y/n):"
	promptGuess  = "Enter the word that matches this clue:"
	quizHeader   = "Attempting to place words into the crossword grid:"
	finalHeader  = "Final crossword grid:"
	wrongGuess   = "The entered word does not match the original. Please try again."
	puzzleIsDone = "The puzzle is complete. Start a new one to play again."
)

// SkipCommand abandons the current quiz clue
const SkipCommand = "/skip"

// Recorder keeps clue cards outside the session
type Recorder interface {
	RecordClue(playerID int64, clue, word string) error
}

// Factory builds a fresh session for a player
type Factory func(playerID int64) (*Session, error)

// Message is one piece of output. Grid messages hold a rendered grid.
type Message struct {
	Text string
	Grid bool
}

// Reply is the output produced by one Handle call
type Reply struct {
	Messages []Message
	Done     bool
}

// Text joins all messages with newlines
func (r Reply) Text() string {
	parts := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, "\n")
}

func (r *Reply) say(format string, args ...any) {
	r.Messages = append(r.Messages, Message{Text: fmt.Sprintf(format, args...)})
}

func (r *Reply) showGrid(g *grid.Grid) {
	r.Messages = append(r.Messages, Message{Text: strings.TrimRight(g.String(), "\n"), Grid: true})
}

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	id       string
	dict     *dictionary.Dictionary
	grid     *grid.Grid
	recorder Recorder
	playerID int64
	logger   *zap.Logger

	phase       Phase
	cards       []domain.ClueCard
	cardIndex   map[string]int
	pendingClue string
	current     int
}

// New creates a session collecting its first clue. recorder may be nil.
func New(
	dict *dictionary.Dictionary,
	g *grid.Grid,
	recorder Recorder,
	playerID int64,
	logger *zap.Logger,
) *Session {
	id := uuid.NewString()
	return &Session{
		id:        id,
		dict:      dict,
		grid:      g,
		recorder:  recorder,
		playerID:  playerID,
		logger:    logger.With(zap.String("session_id", id), zap.Int64("player_id", playerID)),
		phase:     PhaseClue,
		cardIndex: make(map[string]int),
	}
}

// ID returns the session identifier used in logs
func (s *Session) ID() string { return s.id }

// Phase returns the current step
func (s *Session) Phase() Phase { return s.phase }

// Grid returns the session grid
func (s *Session) Grid() *grid.Grid { return s.grid }

// Dictionary returns the session dictionary
func (s *Session) Dictionary() *dictionary.Dictionary { return s.dict }

// Cards returns the collected clue cards in quiz order
func (s *Session) Cards() []domain.ClueCard {
	cp := make([]domain.ClueCard, len(s.cards))
	copy(cp, s.cards)
	return cp
}

// CurrentClue returns the clue being quizzed, if any
func (s *Session) CurrentClue() (string, bool) {
	if s.phase != PhaseQuiz {
		return "", false
	}
	return s.cards[s.current].Clue, true
}

// Prompt returns the text asking for the next input
func (s *Session) Prompt() string {
	switch s.phase {
	case PhaseClue:
		return promptClue
	case PhaseWord:
		return promptWord
	case PhaseMore:
		return promptMore
	case PhaseQuiz:
		return promptGuess
	default:
		return ""
	}
}

// Handle consumes one line of input
func (s *Session) Handle(input string) Reply {
	text := strings.TrimSpace(input)
	if s.isCommand(text) {
		return s.handleCommand(text)
	}

	switch s.phase {
	case PhaseClue:
		return s.handleClue(text)
	case PhaseWord:
		return s.handleWord(text)
	case PhaseMore:
		return s.handleMore(text)
	case PhaseQuiz:
		return s.handleGuess(text)
	default:
		var r Reply
		r.say(puzzleIsDone)
		r.Done = true
		return r
	}
}

func (s *Session) handleClue(text string) Reply {
	var r Reply
	if text == "" {
		r.say("Please enter a sentence for the clue.")
		return r
	}
	s.pendingClue = text
	s.phase = PhaseWord
	return r
}

func (s *Session) handleWord(text string) Reply {
	var r Reply
	word := domain.NormalizeWord(firstToken(text))

	if err := domain.ValidateWord(word); err != nil {
		if err == domain.ErrEmptyWord {
			r.say("Please enter a word.")
		} else {
			r.say("Invalid character in word: %s", word)
		}
		return r
	}

	s.addCard(domain.ClueCard{Clue: s.pendingClue, Word: word})
	if err := s.dict.Insert(word); err != nil {
		s.logger.Warn("Failed to insert word into dictionary", zap.String("word", word), zap.Error(err))
	}
	if s.recorder != nil {
		if err := s.recorder.RecordClue(s.playerID, s.pendingClue, word); err != nil {
			s.logger.Error("Failed to record clue", zap.String("word", word), zap.Error(err))
		}
	}

	s.logger.Info("Clue collected",
		zap.String("clue", s.pendingClue),
		zap.String("word", word),
	)

	s.pendingClue = ""
	s.phase = PhaseMore
	return r
}

// addCard stores the card keyed by clue text; a repeated clue keeps its
// original position and takes the newer word.
func (s *Session) addCard(card domain.ClueCard) {
	if i, ok := s.cardIndex[card.Clue]; ok {
		s.cards[i] = card
		return
	}
	s.cardIndex[card.Clue] = len(s.cards)
	s.cards = append(s.cards, card)
}

func (s *Session) handleMore(text string) Reply {
	var r Reply
	if text != "" && (text[0] == 'n' || text[0] == 'N') {
		r.say(quizHeader)
		s.startQuiz(&r)
		return r
	}
	s.phase = PhaseClue
	return r
}

func (s *Session) startQuiz(r *Reply) {
	s.phase = PhaseQuiz
	s.current = 0
	r.say("Clue: %s", s.cards[0].Clue)
	s.logger.Info("Quiz started", zap.Int("clues", len(s.cards)))
}

func (s *Session) handleGuess(text string) Reply {
	var r Reply
	card := s.cards[s.current]
	guess := domain.NormalizeWord(firstToken(text))

	if guess != card.Word {
		r.say(wrongGuess)
		return r
	}

	if p, ok := s.grid.TryPlaceWord(card.Word); ok {
		s.logger.Info("Word placed",
			zap.String("word", card.Word),
			zap.Int("row", p.Row),
			zap.Int("col", p.Col),
			zap.Stringer("orientation", p.Orientation),
		)
		r.say("Successfully placed %q on the grid:", card.Word)
	} else {
		s.logger.Info("Word could not be placed", zap.String("word", card.Word))
		r.say("Failed to place the word %q on the grid.", card.Word)
	}
	r.showGrid(s.grid)

	s.advance(&r)
	return r
}

func (s *Session) advance(r *Reply) {
	s.current++
	if s.current < len(s.cards) {
		r.say("Clue: %s", s.cards[s.current].Clue)
		return
	}

	s.phase = PhaseDone
	r.say(finalHeader)
	r.showGrid(s.grid)
	r.Done = true
	s.logger.Info("Quiz finished", zap.Int("placed", len(s.grid.Placements())))
}

// commands lists the in-game commands
var commands = map[string]bool{
	SkipCommand: true,
	"/grid":     true,
	"/check":    true,
	"/remove":   true,
}

// isCommand reports whether text should run as a command. While a clue is
// being written only known commands count, so clue text may start with "/".
func (s *Session) isCommand(text string) bool {
	if !strings.HasPrefix(text, "/") {
		return false
	}
	if s.phase != PhaseClue {
		return true
	}
	return commands[strings.ToLower(firstToken(text))]
}

func (s *Session) handleCommand(text string) Reply {
	var r Reply
	fields := strings.Fields(text)
	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = domain.NormalizeWord(fields[1])
	}

	switch cmd {
	case SkipCommand:
		if s.phase != PhaseQuiz {
			r.say("There is no clue to skip right now.")
			break
		}
		r.say("Skipped clue: %s", s.cards[s.current].Clue)
		s.logger.Info("Clue skipped", zap.String("word", s.cards[s.current].Word))
		s.advance(&r)
		return r
	case "/grid":
		r.showGrid(s.grid)
	case "/check":
		if arg == "" {
			r.say("Usage: /check WORD")
		} else if s.dict.Contains(arg) {
			r.say("%s is in the dictionary.", arg)
		} else {
			r.say("%s is not in the dictionary.", arg)
		}
	case "/remove":
		if arg == "" {
			r.say("Usage: /remove WORD")
		} else if s.grid.RemoveWord(arg) {
			s.logger.Info("Word removed", zap.String("word", arg))
			r.say("Removed %q from the grid.", arg)
			r.showGrid(s.grid)
		} else {
			r.say("%q is not on the grid.", arg)
		}
	default:
		r.say("Unknown command: %s", fields[0])
	}

	r.Done = s.phase == PhaseDone
	return r
}

func firstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
