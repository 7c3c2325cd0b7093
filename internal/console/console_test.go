package console

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"crossword/internal/dictionary"
	"crossword/internal/grid"
	"crossword/internal/session"
	"crossword/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *session.Session {
	return session.New(dictionary.New(), grid.New(), nil, 0, testutil.NewTestLogger())
}

func TestRun_FullGame(t *testing.T) {
	input := strings.Join([]string{
		"Star of the day",
		"sun",
		"y",
		"First day of the week",
		"sunday",
		"n",
		"moon",
		"sun",
		"SUNDAY",
	}, "\n") + "\n"

	var out strings.Builder
	s := newSession()

	err := Run(context.Background(), s, strings.NewReader(input), &out)
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, session.Banner+"\n"))
	assert.Contains(t, text, "Enter a sentence: ")
	assert.Contains(t, text, "Enter a word for this sentence: ")
	assert.Contains(t, text, "Do you want to add another sentence? (y/n): ")
	assert.Contains(t, text, "Clue: Star of the day\n")
	assert.Contains(t, text, "The entered word does not match the original. Please try again.\n")
	assert.Contains(t, text, `Successfully placed "SUN" on the grid:`)
	assert.Contains(t, text, `Successfully placed "SUNDAY" on the grid:`)
	assert.True(t, strings.HasSuffix(text, "Final crossword grid:\nS U N D A Y - - - -\n"+
		strings.Repeat("- - - - - - - - - -\n", grid.Size-1)))
	assert.Equal(t, session.PhaseDone, s.Phase())
}

func TestRun_EndOfInput(t *testing.T) {
	var out strings.Builder
	s := newSession()

	err := Run(context.Background(), s, strings.NewReader("Pet\ncat\n"), &out)

	assert.NoError(t, err)
	assert.Equal(t, session.PhaseMore, s.Phase())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	err := Run(ctx, newSession(), strings.NewReader("Pet\n"), &out)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out strings.Builder
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, newSession(), pr, &out)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run kept waiting for input after cancel")
	}
	assert.Contains(t, out.String(), "Enter a sentence: ")
}

func TestRun_LineTooLong(t *testing.T) {
	input := "Pet\n" + strings.Repeat("a", MaxLineSize+1) + "\n"

	var out strings.Builder
	s := newSession()

	err := Run(context.Background(), s, strings.NewReader(input), &out)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), lineTooLong)
	assert.Equal(t, session.PhaseWord, s.Phase())
}

func TestRun_LongLineWithinLimit(t *testing.T) {
	clue := strings.Repeat("long clue ", 10_000)
	input := clue + "\ncat\n"

	var out strings.Builder
	s := newSession()

	err := Run(context.Background(), s, strings.NewReader(input), &out)

	assert.NoError(t, err)
	assert.NotContains(t, out.String(), lineTooLong)
	assert.Equal(t, session.PhaseMore, s.Phase())
}
