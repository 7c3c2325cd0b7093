// Package console plays a session over line-based text streams.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"crossword/internal/session"
)

// MaxLineSize bounds a single input line
const MaxLineSize = 1 << 20

const lineTooLong = "Input line is too long, stopping."

// Run prints prompts to out and feeds lines from in to the session until
// the puzzle is complete, input ends, or ctx is cancelled. Running out of
// input is not an error.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	lines, errc := readLines(ctx, in)

	if _, err := fmt.Fprintln(out, session.Banner); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(out, s.Prompt()+" "); err != nil {
			return err
		}

		var text string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				err := <-errc
				if errors.Is(err, bufio.ErrTooLong) {
					fmt.Fprintln(out, lineTooLong)
					return nil
				}
				return err
			}
			text = line
		}

		reply := s.Handle(text)
		for _, m := range reply.Messages {
			if _, err := fmt.Fprintln(out, m.Text); err != nil {
				return err
			}
		}
		if reply.Done {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. errc receives exactly one value before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
