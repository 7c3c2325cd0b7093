package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"crossword/internal/domain"
)

//go:embed words.txt
var defaultWords string

type node struct {
	children [26]*node
	terminal bool
}

// Dictionary is a prefix tree over the letters A-Z.
// It is not safe for concurrent use.
type Dictionary struct {
	root  node
	count int
}

// New creates an empty dictionary
func New() *Dictionary {
	return &Dictionary{}
}

// Insert adds a word. The word is normalized to uppercase and must be
// spelled with A-Z only; otherwise the tree is left untouched.
func (d *Dictionary) Insert(word string) error {
	word = domain.NormalizeWord(word)
	if err := domain.ValidateWord(word); err != nil {
		return fmt.Errorf("insert %q: %w", word, err)
	}

	cur := &d.root
	for i := 0; i < len(word); i++ {
		idx, _ := domain.LetterIndex(word[i])
		if cur.children[idx] == nil {
			cur.children[idx] = &node{}
		}
		cur = cur.children[idx]
	}
	if !cur.terminal {
		cur.terminal = true
		d.count++
	}
	return nil
}

// Contains reports whether word was inserted
func (d *Dictionary) Contains(word string) bool {
	n := d.walk(domain.NormalizeWord(word))
	return n != nil && n.terminal
}

// HasPrefix reports whether some inserted word starts with prefix
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.walk(domain.NormalizeWord(prefix)) != nil
}

// Len returns the number of distinct words
func (d *Dictionary) Len() int {
	return d.count
}

func (d *Dictionary) walk(s string) *node {
	cur := &d.root
	for i := 0; i < len(s); i++ {
		idx, ok := domain.LetterIndex(s[i])
		if !ok {
			return nil
		}
		if cur.children[idx] == nil {
			return nil
		}
		cur = cur.children[idx]
	}
	return cur
}

// Load inserts one word per line from r. Blank lines and lines starting
// with '#' are ignored, as are words that fail validation.
// Returns the number of lines that were inserted.
func (d *Dictionary) Load(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	loaded := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := d.Insert(line); err != nil {
			continue
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("read word list: %w", err)
	}
	return loaded, nil
}

// LoadDefault inserts the built-in word list
func (d *Dictionary) LoadDefault() (int, error) {
	return d.Load(strings.NewReader(defaultWords))
}
