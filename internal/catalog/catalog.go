// Package catalog holds the fixed story and sound effect sets served by the
// generator. A Catalog is built once at startup and never mutated, so it is
// safe to share between concurrent requests without locking.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"horrorgen/internal/domain"
)

// ResponseSoundEffects is the number of labels attached to every response.
const ResponseSoundEffects = 3

type Catalog struct {
	stories      []string
	soundEffects []string
}

// New copies and NFC-normalizes the given entries. Both sets must be non-empty
// and contain no blank entries.
func New(stories, soundEffects []string) (*Catalog, error) {
	s, err := normalizeAll("story", stories)
	if err != nil {
		return nil, err
	}
	fx, err := normalizeAll("sound effect", soundEffects)
	if err != nil {
		return nil, err
	}
	return &Catalog{stories: s, soundEffects: fx}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultStories, defaultSoundEffects)
	if err != nil {
		panic(fmt.Errorf("catalog: built-in entries: %w", err))
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.stories)
}

// Story returns the story at index i. It panics when i is out of range.
func (c *Catalog) Story(i int) string {
	return c.stories[i]
}

// Stories returns a copy of every story in catalog order.
func (c *Catalog) Stories() []string {
	return append([]string(nil), c.stories...)
}

// SoundEffects returns a copy of the first n labels, or all of them when n
// exceeds the catalog size.
func (c *Catalog) SoundEffects(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(c.soundEffects) {
		n = len(c.soundEffects)
	}
	return append([]string(nil), c.soundEffects[:n]...)
}

func normalizeAll(kind string, entries []string) ([]string, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog: %s set: %w", kind, domain.ErrEmptyCatalog)
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e) == "" {
			return nil, fmt.Errorf("catalog: %s %d is blank", kind, i)
		}
		out[i] = norm.NFC.String(e)
	}
	return out, nil
}
