package domain

import (
	"errors"
	"fmt"
)

// ErrInvariant is returned when a FileStats breaks BodyNoSpace <= Body <= Total.
var ErrInvariant = errors.New("character count invariant violated")

// FileStats holds the character counts for one markdown file.
// All counts are Unicode code points. Pure value type, no external dependencies.
type FileStats struct {
	Filename    string // base name of the file
	Total       int    // raw content, frontmatter included
	Body        int    // content after the leading frontmatter block is removed
	BodyNoSpace int    // Body with every whitespace code point removed
}

// Validate checks that frontmatter and whitespace removal never increased a count.
func (s FileStats) Validate() error {
	if s.BodyNoSpace < 0 || s.BodyNoSpace > s.Body || s.Body > s.Total {
		return fmt.Errorf("%w: %s no_space=%d body=%d total=%d",
			ErrInvariant, s.Filename, s.BodyNoSpace, s.Body, s.Total)
	}
	return nil
}

// WithFilename returns a copy of s labelled with name.
func (s FileStats) WithFilename(name string) FileStats {
	s.Filename = name
	return s
}
