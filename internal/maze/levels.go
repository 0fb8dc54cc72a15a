package maze

import (
	"errors"
	"fmt"
	"io/fs"
)

// Levels is the ordered sequence of level identifiers a session plays
// through, resolved against a filesystem.
type Levels struct {
	fsys  fs.FS
	names []string
}

// NewLevels creates a level sequence. Names are paths within fsys.
func NewLevels(fsys fs.FS, names []string) *Levels {
	return &Levels{
		fsys:  fsys,
		names: append([]string(nil), names...),
	}
}

// Count returns the number of levels.
func (l *Levels) Count() int {
	return len(l.names)
}

// Name returns the identifier of level i, or "" if out of range.
func (l *Levels) Name(i int) string {
	if i < 0 || i >= len(l.names) {
		return ""
	}
	return l.names[i]
}

// Load parses level i into a fresh Grid. Every failure is an
// ErrMalformedLevel; a level that does not exist is also an ErrAssetMissing.
func (l *Levels) Load(i int) (*Grid, error) {
	if i < 0 || i >= len(l.names) {
		return nil, fmt.Errorf("%w: %w: level index %d out of range [0, %d)", ErrMalformedLevel, ErrAssetMissing, i, len(l.names))
	}
	name := l.names[i]

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, openError(name, err)
	}
	defer f.Close()

	g, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

// openError classifies a failure to open a level file.
func openError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w: level %s", ErrMalformedLevel, ErrAssetMissing, name)
	}
	return fmt.Errorf("%w: %s: %w", ErrMalformedLevel, name, err)
}
