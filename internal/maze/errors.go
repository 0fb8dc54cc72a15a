package maze

import "errors"

var (
	// ErrMalformedLevel is returned when a level file cannot be read or parsed.
	ErrMalformedLevel = errors.New("maze: malformed level")

	// ErrDegenerateConfiguration is returned when entity geometry or the
	// playfield leaves no valid collider or spawn position.
	ErrDegenerateConfiguration = errors.New("maze: degenerate configuration")

	// ErrAssetMissing marks a resource that does not exist. A missing level
	// file is reported as both ErrMalformedLevel and ErrAssetMissing.
	ErrAssetMissing = errors.New("maze: asset missing")
)
