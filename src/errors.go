package src

import "errors"

// Sentinel errors the parser and CLI-level helpers return, so callers can
// branch with errors.Is instead of string-matching.
var (
	// ErrInputInvalid means the parser hit an illegal character or header.
	ErrInputInvalid = errors.New("maze: invalid input")
	// ErrInputTruncated means the stream ended before height rows were read.
	ErrInputTruncated = errors.New("maze: truncated input")
	// ErrSizeOutOfRange means width or height is <= 0 or exceeds 254.
	ErrSizeOutOfRange = errors.New("maze: size out of range")
	// ErrNoPath is raised by CLI-level helpers that require a non-empty
	// path; Solve and Astar themselves never return it, signaling "no
	// path" with an empty Path instead.
	ErrNoPath = errors.New("maze: no path found")
)
