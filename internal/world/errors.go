package world

import "errors"

var (
	// ErrPositionOutOfBounds is returned by position-addressed accessors when
	// the position falls outside the world grid or the chunk.
	ErrPositionOutOfBounds = errors.New("position out of bounds")

	// ErrNibbleRange is returned when a 4-bit field is given a value above 15.
	ErrNibbleRange = errors.New("nibble value out of range")

	// ErrNotSquare is returned by FromChunks when the chunk list cannot be
	// arranged as a square inside the grid.
	ErrNotSquare = errors.New("chunk list is not a square sub-grid")

	// ErrChunkShared is returned when a chunk would be held by two slots.
	ErrChunkShared = errors.New("chunk is already held by another slot")
)
