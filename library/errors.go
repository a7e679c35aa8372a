package library

import "errors"

var (
	// ErrAllocation is returned when a container has no room for another node.
	ErrAllocation = errors.New("allocation failed")

	// ErrInvalidInput is returned for arguments the core refuses outright.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTextOwned is returned when a Text already held by a container is
	// handed in again.
	ErrTextOwned = errors.New("text already owned")

	// ErrTextReleased is returned when a released Text is handed in.
	ErrTextReleased = errors.New("text already released")
)
