package block

import "errors"

// Sentinel errors for Set operations.
var (
	// ErrEmptyName indicates a block was added with an empty Name.
	ErrEmptyName = errors.New("block: name is empty")

	// ErrDuplicateName indicates a block name was already present in the Set.
	ErrDuplicateName = errors.New("block: duplicate name")

	// ErrNotFound indicates a lookup referenced a name or ID not present in the Set.
	ErrNotFound = errors.New("block: not found")

	// ErrInvalidAspectRatio indicates AR.Min > AR.Max for a soft block.
	ErrInvalidAspectRatio = errors.New("block: invalid aspect-ratio range")

	// ErrRBODImmutable indicates an attempt to move, swap, or reshape the RBOD.
	ErrRBODImmutable = errors.New("block: RBOD is never subject to move/swap operators")
)
