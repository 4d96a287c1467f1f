package cbl

import "errors"

// ErrBlockNotOnAnyDie indicates a block.ID lookup against a Representation
// found no owning die, violating the "each block appears in exactly one
// die's CBL exactly once" invariant.
var ErrBlockNotOnAnyDie = errors.New("cbl: block not found on any die")

// ErrBlockPlacedTwice indicates the same block.ID appears in more than one
// die's triple sequence, or more than once within a die.
var ErrBlockPlacedTwice = errors.New("cbl: block appears more than once across dies")
