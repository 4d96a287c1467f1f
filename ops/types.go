package ops

import (
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/geom"
)

// Kind enumerates the seven mutation operators.
type Kind uint8

const (
	SwapWithinDie Kind = iota
	MoveAcrossDie
	SwapAcrossDie
	RotateBlock
	ReshapeSoft
	FlipDirection
	ChangeT
)

// Weights assigns a selection probability weight to each Kind, indexed by
// Kind value. Any non-negative values are accepted; PickKind normalizes.
type Weights [7]float64

// DefaultWeights gives every operator equal weight.
func DefaultWeights() Weights {
	var w Weights
	for i := range w {
		w[i] = 1
	}
	return w
}

// OpRecord captures exactly the state one operator call changed, so Revert
// can restore it without re-deriving an inverse operation. Only the fields
// relevant to Kind are populated; this is the tagged variant the Design
// Notes specify in place of "do the inverse op".
type OpRecord struct {
	Kind Kind

	// SwapWithinDie / SwapAcrossDie
	DieA, PosA int
	DieB, PosB int
	TripleA    cbl.Triple
	TripleB    cbl.Triple

	// MoveAcrossDie
	FromDie, FromPos int
	ToDie, ToPos     int
	Moved            cbl.Triple

	// RotateBlock / ReshapeSoft
	Block block.ID
	OldBB geom.Rect

	// FlipDirection
	Die, Pos int
	OldDir   cbl.Direction

	// ChangeT
	OldT int
}
