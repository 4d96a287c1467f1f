package block

import "github.com/corblivar3d/corblivar/geom"

// ID identifies a Block within its owning Set. IDs are assigned by Set.Add
// in insertion order and are stable for the Set's lifetime.
type ID int

// Kind discriminates the four roles a Block can play. Behavior dispatches
// on Kind rather than through a type hierarchy.
type Kind uint8

const (
	// Regular is an ordinary hard or soft circuit block.
	Regular Kind = iota
	// Pin is a fixed, zero-area terminal.
	Pin
	// TSVGroup is a square-ish island sized to fit a number of TSVs.
	TSVGroup
	// RBOD is the singleton reference-block-on-die anchor at (0,0).
	RBOD
)

// String renders a Kind for logs and solution files.
func (k Kind) String() string {
	switch k {
	case Regular:
		return "REGULAR"
	case Pin:
		return "PIN"
	case TSVGroup:
		return "TSV_GROUP"
	case RBOD:
		return "RBOD"
	default:
		return "UNKNOWN"
	}
}

// AlignmentStatus records the outcome of the most recent alignment
// evaluation touching this block. Only one (failing) direction is ever
// recorded at a time, matching the original model.
type AlignmentStatus uint8

const (
	AlignUndef AlignmentStatus = iota
	AlignSuccess
	AlignFailHorTooLeft
	AlignFailHorTooRight
	AlignFailVertTooLow
	AlignFailVertTooHigh
)

func (s AlignmentStatus) String() string {
	switch s {
	case AlignSuccess:
		return "SUCCESS"
	case AlignFailHorTooLeft:
		return "FAIL_HOR_TOO_LEFT"
	case AlignFailHorTooRight:
		return "FAIL_HOR_TOO_RIGHT"
	case AlignFailVertTooLow:
		return "FAIL_VERT_TOO_LOW"
	case AlignFailVertTooHigh:
		return "FAIL_VERT_TOO_HIGH"
	default:
		return "UNDEF"
	}
}

// ARRange is the [min, max] aspect-ratio range allowed for a soft block.
type ARRange struct {
	Min, Max float64
}

// Contains reports whether ar lies within [r.Min, r.Max] up to geom.Eps.
func (r ARRange) Contains(ar float64) bool {
	return !geom.Less(ar, r.Min) && !geom.Greater(ar, r.Max)
}

// Block is a single circuit block, pin, TSV island, or the RBOD anchor.
//
// Soft is meaningful only for Kind == Regular; AR is consulted by the
// rotate and reshape operators. TSVCount and Pitch are meaningful only for
// Kind == TSVGroup.
type Block struct {
	ID   ID
	Name string
	Kind Kind

	BB       geom.Rect
	Die      int // -1 until placed
	Soft     bool
	AR       ARRange
	PowerUW  float64 // power density, microwatts per square micrometre
	Placed   bool
	Floorplacement bool

	Alignment AlignmentStatus

	// TSVCount and Pitch are only populated for Kind == TSVGroup.
	TSVCount int
	Pitch    float64
}

// PowerWatts converts the block's power density and current area into an
// absolute power figure in watts (power density is uW/um^2, area is um^2).
func (b *Block) PowerWatts() float64 {
	return b.PowerUW * b.BB.Area * 1.0e-6
}

// Rotate swaps width and height in place. Callers are expected to have
// already checked AR admissibility for soft blocks; hard blocks may always
// rotate.
func (b *Block) Rotate() {
	b.BB = geom.NewRect(b.BB.LL.X, b.BB.LL.Y, b.BB.H, b.BB.W)
}

// AspectRatio returns width/height of the block's current bounding box, or
// 0 if height is 0.
func (b *Block) AspectRatio() float64 {
	if b.BB.H == 0 {
		return 0
	}
	return b.BB.W / b.BB.H
}
