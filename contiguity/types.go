package contiguity

import "github.com/corblivar3d/corblivar/netlist"

// Axis identifies which axis a contiguity check failed on.
type Axis uint8

const (
	// AxisX is the horizontal axis (left/right boundaries).
	AxisX Axis = iota
	// AxisY is the vertical axis (bottom/top boundaries).
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "vertical"
	}
	return "horizontal"
}

// Gap records one net's non-contiguous transition between two adjacent
// layers on one axis: the net's footprint on LayerLower and LayerLower+1
// does not overlap along Axis.
type Gap struct {
	Net        netlist.ID
	NetName    string
	LayerLower int
	Axis       Axis
}

// Report is the result of analysing every multi-layer net in a placement.
type Report struct {
	Gaps []Gap
}

// Contiguous reports whether no gap was found.
func (r Report) Contiguous() bool {
	return len(r.Gaps) == 0
}
