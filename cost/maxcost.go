package cost

// MaxCost holds the running maximum observed for every normalized term,
// captured during initial random sampling per spec.md §4.4. A zero value
// means "not yet observed" (or "not applicable", e.g. the 2D case's TSV
// maximum), in which case normalize leaves the term at zero rather than
// dividing by zero.
type MaxCost struct {
	HPWL        float64
	RoutingUtil float64
	TSVs        float64
	Alignments  float64
	Thermal     float64
}

// Sample records raw into every currently-unset (zero) max term, per
// spec.md §4.4 ("max_cost_* is set to the first observed value").
func (m *MaxCost) Sample(raw Cost) {
	if m.HPWL == 0 {
		m.HPWL = raw.HPWL
	}
	if m.RoutingUtil == 0 {
		m.RoutingUtil = raw.RoutingUtil
	}
	if m.TSVs == 0 {
		m.TSVs = raw.TSVs
	}
	if m.Alignments == 0 {
		m.Alignments = raw.Alignments
	}
	if m.Thermal == 0 {
		m.Thermal = raw.Thermal
	}
}

// normalize divides raw by max, or returns 0 if max is 0 ("not applicable").
func normalize(raw, max float64) float64 {
	if max == 0 {
		return 0
	}
	return raw / max
}
