package block

import (
	"fmt"
	"math"

	"github.com/corblivar3d/corblivar/geom"
)

// AddTSVGroup creates a TSVGroup block sized to fit count TSVs at the given
// pitch, re-centered inside ref, and appends it to the Set. Rows and
// columns are rounded up so the island never falls short of count TSVs;
// spare capacity is preferred over missing vias for signal routing.
func (s *Set) AddTSVGroup(name string, die int, count int, pitch float64, ref geom.Rect) (ID, error) {
	if count <= 0 {
		return 0, fmt.Errorf("block: TSV group %q requires count > 0", name)
	}

	id, err := s.Add(name, TSVGroup)
	if err != nil {
		return 0, err
	}

	b := s.Get(id)
	b.Die = die
	b.TSVCount = count
	b.Pitch = pitch
	b.Placed = true
	b.BB = sizedTSVIsland(count, pitch, ref)

	return id, nil
}

// sizedTSVIsland computes the square bounding box fitting count TSVs at
// pitch, centered within ref.
func sizedTSVIsland(count int, pitch float64, ref geom.Rect) geom.Rect {
	side := math.Ceil(math.Sqrt(float64(count)))
	w := side * pitch
	h := side * pitch

	llX := ref.LL.X + (ref.W-w)/2
	llY := ref.LL.Y + (ref.H-h)/2

	return geom.NewRect(llX, llY, w, h)
}

// AddTSVGroupWH creates a TSVGroup block of explicit width w and height h
// (rather than the square sizing of AddTSVGroup), centered within ref. Used
// for vertical-bus alignment islands, whose width is fixed by the
// alignment request's X axis value per spec.md §4.4.
func (s *Set) AddTSVGroupWH(name string, die int, count int, pitch, w, h float64, ref geom.Rect) (ID, error) {
	if count <= 0 {
		return 0, fmt.Errorf("block: TSV group %q requires count > 0", name)
	}

	id, err := s.Add(name, TSVGroup)
	if err != nil {
		return 0, err
	}

	b := s.Get(id)
	b.Die = die
	b.TSVCount = count
	b.Pitch = pitch
	b.Placed = true

	llX := ref.LL.X + (ref.W-w)/2
	llY := ref.LL.Y + (ref.H-h)/2
	b.BB = geom.NewRect(llX, llY, w, h)

	return id, nil
}

// ResizeTSVGroup re-derives a TSV island's bounding box after its reference
// region changes (e.g. when islands are shifted to avoid overlap).
func (s *Set) ResizeTSVGroup(id ID, ref geom.Rect) error {
	b := s.Get(id)
	if b.Kind != TSVGroup {
		return fmt.Errorf("block: %q is not a TSV group", b.Name)
	}

	b.BB = sizedTSVIsland(b.TSVCount, b.Pitch, ref)

	return nil
}
