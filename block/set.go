package block

import (
	"fmt"

	"github.com/corblivar3d/corblivar/geom"
)

// Set is the single owning arena for every Block in a floorplanning run.
// Blocks, nets, and alignment requests elsewhere refer to blocks by ID;
// Set is the only place a Block's bounding box and flags are mutated.
//
// Complexity: Add is O(1) amortized; ByName is O(1).
type Set struct {
	blocks []Block
	byName map[string]ID
}

// NewSet creates an empty Set with a singleton RBOD already installed as
// ID 0, always placed at the origin per the invariant in spec.md §3.
func NewSet() *Set {
	s := &Set{byName: make(map[string]ID)}
	rbod := Block{
		Name:   "RBOD",
		Kind:   RBOD,
		BB:     geom.NewRect(0, 0, 0, 0),
		Die:    0,
		Placed: true,
	}
	s.blocks = append(s.blocks, rbod)
	s.byName["RBOD"] = 0
	s.blocks[0].ID = 0

	return s
}

// Add appends a new block with the given name and kind and returns its ID.
// AR defaults to [1,1] (hard block); soft blocks have their AR field set
// directly by the caller.
func (s *Set) Add(name string, kind Kind) (ID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, exists := s.byName[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	id := ID(len(s.blocks))
	s.blocks = append(s.blocks, Block{
		ID:   id,
		Name: name,
		Kind: kind,
		Die:  -1,
		AR:   ARRange{Min: 1, Max: 1},
	})
	s.byName[name] = id

	return id, nil
}

// Len returns the number of blocks in the Set, including RBOD.
func (s *Set) Len() int {
	return len(s.blocks)
}

// ByName resolves a block name to its ID.
func (s *Set) ByName(name string) (ID, error) {
	id, ok := s.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return id, nil
}

// Get returns a pointer to the block with the given ID for in-place
// mutation by the layout generator and operators. Callers outside those
// two packages should prefer View for a read-only copy.
func (s *Set) Get(id ID) *Block {
	return &s.blocks[id]
}

// View returns a read-only copy of the block with the given ID.
func (s *Set) View(id ID) Block {
	return s.blocks[id]
}

// All returns read-only copies of every block in the Set, RBOD included.
func (s *Set) All() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Mark returns the current arena length, a snapshot a caller can later pass
// to TruncateTo to discard every block appended since.
func (s *Set) Mark() int {
	return len(s.blocks)
}

// TruncateTo discards every block appended after mark (as returned by
// Mark), used by the cost evaluator to throw away one evaluation's scratch
// TSV-island blocks before rebuilding them fresh on the next, per
// spec.md §3 ("TSV islands are rebuilt from scratch every evaluation").
// Callers must ensure no surviving CBL, net, or alignment request still
// references a truncated ID.
func (s *Set) TruncateTo(mark int) {
	if mark >= len(s.blocks) {
		return
	}
	for i := mark; i < len(s.blocks); i++ {
		delete(s.byName, s.blocks[i].Name)
	}
	s.blocks = s.blocks[:mark]
}

// RBOD returns the ID of the reference-block-on-die anchor, always 0.
func (s *Set) RBOD() ID {
	return 0
}

// Regular returns the IDs of every block of kind Regular (RBOD, pins and
// TSV islands excluded), in arena order.
func (s *Set) Regular() []ID {
	ids := make([]ID, 0, len(s.blocks))
	for _, b := range s.blocks {
		if b.Kind == Regular {
			ids = append(ids, b.ID)
		}
	}
	return ids
}
