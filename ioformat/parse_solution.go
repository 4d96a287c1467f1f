package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
)

// ParseSolution reads a Corblivar solution file written by WriteSolution
// and reconstructs its Representation, also applying each tuple's stored
// width/height onto the corresponding block (soft blocks may have been
// reshaped since the benchmark file was read). Block positions are not
// part of the file; callers should run layout.Generate afterward to
// derive them from the reconstructed CBL.
func ParseSolution(r io.Reader, blocks *block.Set, layers int) (*cbl.Representation, error) {
	rep := cbl.NewRepresentation(layers)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	cur := -1
	for {
		tok, ok := next()
		if !ok {
			break
		}

		switch tok {
		case "CBL":
			if _, ok := next(); !ok { // "["
				return nil, fmt.Errorf("%w: truncated CBL header", ErrMalformedLine)
			}
			layerTok, ok := next()
			if !ok {
				return nil, fmt.Errorf("%w: truncated CBL header", ErrMalformedLine)
			}
			layer, err := strconv.Atoi(layerTok)
			if err != nil {
				return nil, fmt.Errorf("%w: CBL layer %q", ErrMalformedLine, layerTok)
			}
			if _, ok := next(); !ok { // "]"
				return nil, fmt.Errorf("%w: truncated CBL header", ErrMalformedLine)
			}
			cur = layer

		case "(":
			triple, w, h, err := parseSolutionTuple(next)
			if err != nil {
				return nil, err
			}
			if cur < 0 || cur >= len(rep.Dies) {
				return nil, fmt.Errorf("%w: tuple before CBL header", ErrMalformedLine)
			}
			rep.Dies[cur].Triples = append(rep.Dies[cur].Triples, triple)
			b := blocks.Get(triple.Block)
			b.BB.W, b.BB.H = w, h
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading solution: %w", err)
	}

	return rep, nil
}

func parseSolutionTuple(next func() (string, bool)) (cbl.Triple, float64, float64, error) {
	idTok, ok := next()
	if !ok {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: truncated tuple", ErrMalformedLine)
	}
	id, err := strconv.Atoi(idTok)
	if err != nil {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: block id %q", ErrMalformedLine, idTok)
	}

	dirTok, ok := next()
	if !ok {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: truncated tuple", ErrMalformedLine)
	}
	var dir cbl.Direction
	switch dirTok {
	case "H":
		dir = cbl.H
	case "V":
		dir = cbl.V
	default:
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: direction %q", ErrMalformedLine, dirTok)
	}

	tTok, ok := next()
	if !ok {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: truncated tuple", ErrMalformedLine)
	}
	tJunct, err := strconv.Atoi(tTok)
	if err != nil {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: T value %q", ErrMalformedLine, tTok)
	}

	wTok, ok := next()
	if !ok {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: truncated tuple", ErrMalformedLine)
	}
	w, err := strconv.ParseFloat(wTok, 64)
	if err != nil {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: width %q", ErrMalformedLine, wTok)
	}

	hTok, ok := next()
	if !ok {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: truncated tuple", ErrMalformedLine)
	}
	h, err := strconv.ParseFloat(hTok, 64)
	if err != nil {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: height %q", ErrMalformedLine, hTok)
	}

	// drop ")" and ","
	if _, ok := next(); !ok {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: truncated tuple", ErrMalformedLine)
	}
	if _, ok := next(); !ok {
		return cbl.Triple{}, 0, 0, fmt.Errorf("%w: truncated tuple", ErrMalformedLine)
	}

	return cbl.Triple{Block: block.ID(id), Dir: dir, T: tJunct}, w, h, nil
}
