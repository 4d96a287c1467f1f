package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/netlist"
)

// ParseNets reads repeated "NetDegree : k" blocks, each followed by k
// block or pin identifiers (each with its direction token, e.g. "B"), and adds one netlist.Net per record that
// connects two or more real circuit blocks (a net touching only pins is
// dropped, matching the original's handling of external-pin-only nets).
// Identifiers naming neither a known block nor a known pin are skipped.
func ParseNets(r io.Reader, blocks *block.Set, nets *netlist.List) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var tok string
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	netIndex := 0
	for {
		for {
			t, ok := next()
			if !ok {
				return checkScanErr(scanner)
			}
			tok = t
			if tok == "NetDegree" {
				break
			}
		}

		// drop ":"
		if _, ok := next(); !ok {
			return checkScanErr(scanner)
		}

		degreeTok, ok := next()
		if !ok {
			return checkScanErr(scanner)
		}
		degree, err := strconv.Atoi(degreeTok)
		if err != nil {
			return fmt.Errorf("%w: NetDegree value %q", ErrMalformedLine, degreeTok)
		}

		var blockIDs, pinIDs []block.ID
		for i := 0; i < degree; i++ {
			name, ok := next()
			if !ok {
				return checkScanErr(scanner)
			}
			// Each identifier is followed by its pin-direction token
			// (e.g. "B"), which carries no information used here.
			next()

			id, err := blocks.ByName(name)
			if err != nil {
				continue
			}
			switch blocks.View(id).Kind {
			case block.Pin:
				pinIDs = append(pinIDs, id)
			default:
				blockIDs = append(blockIDs, id)
			}
		}

		if len(blockIDs) >= 2 {
			nets.Add(fmt.Sprintf("n%d", netIndex), blockIDs, pinIDs)
		}
		netIndex++
	}
}

func checkScanErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ioformat: reading nets: %w", err)
	}
	return nil
}
