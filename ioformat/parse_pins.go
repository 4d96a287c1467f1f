package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
)

// ParsePins reads "name x y" records into fixed, zero-area block.Pin
// entries.
func ParsePins(r io.Reader, blocks *block.Set) ([]block.ID, error) {
	var ids []block.ID

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: pin record %q", ErrMalformedLine, line)
		}

		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: pin record %q", ErrMalformedLine, line)
		}

		id, err := blocks.Add(fields[0], block.Pin)
		if err != nil {
			return nil, err
		}
		b := blocks.Get(id)
		b.BB = geom.NewRect(x, y, 0, 0)
		b.Placed = true

		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading pins: %w", err)
	}

	return ids, nil
}
