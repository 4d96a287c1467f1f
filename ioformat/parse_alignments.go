package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/block"
)

// ParseAlignments reads "s_i s_j type_x value_x type_y value_y signals"
// records, resolving s_i/s_j against already-parsed block names.
func ParseAlignments(r io.Reader, blocks *block.Set, aligns *align.List) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 7 {
			return fmt.Errorf("%w: alignment record %q", ErrMalformedLine, line)
		}

		i, err := blocks.ByName(fields[0])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownReference, fields[0])
		}
		j, err := blocks.ByName(fields[1])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownReference, fields[1])
		}

		x, err := parseAxisSpec(fields[2], fields[3])
		if err != nil {
			return err
		}
		y, err := parseAxisSpec(fields[4], fields[5])
		if err != nil {
			return err
		}

		signals, err := strconv.Atoi(fields[6])
		if err != nil {
			return fmt.Errorf("%w: signals %q", ErrMalformedLine, fields[6])
		}

		aligns.Add(i, j, x, y, signals)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ioformat: reading alignments: %w", err)
	}

	return nil
}

func parseAxisSpec(typeTok, valueTok string) (align.AxisSpec, error) {
	value, err := strconv.ParseFloat(valueTok, 64)
	if err != nil {
		return align.AxisSpec{}, fmt.Errorf("%w: axis value %q", ErrMalformedLine, valueTok)
	}

	switch typeTok {
	case "range":
		return align.AxisSpec{Type: align.Range, Value: value}, nil
	case "offset":
		return align.AxisSpec{Type: align.Offset, Value: value}, nil
	case "undef":
		return align.AxisSpec{Type: align.Undef, Value: value}, nil
	default:
		return align.AxisSpec{}, fmt.Errorf("%w: %q", ErrUnknownAxisType, typeTok)
	}
}
