package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
)

// ParseBlocks reads a GSRC n-sets blocks file and adds one block.Regular
// per record to blocks, returning the IDs in file order (the order
// ParsePower expects). Each record is either:
//
//	name hardrectilinear 4 (0,0) (0,h) (w,h) (w,0)
//	softrectangular name area AR_min AR_max
func ParseBlocks(r io.Reader, blocks *block.Set) ([]block.ID, error) {
	var ids []block.ID

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var id block.ID
		var err error
		if fields[0] == "softrectangular" {
			id, err = parseSoftBlock(blocks, fields)
		} else {
			id, err = parseHardBlock(blocks, fields)
		}
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading blocks: %w", err)
	}

	return ids, nil
}

func parseSoftBlock(blocks *block.Set, fields []string) (block.ID, error) {
	if len(fields) < 5 {
		return 0, fmt.Errorf("%w: softrectangular record %q", ErrMalformedLine, strings.Join(fields, " "))
	}

	name := fields[1]
	area, err1 := strconv.ParseFloat(fields[2], 64)
	arMin, err2 := strconv.ParseFloat(fields[3], 64)
	arMax, err3 := strconv.ParseFloat(fields[4], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, fmt.Errorf("%w: softrectangular record %q", ErrMalformedLine, strings.Join(fields, " "))
	}

	id, err := blocks.Add(name, block.Regular)
	if err != nil {
		return 0, err
	}

	b := blocks.Get(id)
	b.Soft = true
	b.AR = block.ARRange{Min: arMin, Max: arMax}

	ar := arMin
	if ar <= 0 {
		ar = 1
	}
	w := math.Sqrt(area * ar)
	h := area / w
	b.BB = geom.NewRect(0, 0, w, h)

	return id, nil
}

func parseHardBlock(blocks *block.Set, fields []string) (block.ID, error) {
	if len(fields) < 7 || fields[1] != "hardrectilinear" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBlockType, strings.Join(fields, " "))
	}

	name := fields[0]

	var xs, ys []float64
	for _, tok := range fields[3:7] {
		x, y, err := parsePoint(tok)
		if err != nil {
			return 0, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	w := maxOf(xs) - minOf(xs)
	h := maxOf(ys) - minOf(ys)

	id, err := blocks.Add(name, block.Regular)
	if err != nil {
		return 0, err
	}
	blocks.Get(id).BB = geom.NewRect(0, 0, w, h)

	return id, nil
}

// parsePoint parses a "(x,y)" token, tolerating a trailing comma.
func parsePoint(tok string) (float64, float64, error) {
	tok = strings.Trim(tok, "(),")
	parts := strings.Split(tok, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: point %q", ErrMalformedLine, tok)
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("%w: point %q", ErrMalformedLine, tok)
	}
	return x, y, nil
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
