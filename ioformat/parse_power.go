package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corblivar3d/corblivar/block"
)

// ParsePower reads one power-density value per line, in the same order as
// the blocks file, and assigns them to ids via blocks.
func ParsePower(r io.Reader, blocks *block.Set, ids []block.ID) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() && i < len(ids) {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return fmt.Errorf("%w: power value %q", ErrMalformedLine, line)
		}

		blocks.Get(ids[i]).PowerUW = v
		i++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ioformat: reading power: %w", err)
	}

	return nil
}
