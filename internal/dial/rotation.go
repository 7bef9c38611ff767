package dial

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Direction is the turn direction of a rotation command.
type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Rotation is a single dial instruction: a direction and a click count.
type Rotation struct {
	Dir  Direction
	Dist int
}

// ParseScript reads a rotation script, one command per line, in the
// form <L|R><non-negative integer>. Blank lines are skipped. Parsing
// is fail-fast: the first malformed line aborts with an error naming
// the line.
func ParseScript(r io.Reader) ([]Rotation, error) {
	var rots []Rotation

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rot, err := parseRotation(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rots = append(rots, rot)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rots, nil
}

func parseRotation(line string) (Rotation, error) {
	dir := Direction(line[0])
	if dir != Left && dir != Right {
		return Rotation{}, fmt.Errorf("invalid rotation %q: direction must be L or R", line)
	}

	dist, err := strconv.Atoi(line[1:])
	if err != nil {
		return Rotation{}, fmt.Errorf("invalid rotation %q: distance is not an integer", line)
	}
	if dist < 0 {
		return Rotation{}, fmt.Errorf("invalid rotation %q: distance must be non-negative", line)
	}

	return Rotation{Dir: dir, Dist: dist}, nil
}
