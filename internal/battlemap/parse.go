package battlemap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Raw holds parsed but not yet validated template fields.
type Raw struct {
	Width     int
	Height    int
	Points    [][]MapPointStatus // [x][y]
	Resources map[MapPointResource][]Coordinate
}

// Template validates the raw fields. See New.
func (r Raw) Template() (*Template, error) {
	return New(r.Width, r.Height, r.Points, r.Resources)
}

// Parse reads a template in text form and validates it.
//
// Format:
//
//	<width> <height>
//	<row 0: one status digit per column>
//	...
//	<row height-1>
//	<resource> <x,y> <x,y> ...
//
// Row y supplies points[x][y] for every column x. Characters past width are
// ignored. A resource listed twice keeps the last list.
func Parse(r io.Reader) (*Template, error) {
	raw, err := ParseRaw(r)
	if err != nil {
		return nil, err
	}
	return raw.Template()
}

// ParseRaw tokenizes a template without validating its invariants. Only
// format errors are reported.
func ParseRaw(r io.Reader) (Raw, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Raw{}, fmt.Errorf("reading map template: %w", err)
	}
	return parseLines(strings.Split(string(content), "\n"))
}

// LoadFile parses and validates the template file at path.
func LoadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map template: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading map template %s: %w", path, err)
	}
	slog.Debug("map template loaded",
		"path", path,
		"width", t.Width(),
		"height", t.Height(),
		"map_points", t.MapPointCount())
	return t, nil
}

func parseLines(lines []string) (Raw, error) {
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if len(lines) == 0 {
		return Raw{}, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	width, height, err := parseDimensions(lines[0])
	if err != nil {
		return Raw{}, fmt.Errorf("line 1: %w", err)
	}
	if len(lines)-1 < height {
		return Raw{}, fmt.Errorf("%w: %d rows, want %d", ErrMalformed, len(lines)-1, height)
	}

	// Rows bound the grid size; check them before allocating from the header.
	for y, row := range lines[1 : 1+height] {
		if len(row) < width {
			return Raw{}, fmt.Errorf("line %d: %w: row has %d points, want %d", 2+y, ErrMalformed, len(row), width)
		}
	}

	points := make([][]MapPointStatus, width)
	for x := range points {
		points[x] = make([]MapPointStatus, height)
	}
	for y := range height {
		row := lines[1+y]
		for x := range width {
			s, ok := statusFromChar(row[x])
			if !ok {
				return Raw{}, fmt.Errorf("line %d: %w: %q at column %d", 2+y, ErrUnknownStatusCode, row[x], x)
			}
			points[x][y] = s
		}
	}

	resources := make(map[MapPointResource][]Coordinate)
	for i, line := range lines[1+height:] {
		lineNo := 2 + height + i
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		res, err := ParseMapPointResource(fields[0])
		if err != nil {
			return Raw{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		coords := make([]Coordinate, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			c, err := parseCoordinate(tok)
			if err != nil {
				return Raw{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			coords = append(coords, c)
		}
		resources[res] = coords
	}

	return Raw{Width: width, Height: height, Points: points, Resources: resources}, nil
}

func parseDimensions(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: dimension header %q", ErrMalformed, line)
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q: %w", ErrMalformed, fields[0], err)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q: %w", ErrMalformed, fields[1], err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrMalformed, width, height)
	}
	return width, height, nil
}
