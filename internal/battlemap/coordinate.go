package battlemap

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate addresses a grid cell as points[X][Y]. Value type.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewCoordinate returns a coordinate, rejecting negative components.
func NewCoordinate(x, y int) (Coordinate, error) {
	if x < 0 || y < 0 {
		return Coordinate{}, fmt.Errorf("%w: negative coordinate (%d,%d)", ErrMalformed, x, y)
	}
	return Coordinate{X: x, Y: y}, nil
}

// In reports whether the coordinate lies inside a width x height grid.
func (c Coordinate) In(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

func (c Coordinate) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// parseCoordinate reads the "x,y" token of a resource line.
func parseCoordinate(tok string) (Coordinate, error) {
	xs, ys, ok := strings.Cut(tok, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q", ErrMalformed, tok)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q: %w", ErrMalformed, tok, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q: %w", ErrMalformed, tok, err)
	}
	return NewCoordinate(x, y)
}
