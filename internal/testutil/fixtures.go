package testutil

import (
	"errors"
	"testing"

	"github.com/udisondev/battlemap/internal/battlemap"
)

// ErrSimulated is a sentinel error for testing error handling paths
var ErrSimulated = errors.New("simulated error for testing")

// Grid returns a width x height point grid indexed [x][y] filled with s.
func Grid(width, height int, s battlemap.MapPointStatus) [][]battlemap.MapPointStatus {
	points := make([][]battlemap.MapPointStatus, width)
	for x := range points {
		points[x] = make([]battlemap.MapPointStatus, height)
		for y := range points[x] {
			points[x][y] = s
		}
	}
	return points
}

// MustTemplate builds a minimum size template with a player at (0,0) and the
// given resource slots on empty cells.
func MustTemplate(tb testing.TB, resources map[battlemap.MapPointResource][]battlemap.Coordinate) *battlemap.Template {
	tb.Helper()

	points := Grid(battlemap.MinWidth, battlemap.MinHeight, battlemap.StatusEmpty)
	points[0][0] = battlemap.StatusPlayer

	t, err := battlemap.New(battlemap.MinWidth, battlemap.MinHeight, points, resources)
	if err != nil {
		tb.Fatalf("building test template: %v", err)
	}
	return t
}
