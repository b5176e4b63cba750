package battlemap

import (
	"fmt"
	"maps"
	"slices"
)

const (
	MinWidth  = 9
	MinHeight = 9

	// MinMapPoints is the minimum number of playable cells (9x9).
	MinMapPoints = MinWidth * MinHeight
)

// Template is a validated map template. A *Template is never partially
// initialized and is not mutated after New returns, so it may be shared
// between goroutines.
type Template struct {
	width     int
	height    int
	points    [][]MapPointStatus // [x][y]
	resources map[MapPointResource][]Coordinate
}

// New validates the given grid and resource slots and returns a template.
// points is indexed [x][y]. Inputs are copied.
//
// Checks run in a fixed order and the first failure is returned:
// dimensions, grid shape, playable-cell count, player presence, then every
// resource coordinate (resources in code order, coordinates in list order).
func New(width, height int, points [][]MapPointStatus, resources map[MapPointResource][]Coordinate) (*Template, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, minimum %dx%d", ErrDimensionTooSmall, width, height, MinWidth, MinHeight)
	}
	if err := checkShape(width, height, points); err != nil {
		return nil, err
	}

	if n := countMapPoints(points); n < MinMapPoints {
		return nil, &TooFewPointsError{Expected: MinMapPoints, Actual: n}
	}

	if !hasPlayer(points) {
		return nil, ErrNoPlayerSpawnPoint
	}

	for _, res := range Resources {
		for _, c := range resources[res] {
			if !c.In(width, height) {
				return nil, fmt.Errorf("%w: %s at (%s) on %dx%d map", ErrSpawnPointOutOfMap, res, c, width, height)
			}
			if !points[c.X][c.Y].IsMapPoint() {
				return nil, fmt.Errorf("%w: %s at (%s) is %s", ErrPointUnspawnable, res, c, points[c.X][c.Y])
			}
		}
	}
	for res := range resources {
		if !res.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownResourceType, res.Code())
		}
	}

	return &Template{
		width:     width,
		height:    height,
		points:    clonePoints(points),
		resources: cloneResources(resources),
	}, nil
}

func checkShape(width, height int, points [][]MapPointStatus) error {
	if len(points) != width {
		return fmt.Errorf("%w: %d columns, want %d", ErrGridShape, len(points), width)
	}
	for x, col := range points {
		if len(col) != height {
			return fmt.Errorf("%w: column %d has %d points, want %d", ErrGridShape, x, len(col), height)
		}
		for y, p := range col {
			if !p.Valid() {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownStatusCode, p.Code(), x, y)
			}
		}
	}
	return nil
}

func countMapPoints(points [][]MapPointStatus) int {
	n := 0
	for _, col := range points {
		for _, p := range col {
			if p.IsMapPoint() {
				n++
			}
		}
	}
	return n
}

func hasPlayer(points [][]MapPointStatus) bool {
	for _, col := range points {
		if slices.Contains(col, StatusPlayer) {
			return true
		}
	}
	return false
}

// Width returns the number of columns.
func (t *Template) Width() int { return t.width }

// Height returns the number of rows.
func (t *Template) Height() int { return t.height }

// At returns the status of cell (x, y). Out of range cells are unavailable.
func (t *Template) At(x, y int) MapPointStatus {
	if !(Coordinate{X: x, Y: y}).In(t.width, t.height) {
		return StatusUnavailable
	}
	return t.points[x][y]
}

// Points returns a copy of the grid, indexed [x][y].
func (t *Template) Points() [][]MapPointStatus {
	return clonePoints(t.points)
}

// Resources returns a copy of the resource spawn slots.
func (t *Template) Resources() map[MapPointResource][]Coordinate {
	return cloneResources(t.resources)
}

// ResourcePoints returns a copy of the spawn slots of one resource kind.
func (t *Template) ResourcePoints(res MapPointResource) []Coordinate {
	return slices.Clone(t.resources[res])
}

// MapPointCount returns the number of playable cells.
func (t *Template) MapPointCount() int {
	return countMapPoints(t.points)
}

// Tighten would shrink the template to the bounding box of its playable
// cells. The operation is declared but has no defined behavior.
func (t *Template) Tighten() (*Template, error) {
	return nil, fmt.Errorf("tighten: %w", ErrNotSupported)
}

// Respawn would recompute the resource spawn slots. The operation is
// declared but has no defined behavior.
func (t *Template) Respawn() (*Template, error) {
	return nil, fmt.Errorf("respawn: %w", ErrNotSupported)
}

// Equal reports whether both templates describe the same map.
func (t *Template) Equal(o *Template) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.width != o.width || t.height != o.height {
		return false
	}
	for x := range t.points {
		if !slices.Equal(t.points[x], o.points[x]) {
			return false
		}
	}
	return maps.EqualFunc(t.resources, o.resources, slices.Equal[[]Coordinate])
}

func clonePoints(points [][]MapPointStatus) [][]MapPointStatus {
	out := make([][]MapPointStatus, len(points))
	for x, col := range points {
		out[x] = slices.Clone(col)
	}
	return out
}

func cloneResources(resources map[MapPointResource][]Coordinate) map[MapPointResource][]Coordinate {
	out := make(map[MapPointResource][]Coordinate, len(resources))
	for res, coords := range resources {
		out[res] = slices.Clone(coords)
	}
	return out
}
