package battlemap

// BattleObject is any occupant that can be spawned on a map point (player,
// chest, monster, field boss). The map never looks past its identity.
type BattleObject interface {
	ObjectID() uint32
}

// MapModel is the grid record handed to the persistence layer.
type MapModel struct {
	Width          int                               `json:"w"`
	Height         int                               `json:"h"`
	PointStatus    [][]MapPointStatus                `json:"pt"` // [x][y]
	ResourcePoints map[MapPointResource][]Coordinate `json:"res"`
}

// MapPoint is the per-cell record of a stored map.
type MapPoint struct {
	Status    MapPointStatus     `json:"s"`
	Object    BattleObject       `json:"-"`
	Coord     Coordinate         `json:"c"`
	Resources []MapPointResource `json:"res,omitempty"`
}

// ToModel projects the template into the persistence shape. The result
// shares no memory with t.
func (t *Template) ToModel() MapModel {
	return MapModel{
		Width:          t.width,
		Height:         t.height,
		PointStatus:    t.Points(),
		ResourcePoints: t.Resources(),
	}
}

// Template validates the model again and returns the template it describes.
func (m MapModel) Template() (*Template, error) {
	return New(m.Width, m.Height, m.PointStatus, m.ResourcePoints)
}

// Points expands the model into per-cell records indexed [x][y]. Every
// resource kind whose slot list names a cell is attached to it, in code
// order. Objects are left empty.
func (m MapModel) Points() [][]MapPoint {
	out := make([][]MapPoint, len(m.PointStatus))
	for x, col := range m.PointStatus {
		out[x] = make([]MapPoint, len(col))
		for y, s := range col {
			out[x][y] = MapPoint{Status: s, Coord: Coordinate{X: x, Y: y}}
		}
	}
	for _, res := range Resources {
		for _, c := range m.ResourcePoints[res] {
			if c.X < 0 || c.X >= len(out) || c.Y < 0 || c.Y >= len(out[c.X]) {
				continue
			}
			p := &out[c.X][c.Y]
			if n := len(p.Resources); n > 0 && p.Resources[n-1] == res {
				continue
			}
			p.Resources = append(p.Resources, res)
		}
	}
	return out
}
