package battlemap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModel(t *testing.T) {
	tmpl := fixtureTemplate(t)

	m := tmpl.ToModel()
	assert.Equal(t, 9, m.Width)
	assert.Equal(t, 9, m.Height)
	assert.Equal(t, tmpl.Points(), m.PointStatus)
	assert.Equal(t, tmpl.Resources(), m.ResourcePoints)

	m.PointStatus[0][0] = StatusUnavailable
	assert.Equal(t, StatusEmpty, tmpl.At(0, 0))
}

func TestMapModel_Template(t *testing.T) {
	tmpl := fixtureTemplate(t)

	back, err := tmpl.ToModel().Template()
	require.NoError(t, err)
	assert.True(t, tmpl.Equal(back))

	broken := tmpl.ToModel()
	broken.Width = 3
	_, err = broken.Template()
	assert.ErrorIs(t, err, ErrDimensionTooSmall)
}

func TestMapModel_Points(t *testing.T) {
	m := MapModel{
		Width:       MinWidth,
		Height:      MinHeight,
		PointStatus: grid(MinWidth, MinHeight, StatusEmpty),
		ResourcePoints: map[MapPointResource][]Coordinate{
			ResourceChest:     {{X: 1, Y: 2}, {X: 1, Y: 2}},
			ResourceFieldBoss: {{X: 1, Y: 2}, {X: 50, Y: 50}},
		},
	}

	points := m.Points()
	require.Len(t, points, MinWidth)
	require.Len(t, points[1], MinHeight)

	p := points[1][2]
	assert.Equal(t, StatusEmpty, p.Status)
	assert.Equal(t, Coordinate{X: 1, Y: 2}, p.Coord)
	assert.Equal(t, []MapPointResource{ResourceChest, ResourceFieldBoss}, p.Resources)
	assert.Nil(t, p.Object)

	assert.Empty(t, points[2][1].Resources)
	assert.Equal(t, Coordinate{X: 8, Y: 8}, points[8][8].Coord)
}

func TestMapModel_JSON(t *testing.T) {
	m := fixtureTemplate(t).ToModel()

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back MapModel
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}
