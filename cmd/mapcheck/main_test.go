package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/battlemap/internal/battlemap"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"too few", fmt.Errorf("loading: %w", &battlemap.TooFewPointsError{Expected: 81, Actual: 70}), "map points: need 81, have 70"},
		{"no player", battlemap.ErrNoPlayerSpawnPoint, "spawn: no player spawn point"},
		{"unspawnable", battlemap.ErrPointUnspawnable, "resource: map point unspawnable"},
		{"unknown resource", battlemap.ErrUnknownResourceType, "format: unknown resource type"},
		{"dimension", battlemap.ErrDimensionTooSmall, "dimension: map dimension too small"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.err))
		})
	}
}
