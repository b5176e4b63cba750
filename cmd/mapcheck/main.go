// Map template checker: parses and validates template files.
//
// Usage:
//
//	go run ./cmd/mapcheck res/map/*.map          # validate files
//	go run ./cmd/mapcheck --format res/map/a.map # rewrite files in canonical form
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/udisondev/battlemap/internal/battlemap"
)

func main() {
	args := os.Args[1:]

	format := false
	if len(args) > 0 && args[0] == "--format" {
		format = true
		args = args[1:]
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: mapcheck [--format] <template>...")
		os.Exit(2)
	}

	failed := 0
	for _, path := range args {
		t, err := battlemap.LoadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", path, describe(err))
			continue
		}
		if format {
			if err := battlemap.WriteFile(path, t); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
				continue
			}
		}
		fmt.Printf("ok   %s (%dx%d, %d map points, %d resource kinds)\n",
			path, t.Width(), t.Height(), t.MapPointCount(), len(t.Resources()))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d templates invalid\n", failed, len(args))
		os.Exit(1)
	}
}

// describe prefixes the error with the violated rule.
func describe(err error) string {
	var tooFew *battlemap.TooFewPointsError
	switch {
	case errors.Is(err, battlemap.ErrDimensionTooSmall):
		return "dimension: " + err.Error()
	case errors.As(err, &tooFew):
		return fmt.Sprintf("map points: need %d, have %d", tooFew.Expected, tooFew.Actual)
	case errors.Is(err, battlemap.ErrNoPlayerSpawnPoint):
		return "spawn: " + err.Error()
	case errors.Is(err, battlemap.ErrSpawnPointOutOfMap), errors.Is(err, battlemap.ErrPointUnspawnable):
		return "resource: " + err.Error()
	case errors.Is(err, battlemap.ErrUnknownResourceType), errors.Is(err, battlemap.ErrUnknownStatusCode),
		errors.Is(err, battlemap.ErrMalformed):
		return "format: " + err.Error()
	default:
		return err.Error()
	}
}
