// Package catalog keeps the map templates of a directory by name.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlemap/internal/battlemap"
)

// Catalog is a read-only set of validated templates keyed by name.
type Catalog struct {
	templates map[string]*battlemap.Template
}

// Load parses every file with extension ext in dir, using at most workers
// concurrent parsers. The template name is the file name without ext.
// The first invalid file aborts the load.
func Load(ctx context.Context, dir, ext string, workers int) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template dir %s: %w", dir, err)
	}

	var (
		mu        sync.Mutex
		templates = make(map[string]*battlemap.Template, len(entries))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		path := filepath.Join(dir, e.Name())

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := battlemap.LoadFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			templates[name] = t
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("loaded map templates", "dir", dir, "count", len(templates))
	return &Catalog{templates: templates}, nil
}

// New builds a catalog from already validated templates.
func New(templates map[string]*battlemap.Template) *Catalog {
	c := &Catalog{templates: make(map[string]*battlemap.Template, len(templates))}
	for name, t := range templates {
		c.templates[name] = t
	}
	return c
}

// Get returns the template stored under name.
func (c *Catalog) Get(name string) (*battlemap.Template, bool) {
	t, ok := c.templates[name]
	return t, ok
}

// Names returns all template names in ascending order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
