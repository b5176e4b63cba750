package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlemap/internal/battlemap"
	"github.com/udisondev/battlemap/internal/db"
	"github.com/udisondev/battlemap/internal/testutil"
)

const arenaMap = "9 9\n" +
	"211111111\n111111111\n111111111\n111111111\n111111111\n" +
	"111111111\n111111111\n111111111\n111111111\n" +
	"4 3,3 4,4\n"

// useConfig writes an importer config and points BATTLEMAP_CONFIG at it.
func useConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapimport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("BATTLEMAP_CONFIG", path)
}

func templateDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestRun_InvalidTemplateStopsBeforeDatabase(t *testing.T) {
	dir := templateDir(t, map[string]string{"broken.map": "9 9\n111\n"})
	// Nothing listens on port 1; reaching the database would fail differently.
	useConfig(t, fmt.Sprintf("template_dir: %s\ndatabase:\n  port: 1\n", dir))

	err := run(context.Background())
	require.ErrorIs(t, err, battlemap.ErrMalformed)
	assert.ErrorContains(t, err, "loading map templates")
}

func TestRun_BadConfig(t *testing.T) {
	useConfig(t, "load_workers: -1\n")

	err := run(context.Background())
	assert.ErrorContains(t, err, "loading config")
}

func TestRun_ImportsTemplates(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	cc := pool.Config().ConnConfig

	dir := templateDir(t, map[string]string{"arena.map": arenaMap})
	useConfig(t, fmt.Sprintf(`log_level: debug
template_dir: %s
load_workers: 2
database:
  host: %s
  port: %d
  user: %s
  password: %s
  dbname: %s
  sslmode: disable
`, dir, cc.Host, cc.Port, cc.User, cc.Password, cc.Database))

	require.NoError(t, run(context.Background()))

	repo := db.NewMapRepository(pool)
	names, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"arena"}, names)

	stored, err := repo.LoadTemplate(context.Background(), "arena")
	require.NoError(t, err)
	assert.Equal(t, []battlemap.Coordinate{{X: 3, Y: 3}, {X: 4, Y: 4}}, stored.ResourcePoints(battlemap.ResourceMonster))

	// A second import finds nothing to change.
	require.NoError(t, run(context.Background()))
}
