package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlemap/internal/battlemap"
	"github.com/udisondev/battlemap/internal/db"
	"github.com/udisondev/battlemap/internal/testutil"
)

func testTemplate(t *testing.T, chestY int) *battlemap.Template {
	return testutil.MustTemplate(t, map[battlemap.MapPointResource][]battlemap.Coordinate{
		battlemap.ResourceChest:   {{X: 1, Y: chestY}},
		battlemap.ResourceMonster: {{X: 4, Y: 4}, {X: 5, Y: 5}},
	})
}

func saveTemplate(t *testing.T, repo *db.MapRepository, name string, tmpl *battlemap.Template) bool {
	t.Helper()
	fp := tmpl.Fingerprint()
	saved, err := repo.Save(context.Background(), name, tmpl.ToModel(), fp[:])
	require.NoError(t, err)
	return saved
}

func TestMapRepository(t *testing.T) {
	repo := db.NewMapRepository(testutil.SetupTestDB(t))
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		tmpl := testTemplate(t, 1)
		assert.True(t, saveTemplate(t, repo, "arena", tmpl))

		m, err := repo.Load(ctx, "arena")
		require.NoError(t, err)
		assert.Equal(t, tmpl.ToModel(), *m)

		loaded, err := repo.LoadTemplate(ctx, "arena")
		require.NoError(t, err)
		assert.True(t, tmpl.Equal(loaded))

		fp, err := repo.Fingerprint(ctx, "arena")
		require.NoError(t, err)
		want := tmpl.Fingerprint()
		assert.Equal(t, want[:], fp)
	})

	t.Run("unchanged fingerprint skips write", func(t *testing.T) {
		assert.False(t, saveTemplate(t, repo, "arena", testTemplate(t, 1)))
	})

	t.Run("changed template overwrites", func(t *testing.T) {
		changed := testTemplate(t, 2)
		assert.True(t, saveTemplate(t, repo, "arena", changed))

		loaded, err := repo.LoadTemplate(ctx, "arena")
		require.NoError(t, err)
		assert.True(t, changed.Equal(loaded))
	})

	t.Run("list and delete", func(t *testing.T) {
		saveTemplate(t, repo, "canyon", testTemplate(t, 3))

		names, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"arena", "canyon"}, names)

		require.NoError(t, repo.Delete(ctx, "canyon"))
		assert.ErrorIs(t, repo.Delete(ctx, "canyon"), db.ErrMapNotFound)
	})

	t.Run("missing map", func(t *testing.T) {
		_, err := repo.Load(ctx, "nowhere")
		assert.ErrorIs(t, err, db.ErrMapNotFound)

		_, err = repo.Fingerprint(ctx, "nowhere")
		assert.ErrorIs(t, err, db.ErrMapNotFound)
	})
}

func TestMigrate_Idempotent(t *testing.T) {
	pool := testutil.SetupTestDB(t)

	require.NoError(t, db.Migrate(context.Background(), pool))

	var n int
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT count(*) FROM map_templates`).Scan(&n))
	assert.Zero(t, n)
}
