package hub_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/hubloom-cli/internal/hub"
)

func TestCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hubs", "videos")

	h, err := hub.Create("videos", "editing notes", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, h.RootDir())
	assert.FileExists(t, filepath.Join(dir, hub.FileName))

	_, err = hub.Create("videos", "", dir)
	assert.ErrorIs(t, err, hub.ErrExists)
}

func TestCreateIntoEmptyAndOccupiedDirs(t *testing.T) {
	empty := t.TempDir()
	_, err := hub.Create("empty", "", empty)
	require.NoError(t, err)

	occupied := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(occupied, "notes.md"), []byte("x"), 0o644))
	_, err = hub.Create("occupied", "", occupied)
	require.Error(t, err)
	assert.NotErrorIs(t, err, hub.ErrExists)
	assert.NoFileExists(t, filepath.Join(occupied, hub.FileName))
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	_, err := hub.Create("docs", "", root)
	require.NoError(t, err)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	file := filepath.Join(nested, "draft.md")
	require.NoError(t, os.WriteFile(file, []byte("# Draft"), 0o644))

	for _, start := range []string{root, nested, file} {
		got, err := hub.Locate(start)
		require.NoError(t, err, start)
		assert.Equal(t, root, got)
	}

	_, err = hub.Locate(t.TempDir())
	assert.ErrorIs(t, err, hub.ErrNoHub)
}

func TestNames(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha"} {
		_, err := hub.Create(name, "", filepath.Join(root, name))
		require.NoError(t, err)
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "not-a-hub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), nil, 0o644))

	names, err := hub.Names(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	names, err = hub.Names(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}
