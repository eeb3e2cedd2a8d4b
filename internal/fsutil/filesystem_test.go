package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem(t *testing.T) {
	t.Parallel()

	t.Run("write then read round-trips", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryFileSystem()
		require.NoError(t, m.WriteFile("dir/file.txt", []byte("hello"), 0644))

		data, err := m.ReadFile("dir/file.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("reading a missing file fails", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryFileSystem()
		_, err := m.ReadFile("nope")
		assert.Error(t, err)
	})

	t.Run("mkdirall records parents", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryFileSystem()
		require.NoError(t, m.MkdirAll("a/b/c", 0755))
		assert.True(t, m.Exists("a/b/c"))
		assert.True(t, m.Exists("a/b"))
		assert.True(t, m.Exists("a"))
	})

	t.Run("stat reports size and directories", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryFileSystem()
		require.NoError(t, m.WriteFile("f", []byte("abc"), 0644))
		require.NoError(t, m.MkdirAll("d", 0755))

		fi, err := m.Stat("f")
		require.NoError(t, err)
		assert.Equal(t, int64(3), fi.Size())
		assert.False(t, fi.IsDir())

		di, err := m.Stat("d")
		require.NoError(t, err)
		assert.True(t, di.IsDir())
	})

	t.Run("writes do not alias caller buffers", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryFileSystem()
		buf := []byte("abc")
		require.NoError(t, m.WriteFile("f", buf, 0644))
		buf[0] = 'x'

		data, err := m.ReadFile("f")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
	})
}

func TestCopyFile(t *testing.T) {
	t.Parallel()

	t.Run("copies contents", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryFileSystem()
		require.NoError(t, m.WriteFile("src", []byte("payload"), 0644))
		require.NoError(t, CopyFile(m, "src", "dst"))

		data, err := m.ReadFile("dst")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("missing source fails", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, CopyFile(NewMemoryFileSystem(), "missing", "dst"))
	})
}

func TestOSFileSystem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	osfs := OSFileSystem{}

	path := filepath.Join(dir, "sub", "file.txt")
	require.NoError(t, osfs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, osfs.WriteFile(path, []byte("data"), 0644))

	assert.True(t, osfs.Exists(path))
	assert.False(t, osfs.Exists(filepath.Join(dir, "missing")))

	data, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	fi, err := osfs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(4), fi.Size())
}
