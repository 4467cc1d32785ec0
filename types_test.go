package testresources

import (
	"bufio"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/test-resources/classpath"
	"github.com/wippyai/test-resources/errors"
)

func firstLine(t *testing.T, rf *ResourceFile, name string) string {
	t.Helper()
	f, err := rf.Get(name)
	require.NoError(t, err)
	defer f.Close()

	sc := bufio.NewScanner(f)
	require.True(t, sc.Scan())
	return sc.Text()
}

func TestResourceFile(t *testing.T) {
	rf := NewResourceFile(classpath.FromDirs("testdata"))

	t.Run("in sub", func(t *testing.T) {
		assert.Equal(t, "File in Sub directory.", firstLine(t, rf, "sub/file-in-sub.txt"))
	})

	t.Run("root", func(t *testing.T) {
		assert.Equal(t, "This is anton.txt", firstLine(t, rf, "anton.txt"))
	})

	t.Run("sub anton", func(t *testing.T) {
		assert.Equal(t, "Anton.txt in sub. Line 1", firstLine(t, rf, "sub/anton.txt"))
	})

	t.Run("does not exist", func(t *testing.T) {
		_, err := rf.Get("egon")
		require.ErrorIs(t, err, errors.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "'egon'")
	})
}

func TestResourcePath(t *testing.T) {
	rp := NewResourcePath(classpath.FromDirs("testdata"))

	t.Run("sub", func(t *testing.T) {
		p, err := rp.Get("sub/anton.txt")
		require.NoError(t, err)
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, antonSub, string(data))
	})

	t.Run("root", func(t *testing.T) {
		lines, err := rp.ReadAllLines("anton.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"This is anton.txt"}, lines)
	})

	t.Run("lines stream", func(t *testing.T) {
		s, err := rp.Lines("sub/anton.txt")
		require.NoError(t, err)
		defer s.Close()
		lines, err := s.Collect()
		require.NoError(t, err)
		assert.Equal(t, []string{"Anton.txt in sub. Line 1", "Anton.txt in sub. Line 2"}, lines)
	})

	t.Run("encoding", func(t *testing.T) {
		lines, err := rp.ReadAllLinesEncoding("latin1.txt", "ISO-8859-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"café", "naïve"}, lines)

		s, err := rp.LinesEncoding("latin1.txt", "ISO-8859-1")
		require.NoError(t, err)
		streamed, err := s.Collect()
		require.NoError(t, err)
		assert.Equal(t, lines, streamed)
	})

	t.Run("bytes", func(t *testing.T) {
		data, err := rp.ReadAllBytes("latin1.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("caf\xe9\nna\xefve\n"), data)
	})

	t.Run("does not exist", func(t *testing.T) {
		_, err := rp.Get("egon")
		require.ErrorIs(t, err, errors.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "'egon'")

		_, err = rp.ReadAllBytes("egon")
		assert.ErrorIs(t, err, errors.ErrResourceNotFound)
	})

	t.Run("not on disk", func(t *testing.T) {
		mem := NewResourcePath(classpath.New(classpath.FS(fstest.MapFS{"anton.txt": {Data: []byte("x")}})))
		_, err := mem.Get("anton.txt")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errors.ErrResourceNotFound)

		lines, err := mem.ReadAllLines("anton.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, lines)
	})
}

func TestHolders_String(t *testing.T) {
	assert.Equal(t, "a\nb", ContentLines{Lines: []string{"a", "b"}}.String())
	assert.Equal(t, "a\r\n", ContentString{Content: "a\r\n"}.String())
}
