package converter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLine(t *testing.T) {
	assert.Equal(t, `INSERT INTO "t" VALUES ('it''s');`, NormalizeLine(`  INSERT INTO "t" VALUES ('it\'s');`+"\r\n"))
	assert.Equal(t, `'C:\\dir\\'`, NormalizeLine(`'C:\\dir\\'`))
	assert.Equal(t, `'a\\''b'`, NormalizeLine(`'a\\\'b'`))
	assert.Equal(t, "", NormalizeLine(" \t\n"))
}

func TestLineSource(t *testing.T) {
	src := NewLineSource(strings.NewReader("a\n  b  \n\nc"), "mem")
	var got []string
	for {
		line, ok, err := src.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, line)
	}
	assert.Equal(t, []string{"a", "b", "", "c"}, got)
	assert.Equal(t, 4, src.LineNo())
}

func TestLineSourceLongLine(t *testing.T) {
	long := "INSERT INTO \"t\" VALUES " + strings.Repeat("(1,'x'),", 100000) + "(2,'y');"
	src := NewLineSource(strings.NewReader(long+"\n"), "mem")
	line, ok, err := src.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, long, line)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestLineSourceReadError(t *testing.T) {
	_, _, err := NewLineSource(failingReader{}, "dump.sql").Next()
	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "read", rerr.Op)
	assert.Equal(t, "dump.sql", rerr.Path)
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 3, countLines(strings.NewReader("a\nb\nc")))
	assert.Equal(t, 3, countLines(strings.NewReader("a\nb\nc\n")))
	assert.Equal(t, 0, countLines(strings.NewReader("")))
	assert.Equal(t, UnknownTotal, CountLines(StdStream))
	assert.Equal(t, UnknownTotal, CountLines(filepath.Join(t.TempDir(), "missing.sql")))

	path := filepath.Join(t.TempDir(), "dump.sql")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\n"), 0o644))
	assert.Equal(t, 2, CountLines(path))
}

func TestOpenInputMissing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "nope.sql"))
	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "open", rerr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

