package gridmap_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `3 3
0 0
0 0 0
0 -1 0
0 0 4
`

func TestParse_WellFormed(t *testing.T) {
	g, err := gridmap.Parse(strings.NewReader(wellFormed))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, gridmap.Cell{X: 0, Y: 0}, g.Start())
	assert.Equal(t, [][]int{{0, 0, 0}, {0, -1, 0}, {0, 0, 4}}, g.Rows())
}

// TestParse_BlankLines checks that blank lines anywhere are skipped.
func TestParse_BlankLines(t *testing.T) {
	in := "\n2 1\n\n1 0\n\n  5   6  \n\n\n"
	g, err := gridmap.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 6}}, g.Rows())
	assert.Equal(t, gridmap.Cell{X: 1, Y: 0}, g.Start())
}

// TestParse_FormatErrors lists every malformed shape the loader must reject.
func TestParse_FormatErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"Empty", "", 0},
		{"DimsOneToken", "3\n0 0\n0 0 0\n", 1},
		{"DimsThreeTokens", "3 1 1\n0 0\n0 0 0\n", 1},
		{"DimsNotInt", "3 x\n0 0\n0 0 0\n", 1},
		{"DimsZero", "0 1\n0 0\n", 1},
		{"DimsNegative", "2 -1\n0 0\n", 1},
		{"MissingStart", "1 1\n", 0},
		{"StartOneToken", "1 1\n0\n0\n", 2},
		{"StartNotInt", "1 1\n0 a\n0\n", 2},
		{"StartOutsideBounds", "2 2\n2 0\n0 0\n0 0\n", 2},
		{"FewerRows", "2 3\n0 0\n0 0\n0 0\n", 0},
		{"MoreRows", "2 1\n0 0\n0 0\n0 0\n", 4},
		{"ShortRow", "3 2\n0 0\n0 0 0\n0 0\n", 4},
		{"LongRow", "2 1\n0 0\n0 0 0\n", 3},
		{"NonIntegerCost", "2 1\n0 0\n0 1.5\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, gridmap.ErrFormat)

			var fe *gridmap.FormatError
			require.True(t, errors.As(err, &fe), "want *FormatError, got %T", err)
			assert.Equal(t, tc.line, fe.Line)
			assert.NotEmpty(t, fe.Reason)
		})
	}
}

// TestParse_StartOutOfBoundsCause keeps the sentinel reachable through the FormatError.
func TestParse_StartOutOfBoundsCause(t *testing.T) {
	_, err := gridmap.Parse(strings.NewReader("1 1\n5 5\n0\n"))
	assert.ErrorIs(t, err, gridmap.ErrFormat)
	assert.ErrorIs(t, err, gridmap.ErrStartOutOfBounds)
}

// TestParse_NumErrorCause exposes the strconv failure for bad tokens.
func TestParse_NumErrorCause(t *testing.T) {
	_, err := gridmap.Parse(strings.NewReader("1 1\n0 0\nwall\n"))
	var ne *strconv.NumError
	assert.True(t, errors.As(err, &ne))
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(wellFormed), 0o600))

	g, err := gridmap.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Len())

	_, err = gridmap.Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, gridmap.ErrFormat, "I/O failures are not format errors")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestWrite_RoundTrip verifies Parse(Write(g)) reproduces g.
func TestWrite_RoundTrip(t *testing.T) {
	g, err := gridmap.New([][]int{{3, -1, 0}, {0, 12, -5}}, gridmap.Cell{X: 2, Y: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridmap.Write(&buf, g))
	assert.Equal(t, "3 2\n2 1\n3 -1 0\n0 12 -5\n", buf.String())

	back, err := gridmap.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Rows(), back.Rows())
	assert.Equal(t, g.Start(), back.Start())
}
