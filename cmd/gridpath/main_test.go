package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMap stores text in a temp file and returns its path.
func writeMap(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

// cleanEnv pins the settings that config.Load reads.
func cleanEnv(t *testing.T) {
	t.Setenv("GRIDPATH_HEURISTIC", "")
	t.Setenv("GRIDPATH_CELL_SIZE", "")
	t.Setenv("GRIDPATH_WORKERS", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_Goal(t *testing.T) {
	cleanEnv(t)
	path := writeMap(t, "3 3\n0 0\n0 0 0\n0 0 0\n0 0 0\n")

	var out, errOut bytes.Buffer
	code := run([]string{"-map", path, "-goal", "2, 2"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())

	want := "path (0,0) (0,1) (1,1) (1,2) (2,2) cost=0 expanded=5\n" +
		"S..\n" +
		"**.\n" +
		".*G\n"
	assert.Equal(t, want, out.String())
}

func TestRun_NoPath(t *testing.T) {
	cleanEnv(t)
	path := writeMap(t, "3 3\n0 0\n0 0 0\n0 0 -1\n0 -1 0\n")

	var out, errOut bytes.Buffer
	code := run([]string{"-map", path, "-goal", "2,2"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(out.String(), "no path from (0,0) to (2,2)\n"), out.String())
}

func TestRun_BadGoal(t *testing.T) {
	cleanEnv(t)
	path := writeMap(t, "2 2\n0 0\n0 0\n0 0\n")

	for _, goal := range []string{"2,0", "0,-1", "x"} {
		var out, errOut bytes.Buffer
		code := run([]string{"-map", path, "-goal", goal}, strings.NewReader(""), &out, &errOut)
		assert.Equal(t, exitBadGoal, code, goal)
		assert.Contains(t, out.String(), "invalid destination", goal)
	}
}

func TestRun_LoadFailure(t *testing.T) {
	cleanEnv(t)
	var out, errOut bytes.Buffer

	short := writeMap(t, "2 3\n0 0\n0 0\n0 0\n")
	assert.Equal(t, exitLoad, run([]string{"-map", short, "-goal", "1,1"}, strings.NewReader(""), &out, &errOut))
	assert.Contains(t, errOut.String(), "invalid map file")

	errOut.Reset()
	missing := filepath.Join(t.TempDir(), "absent.txt")
	assert.Equal(t, exitLoad, run([]string{"-map", missing}, strings.NewReader(""), &out, &errOut))
	assert.Contains(t, errOut.String(), "cannot read map")
}

func TestRun_Usage(t *testing.T) {
	cleanEnv(t)
	var out, errOut bytes.Buffer
	assert.Equal(t, exitUsage, run(nil, strings.NewReader(""), &out, &errOut))
	assert.Contains(t, errOut.String(), "-map is required")

	path := writeMap(t, "1 1\n0 0\n0\n")
	assert.Equal(t, exitBadGoal, run([]string{"-map", path, "-heuristic", "greedy"}, strings.NewReader(""), &out, &errOut))
}

// TestRun_BadEnvironment reports malformed settings as a usage error, not a load failure.
func TestRun_BadEnvironment(t *testing.T) {
	path := writeMap(t, "1 1\n0 0\n0\n")
	for key, val := range map[string]string{"GRIDPATH_WORKERS": "many", "GRIDPATH_CELL_SIZE": "-3"} {
		t.Run(key, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv(key, val)

			var out, errOut bytes.Buffer
			code := run([]string{"-map", path, "-goal", "0,0"}, strings.NewReader(""), &out, &errOut)
			assert.Equal(t, exitUsage, code)
			assert.NotEqual(t, exitLoad, code)
			assert.Contains(t, errOut.String(), key)
		})
	}
}

func TestRun_Interactive(t *testing.T) {
	cleanEnv(t)
	path := writeMap(t, "2 1\n0 0\n0 0\n")

	var out, errOut bytes.Buffer
	in := strings.NewReader("1,0\n\n5,5\n0,0\n")
	code := run([]string{"-map", path, "-regions"}, in, &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())

	want := "regions: 1\n" +
		"  0: 2 cells from (0,0)\n" +
		"path (0,0) (1,0) cost=0 expanded=2\n" +
		"SG\n" +
		"invalid destination: gridmap: cell out of bounds: (5,5) outside 2x1\n" +
		"path (0,0) cost=0 expanded=1\n" +
		"G.\n"
	assert.Equal(t, want, out.String())
}

func TestRun_PNG(t *testing.T) {
	cleanEnv(t)
	path := writeMap(t, "2 2\n0 0\n0 0\n0 0\n")
	img := filepath.Join(t.TempDir(), "out.png")

	var out, errOut bytes.Buffer
	code := run([]string{"-map", path, "-goal", "1,1", "-png", img, "-cell", "8"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())

	info, err := os.Stat(img)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
