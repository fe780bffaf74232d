package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scenery/pkg/obj"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsText(t *testing.T) {
	out, err := run(t, "stats", filepath.Join("testdata", "square.obj"))
	require.NoError(t, err)
	assert.Contains(t, out, "Positions: 4")
	assert.Contains(t, out, "Faces:     1")
	assert.Contains(t, out, "Ignored:   2")
	assert.Contains(t, out, "Vertices:  6")
	assert.Contains(t, out, "Triangles: 2")
	assert.Contains(t, out, "Max: (1.0000, 1.0000, 0.0000)")
}

func TestStatsYAML(t *testing.T) {
	square := filepath.Join("testdata", "square.obj")
	broken := filepath.Join("testdata", "broken.obj")
	out, err := run(t, "stats", "-o", "yaml", square, broken)
	require.NoError(t, err)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, square, reports[0].File)
	assert.Equal(t, 6, reports[0].Vertices)
	assert.Equal(t, 1, reports[0].Normals)

	assert.Equal(t, 1, reports[1].Malformed)
	assert.Equal(t, 6, reports[1].Vertices)
	assert.Equal(t, 3, reports[1].Positions)
}

func TestStatsStrict(t *testing.T) {
	_, err := run(t, "stats", "--strict", filepath.Join("testdata", "broken.obj"))
	assert.ErrorIs(t, err, obj.ErrIndexOutOfRange)
}

func TestStatsBadOutput(t *testing.T) {
	_, err := run(t, "stats", "-o", "json", filepath.Join("testdata", "square.obj"))
	assert.ErrorContains(t, err, "unknown output format")
}

func TestStatsMissingFile(t *testing.T) {
	_, err := run(t, "stats", filepath.Join("testdata", "nope.obj"))
	assert.ErrorIs(t, err, obj.ErrIO)
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", filepath.Join("testdata", "square.obj"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "# 6 vertices, 2 triangles", lines[0])
	assert.Equal(t, "0  0 0 0  0 0  0 0 1", lines[2])
	assert.Equal(t, "5  0 1 0  0 1  0 0 1", lines[7])
}

func TestDumpLimit(t *testing.T) {
	out, err := run(t, "dump", "-n", "2", filepath.Join("testdata", "square.obj"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
}
