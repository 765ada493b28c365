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

const (
	triangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
usemtl Red
f 1//1 2//1 3//1
`
	triangleMTL = `newmtl Red
Kd 1 0 0
`
	quadOBJ = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
usemtl Red
f 1//1 2//1 3//1 4//1
`
)

func writeModel(t *testing.T, dir, name, obj string) string {
	t.Helper()
	base := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(base+".obj", []byte(obj), 0o644))
	require.NoError(t, os.WriteFile(base+".mtl", []byte(triangleMTL), 0o644))
	return base
}

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestDump(t *testing.T) {
	base := writeModel(t, t.TempDir(), "tri", triangleOBJ)

	out, err := runArgs(t, "dump", base+".obj")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Color:[1 0 0]")
	// x is mirrored on load
	assert.Contains(t, lines[0], "Normal:[-0 0 1]")
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	tri := writeModel(t, dir, "tri", triangleOBJ)
	quad := writeModel(t, dir, "quad", quadOBJ)

	out, err := runArgs(t, "stats", "-workers", "2", tri, quad)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "MODEL"))
	assert.Equal(t, []string{"quad", "6", "2"}, strings.Fields(lines[1])[:3])
	assert.Equal(t, []string{"tri", "3", "1"}, strings.Fields(lines[2])[:3])
}

func TestStatsReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	_, err := runArgs(t, "stats", filepath.Join(dir, "a"), filepath.Join(dir, "b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(dir, "a"))
	assert.Contains(t, err.Error(), filepath.Join(dir, "b"))
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	base := writeModel(t, dir, "tri", triangleOBJ)
	out := filepath.Join(dir, "shots", "tri.png")

	stdout, err := runArgs(t, "snapshot", "-o", out, "-width", "32", "-supersample", "1", base)
	require.NoError(t, err)
	assert.Equal(t, out, strings.TrimSpace(stdout))
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestSnapshotDefaultOutput(t *testing.T) {
	base := writeModel(t, t.TempDir(), "tri", triangleOBJ)

	stdout, err := runArgs(t, "snapshot", "-width", "16", base+".obj")
	require.NoError(t, err)
	assert.Equal(t, base+".webp", strings.TrimSpace(stdout))
	_, err = os.Stat(base + ".webp")
	assert.NoError(t, err)
}

func TestSnapshotRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	base := writeModel(t, dir, "tri", triangleOBJ)

	_, err := runArgs(t, "snapshot", "-o", filepath.Join(dir, "tri.gif"), base)
	assert.Error(t, err)
}

func TestModelFromConfig(t *testing.T) {
	dir := t.TempDir()
	base := writeModel(t, dir, "tri", triangleOBJ)
	cfgPath := filepath.Join(dir, "frost.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("model = '"+base+"'\nlog_level = 'error'\n"), 0o644))

	out, err := runArgs(t, "-config", cfgPath, "dump")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestRunErrors(t *testing.T) {
	_, err := runArgs(t, "dump")
	assert.ErrorContains(t, err, "no model given")

	_, err = runArgs(t, "-config", filepath.Join(t.TempDir(), "missing.toml"), "dump", "x")
	assert.ErrorContains(t, err, "config: read")

	_, err = runArgs(t, "stats", "-bogus")
	assert.Error(t, err)
}
