package pointio_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/pointio"
)

func writeFixture(t *testing.T, x, y []float32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, binary.Write(f, binary.LittleEndian, x))
	require.NoError(t, binary.Write(f, binary.LittleEndian, y))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFixture(t, []float32{1, 2, 3}, []float32{4, 5, 6})

	pts, err := pointio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, pts.Len())
	assert.Equal(t, geom.Point{X: 2, Y: 5}, pts.At(1))
}

func TestReadFileRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := pointio.ReadFile(path)
	assert.Error(t, err)
}

func TestReadRange(t *testing.T) {
	path := writeFixture(t, []float32{10, 20, 30, 40}, []float32{1, 2, 3, 4})

	pts, err := pointio.ReadRange(path, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, pts.Len())
	assert.Equal(t, geom.Point{X: 20, Y: 2}, pts.At(0))
	assert.Equal(t, geom.Point{X: 30, Y: 3}, pts.At(1))
}

func TestReadRangeOutOfBounds(t *testing.T) {
	path := writeFixture(t, []float32{1, 2}, []float32{3, 4})

	_, err := pointio.ReadRange(path, 0, 5)
	assert.Error(t, err)
}

func TestWriteHull(t *testing.T) {
	var buf bytes.Buffer
	hull := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 2}}
	require.NoError(t, pointio.WriteHull(&buf, hull))
	assert.Equal(t, "0 0\n1 2\n", buf.String())
}

func TestWriteHullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hull.txt")
	hull := []geom.Point{{X: 0.5, Y: -1.5}}
	require.NoError(t, pointio.WriteHullFile(path, hull))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.5 -1.5\n", string(content))
}
