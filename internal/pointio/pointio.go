// Package pointio reads the binary point file the CLI's --file flag
// names and writes the resulting hull as text. The input format is two
// back-to-back little-endian float32 streams (all X, then all Y); the
// point count N is inferred from the file length rather than stored
// explicitly, matching spec.md §6's description of the on-disk layout.
package pointio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/pointset"
)

const bytesPerFloat32 = 4

// ReadFile loads a full point file into an owned pointset.Set.
func ReadFile(path string) (pointset.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: stat %s: %w", path, err)
	}

	n, err := pointCount(info.Size())
	if err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: %s: %w", path, err)
	}

	return readSet(bufio.NewReader(f), n)
}

// ReadRange loads only the [lo, hi) slice of points from path — the
// distributed variant's per-rank load path, seeking directly into the X
// and Y streams instead of reading the whole file (spec.md §6).
func ReadRange(path string, lo, hi int) (pointset.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: stat %s: %w", path, err)
	}
	n, err := pointCount(info.Size())
	if err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: %s: %w", path, err)
	}
	if lo < 0 || hi > n || lo > hi {
		return pointset.Set{}, fmt.Errorf("pointio: range [%d,%d) out of bounds for %d points", lo, hi, n)
	}
	count := hi - lo

	x := make([]float32, count)
	if _, err := f.Seek(int64(lo)*bytesPerFloat32, io.SeekStart); err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: seeking X stream: %w", err)
	}
	if err := binary.Read(f, binary.LittleEndian, &x); err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: reading X range: %w", err)
	}

	y := make([]float32, count)
	yStreamStart := int64(n) * bytesPerFloat32
	if _, err := f.Seek(yStreamStart+int64(lo)*bytesPerFloat32, io.SeekStart); err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: seeking Y stream: %w", err)
	}
	if err := binary.Read(f, binary.LittleEndian, &y); err != nil {
		return pointset.Set{}, fmt.Errorf("pointio: reading Y range: %w", err)
	}

	return pointset.New(x, y), nil
}

func pointCount(size int64) (int, error) {
	if size%(2*bytesPerFloat32) != 0 {
		return 0, fmt.Errorf("file size %d is not a multiple of %d bytes", size, 2*bytesPerFloat32)
	}
	return int(size / (2 * bytesPerFloat32)), nil
}

func readSet(r io.Reader, n int) (pointset.Set, error) {
	x := make([]float32, n)
	if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
		return pointset.Set{}, fmt.Errorf("reading X stream: %w", err)
	}
	y := make([]float32, n)
	if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
		return pointset.Set{}, fmt.Errorf("reading Y stream: %w", err)
	}
	return pointset.New(x, y), nil
}

// WriteHullFile writes hull to path as "x y" lines, one per vertex, in
// the canonical CCW order quickhull/merge already produce.
func WriteHullFile(path string, hull []geom.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pointio: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteHull(w, hull); err != nil {
		return fmt.Errorf("pointio: writing %s: %w", path, err)
	}
	return w.Flush()
}

// WriteHull writes hull to w as "x y" lines.
func WriteHull(w io.Writer, hull []geom.Point) error {
	for _, p := range hull {
		if _, err := fmt.Fprintf(w, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
