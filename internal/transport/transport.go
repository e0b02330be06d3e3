// Package transport abstracts the hull hand-off between reduction-tree
// partners so the same reducer scheduling logic (internal/reducer) runs
// unchanged whether the partners are goroutines sharing memory or
// separate processes exchanging messages over some fabric.
//
// Only the in-process, channel-backed implementation ships here: the
// real message-passing binding (an MPI-like fabric negotiating rank and
// size on its own, per spec.md §6) is explicitly out of scope for this
// module — the choice of parallelism fabric is a non-goal (spec.md §1).
// Transport is the complete extent of this module's distributed-variant
// contract.
package transport

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ajroetker/parahull/internal/geom"
)

// Transport hands a hull from one reduction-tree participant to another.
type Transport interface {
	// SendHull transfers hull to whichever participant is waiting on
	// the matching RecvHull call.
	SendHull(hull []geom.Point) error
	// RecvHull blocks until a matching SendHull delivers a hull.
	RecvHull() ([]geom.Point, error)
}

// LoopbackTransport is an in-process Transport backed by a channel; it
// stands in for a real cross-process fabric in tests, where no actual
// serialization is needed. The shared-memory path hands hulls over
// through reducer Slots and does not use it.
type LoopbackTransport struct {
	ch chan []geom.Point
}

// NewLoopbackTransport returns a ready LoopbackTransport.
func NewLoopbackTransport() *LoopbackTransport {
	return &LoopbackTransport{ch: make(chan []geom.Point, 1)}
}

func (t *LoopbackTransport) SendHull(hull []geom.Point) error {
	t.ch <- hull
	return nil
}

func (t *LoopbackTransport) RecvHull() ([]geom.Point, error) {
	hull, ok := <-t.ch
	if !ok {
		return nil, fmt.Errorf("transport: loopback channel closed")
	}
	return hull, nil
}

// EncodeHull serializes a hull to w as N (uint64 little-endian) followed
// by the X stream then the Y stream, each N little-endian float32s —
// the wire format spec.md §4.6 specifies for cross-process hull
// transfer.
func EncodeHull(w io.Writer, hull []geom.Point) error {
	n := uint64(len(hull))
	if err := binary.Write(w, binary.LittleEndian, n); err != nil {
		return fmt.Errorf("transport: writing point count: %w", err)
	}
	for _, p := range hull {
		if err := binary.Write(w, binary.LittleEndian, p.X); err != nil {
			return fmt.Errorf("transport: writing X stream: %w", err)
		}
	}
	for _, p := range hull {
		if err := binary.Write(w, binary.LittleEndian, p.Y); err != nil {
			return fmt.Errorf("transport: writing Y stream: %w", err)
		}
	}
	return nil
}

// DecodeHull reads the wire format EncodeHull produces.
func DecodeHull(r io.Reader) ([]geom.Point, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("transport: reading point count: %w", err)
	}

	xs := make([]float32, n)
	if err := binary.Read(r, binary.LittleEndian, &xs); err != nil {
		return nil, fmt.Errorf("transport: reading X stream: %w", err)
	}
	ys := make([]float32, n)
	if err := binary.Read(r, binary.LittleEndian, &ys); err != nil {
		return nil, fmt.Errorf("transport: reading Y stream: %w", err)
	}

	hull := make([]geom.Point, n)
	for i := range hull {
		hull[i] = geom.Point{X: xs[i], Y: ys[i]}
	}
	return hull, nil
}
