package transport_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/parahull/internal/geom"
	"github.com/ajroetker/parahull/internal/transport"
)

func TestLoopbackTransportRoundTrip(t *testing.T) {
	tr := transport.NewLoopbackTransport()
	hull := []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}

	done := make(chan error, 1)
	go func() { done <- tr.SendHull(hull) }()

	got, err := tr.RecvHull()
	require.NoError(t, err)
	require.NoError(t, <-done)
	assert.Equal(t, hull, got)
}

func TestEncodeDecodeHullRoundTrip(t *testing.T) {
	hull := []geom.Point{{X: 0, Y: 0}, {X: 1.5, Y: -2.5}, {X: 3, Y: 4}}

	var buf bytes.Buffer
	require.NoError(t, transport.EncodeHull(&buf, hull))

	got, err := transport.DecodeHull(&buf)
	require.NoError(t, err)
	assert.Equal(t, hull, got)
}

func TestEncodeDecodeEmptyHull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, transport.EncodeHull(&buf, nil))

	got, err := transport.DecodeHull(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}
