// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package geomsimd provides the portable, scalar-fallback vector primitives
// that back the quickhull kernel's point-in-hull culling and farthest-point
// selection. It follows the teacher library's design: operations are
// expressed once over a generic Vec/Mask pair and the instruction set
// actually used is a runtime-detected implementation detail, never part of
// the algorithm's contract.
package geomsimd

import (
	"os"
	"strconv"
)

// DispatchLevel names the instruction set the scalar tile loop would be
// lowered to by a SIMD-capable build. This module never emits architecture
// intrinsics itself (Go has no portable way to do so without cgo or
// GOEXPERIMENT=simd); the level is tracked purely so the CLI can log what
// the underlying hardware would support (cmd/parahull logs it at startup).
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// currentLevel and currentWidth are set by the init() in the arch-specific
// dispatch_*.go file for the build.
var currentLevel DispatchLevel
var currentWidth int

// CurrentLevel returns the SIMD instruction set the host CPU supports.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the width, in bytes, of the widest vector register
// the detected dispatch level implies.
func CurrentWidth() int { return currentWidth }

// NoSimdEnv reports whether GEOMSIMD_NO_SIMD disables hardware-width
// detection, forcing the minimal scalar tile width.
func NoSimdEnv() bool {
	val := os.Getenv("GEOMSIMD_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of T-sized lanes the detected vector width
// holds. It is diagnostic only: the quickhull tile walker uses a fixed
// tile width of four regardless of what this reports.
func MaxLanes[T Lanes]() int {
	var dummy T
	size := sizeOf(dummy)
	if size == 0 {
		return 0
	}
	return currentWidth / size
}

func sizeOf[T Lanes](v T) int {
	switch any(v).(type) {
	case float32:
		return 4
	case float64:
		return 8
	default:
		return 0
	}
}
