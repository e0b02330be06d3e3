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

//go:build arm64

package geomsimd

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	// NEON is mandatory on arm64; no further feature probing is needed for
	// the 128-bit width this module cares about.
	currentLevel = DispatchNEON
	currentWidth = 16
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
