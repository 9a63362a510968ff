// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package crackcore

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Engine selects which compression kernel services a Crack call. The
// selection always happens once, at the call boundary, never inside a
// search loop.
type Engine int

const (
	// EngineAuto picks the widest lane batching the host plausibly
	// benefits from, based on a one-shot feature probe.
	EngineAuto Engine = iota
	EngineScalar
	EngineLane4
	EngineLane8
)

var (
	defaultEngineOnce sync.Once
	defaultEngine     Engine
)

// defaultAutoEngine mirrors the teacher's avx512level: a feature probe
// evaluated once and latched, never repeated per candidate. HasAVX2 and
// HasSSE2 here don't gate real assembly (lane4/lane8 are plain Go arrays),
// but keep EngineAuto's preference order anchored to genuine ISA tiers
// rather than an arbitrary default.
func defaultAutoEngine() Engine {
	defaultEngineOnce.Do(func() {
		switch {
		case cpu.X86.HasAVX2:
			defaultEngine = EngineLane8
		case cpu.X86.HasSSE2:
			defaultEngine = EngineLane4
		default:
			defaultEngine = EngineScalar
		}
	})
	return defaultEngine
}

// Crack searches {a..z}^6 for a preimage of target using the engine chosen
// by EngineAuto's one-shot host probe.
func Crack(target Digest) (Preimage, bool) {
	return CrackWith(target, EngineAuto)
}

// CrackWith searches {a..z}^6 for a preimage of target using the requested
// engine.
func CrackWith(target Digest, e Engine) (Preimage, bool) {
	if e == EngineAuto {
		e = defaultAutoEngine()
	}
	switch e {
	case EngineLane8:
		return crackLane8(target)
	case EngineLane4:
		return crackLane4(target)
	default:
		return crackScalar(target)
	}
}
