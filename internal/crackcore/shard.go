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

import "golang.org/x/exp/constraints"

// rangeLen returns the number of integers in the inclusive range [lo, hi].
func rangeLen[T constraints.Integer](lo, hi T) int {
	return int(hi-lo) + 1
}

// Shard is one outer-letter-pair slice of the search space: positions 4 and
// 5 of the candidate each range over ['a'..'z'], so the full space factors
// into 26*26 = 676 disjoint (p4, p5) pairs. A Shard covers an inclusive
// range of p4 values and an inclusive range of p5 values; Shards() carves
// the 676 pairs into exactly 676 shards of one (p4, p5) pair each, and
// callers that want coarser units can build wider ranges themselves.
type Shard struct {
	P4Lo, P4Hi byte
	P5Lo, P5Hi byte
}

// Size reports how many (p4, p5) outer-letter pairs this shard covers, for
// callers that want to weight progress reporting across unevenly sized
// shards (Shards() itself only ever returns single-pair shards).
func (s Shard) Size() int {
	return rangeLen(s.P4Lo, s.P4Hi) * rangeLen(s.P5Lo, s.P5Hi)
}

// Shards returns the 676 disjoint single-(p4, p5) shards covering the full
// outer-letter-pair space. Running CrackShard with the same target and
// engine over every returned Shard is equivalent to one Crack call.
func Shards() []Shard {
	shards := make([]Shard, 0, 26*26)
	for p4 := byte('a'); p4 <= 'z'; p4++ {
		for p5 := byte('a'); p5 <= 'z'; p5++ {
			shards = append(shards, Shard{P4Lo: p4, P4Hi: p4, P5Lo: p5, P5Hi: p5})
		}
	}
	return shards
}

// CrackShard runs the requested engine's search restricted to one Shard's
// outer-letter-pair range, synchronously. It never spawns goroutines:
// fanning shards out across workers is the caller's responsibility.
func CrackShard(target Digest, e Engine, s Shard) (Preimage, bool) {
	if e == EngineAuto {
		e = defaultAutoEngine()
	}
	switch e {
	case EngineLane8:
		return crackLane8Shard(target, s)
	case EngineLane4:
		return crackLane4Shard(target, s)
	default:
		return crackScalarShard(target, s)
	}
}
