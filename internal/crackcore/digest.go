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

// Package crackcore is the brute-force SHA-1 inversion core for fixed
// six-letter lowercase preimages. It is not a general SHA-1 library: the
// message length, alphabet, and block count are compile-time constants of
// the search, not runtime parameters.
package crackcore

// Digest holds the five 32-bit SHA-1 output words in natural
// (most-significant-word-first) order. No endianness swap is performed
// internally; callers own translating to/from a wire encoding.
type Digest [5]uint32

// Preimage is a six-byte candidate, every byte restricted to ['a'..'z'].
type Preimage [6]byte

// earlyExitTargets derives the five words compared against partial state
// after rounds 75-79, undoing the IV addition and (for t[2..4]) the
// rotate-by-30 baked into the round recurrence's register rotation.
//
// scalarRound (and its lane4/lane8 counterparts) always write the round's
// newest output into the physical register a, so each rung of the ladder
// compares a against one of these words: a after round 75 against t[4], a
// after round 76 against t[3], ..., a after round 79 against t[0]. In the
// standard SHA-1 recurrence (a,b,c,d,e):=(T,a,rotl(b,30),c,d), the value
// this implementation's a holds after round 79 is exactly the logical a
// the spec adds to H0, so t[0] needs no rotation. The value a holds after
// round 78 is the logical a that becomes b one round later (H1's addend),
// again no rotation. The value a holds after round 77 becomes, two rounds
// later, rotl(b,30) (H2's addend): undoing that rotate-by-30 to express
// the target in terms of a's un-rotated value is a rotate-by-2. The same
// reasoning pushed one and two rounds earlier gives the same rotate-by-2
// for the rounds 76 and 75 rungs (H3's and H4's addends).
func earlyExitTargets(target Digest) [5]uint32 {
	var t [5]uint32
	t[0] = target[0] - iv0
	t[1] = target[1] - iv1
	t[2] = rotl32(target[2]-iv2, 2)
	t[3] = rotl32(target[3]-iv3, 2)
	t[4] = rotl32(target[4]-iv4, 2)
	return t
}
