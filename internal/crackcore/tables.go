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

// SHA-1 initial chaining values, RFC 3174.
const (
	iv0 = 0x67452301
	iv1 = 0xEFCDAB89
	iv2 = 0x98BADCFE
	iv3 = 0x10325476
	iv4 = 0xC3D2E1F0
)

// Round constants, RFC 3174.
const (
	k0019 = 0x5A827999
	k2039 = 0x6ED9EBA1
	k4059 = 0x8F1BBCDC
	k6079 = 0xCA62C1D6
)

// Rounds 0-4 and 15 fold the constant IV state and (for round 15) the fixed
// W[15] padding word into the round constant, since both are known ahead of
// the search. Values are the low 32 bits of the round's true 33-bit
// accumulator after modular truncation.
const (
	roundConst00 = 0x9FB498B3
	roundConst01 = 0x66B0CD0D
	roundConst02 = 0xF33D5697
	roundConst03 = 0xD675E47B
	roundConst04 = 0xB453C259
	roundConst15 = 0x5A8279C9
)

// preimageLengthBit is W[15] of the padded single block: the 64-bit length
// field for a 48-bit (6 byte) message, stored in its low 32 bits.
const preimageLengthBit = 0x00000030

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

func f0019(b, c, d uint32) uint32 { return d ^ (b & (c ^ d)) }
func f4059(b, c, d uint32) uint32 { return (b & c) ^ (d & (b ^ c)) }
func frest(b, c, d uint32) uint32 { return b ^ c ^ d }
