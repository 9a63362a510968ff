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

// scalarPrecomputeOuter fills the subset of W[16..75] that depends only on
// W[1] (outer[1], set by the caller) and the fixed W[15]=preimageLengthBit.
// Indices 16, 19 and 22, which depend on W[0] alone, are left zero here; for
// the other W[0]-dependent indices this stage stores only the W[1]/W[15]
// part, and the inner stage XORs in the W[0] contribution once W[0] is known.
func scalarPrecomputeOuter(outer *[80]uint32) {
	outer[17] = rotl32(outer[1], 1)
	outer[18] = rotl32(outer[15], 1)
	outer[20] = rotl32(outer[17], 1)
	outer[21] = rotl32(outer[18], 1)
	outer[23] = rotl32(outer[20]^outer[15], 1)
	outer[24] = rotl32(outer[21], 1)
	outer[25] = rotl32(outer[17], 1)
	outer[26] = rotl32(outer[23]^outer[18], 1)
	outer[27] = rotl32(outer[24], 1)
	outer[28] = rotl32(outer[25]^outer[20], 1)
	outer[29] = rotl32(outer[26]^outer[21]^outer[15], 1)
	outer[30] = rotl32(outer[27], 1)
	outer[31] = rotl32(outer[28]^outer[23]^outer[17]^outer[15], 1)
	outer[32] = rotl32(outer[29]^outer[24]^outer[18], 1)
	outer[33] = rotl32(outer[30]^outer[25]^outer[17], 1)
	outer[34] = rotl32(outer[31]^outer[26]^outer[20]^outer[18], 1)
	outer[35] = rotl32(outer[32]^outer[27]^outer[21], 1)
	outer[36] = rotl32(outer[33]^outer[28]^outer[20], 1)
	outer[37] = rotl32(outer[34]^outer[29]^outer[23]^outer[21], 1)
	outer[38] = rotl32(outer[35]^outer[30]^outer[24], 1)
	outer[39] = rotl32(outer[36]^outer[31]^outer[25]^outer[23], 1)
	outer[40] = rotl32(outer[37]^outer[32]^outer[26]^outer[24], 1)
	outer[41] = rotl32(outer[38]^outer[33]^outer[27]^outer[25], 1)
	outer[42] = rotl32(outer[39]^outer[34]^outer[28]^outer[26], 1)
	outer[43] = rotl32(outer[40]^outer[35]^outer[29]^outer[27], 1)
	outer[44] = rotl32(outer[41]^outer[36]^outer[30]^outer[28], 1)
	outer[45] = rotl32(outer[42]^outer[37]^outer[31]^outer[29], 1)
	outer[46] = rotl32(outer[43]^outer[38]^outer[32]^outer[30], 1)
	outer[47] = rotl32(outer[44]^outer[39]^outer[33]^outer[31], 1)
	outer[48] = rotl32(outer[45]^outer[40]^outer[34]^outer[32], 1)
	outer[49] = rotl32(outer[46]^outer[41]^outer[35]^outer[33], 1)
	outer[50] = rotl32(outer[47]^outer[42]^outer[36]^outer[34], 1)
	outer[51] = rotl32(outer[48]^outer[43]^outer[37]^outer[35], 1)
	outer[52] = rotl32(outer[49]^outer[44]^outer[38]^outer[36], 1)
	outer[53] = rotl32(outer[50]^outer[45]^outer[39]^outer[37], 1)
	outer[54] = rotl32(outer[51]^outer[46]^outer[40]^outer[38], 1)
	outer[55] = rotl32(outer[52]^outer[47]^outer[41]^outer[39], 1)
	outer[56] = rotl32(outer[53]^outer[48]^outer[42]^outer[40], 1)
	outer[57] = rotl32(outer[54]^outer[49]^outer[43]^outer[41], 1)
	outer[58] = rotl32(outer[55]^outer[50]^outer[44]^outer[42], 1)
	outer[59] = rotl32(outer[56]^outer[51]^outer[45]^outer[43], 1)
	outer[60] = rotl32(outer[57]^outer[52]^outer[46]^outer[44], 1)
	outer[61] = rotl32(outer[58]^outer[53]^outer[47]^outer[45], 1)
	outer[62] = rotl32(outer[59]^outer[54]^outer[48]^outer[46], 1)
	outer[63] = rotl32(outer[60]^outer[55]^outer[49]^outer[47], 1)
	outer[64] = rotl32(outer[61]^outer[56]^outer[50]^outer[48], 1)
	outer[65] = rotl32(outer[62]^outer[57]^outer[51]^outer[49], 1)
	outer[66] = rotl32(outer[63]^outer[58]^outer[52]^outer[50], 1)
	outer[67] = rotl32(outer[64]^outer[59]^outer[53]^outer[51], 1)
	outer[68] = rotl32(outer[65]^outer[60]^outer[54]^outer[52], 1)
	outer[69] = rotl32(outer[66]^outer[61]^outer[55]^outer[53], 1)
	outer[70] = rotl32(outer[67]^outer[62]^outer[56]^outer[54], 1)
	outer[71] = rotl32(outer[68]^outer[63]^outer[57]^outer[55], 1)
	outer[72] = rotl32(outer[69]^outer[64]^outer[58]^outer[56], 1)
	outer[73] = rotl32(outer[70]^outer[65]^outer[59]^outer[57], 1)
	outer[74] = rotl32(outer[71]^outer[66]^outer[60]^outer[58], 1)
	outer[75] = rotl32(outer[72]^outer[67]^outer[61]^outer[59], 1)
}

// scalarPrecomputeInner completes W[16..75] given the actual W[0] (blocks[0])
// and the outer-stage table, following the XOR-algebra expansion derived by
// Jens Steube for a message whose only nonzero input words are W[0], W[1],
// and W[15].
func scalarPrecomputeInner(outer *[80]uint32, blocks *[80]uint32) {
	var w0 [21]uint32
	b0 := blocks[0]
	for k := 1; k <= 20; k++ {
		w0[k] = rotl32(b0, uint(k))
	}

	blocks[16] = w0[1]
	blocks[17] = outer[17]
	blocks[18] = outer[18]
	blocks[19] = w0[2]
	blocks[20] = outer[20]
	blocks[21] = outer[21]
	blocks[22] = w0[3]
	blocks[23] = outer[23]
	blocks[24] = outer[24] ^ w0[2]
	blocks[25] = outer[25] ^ w0[4]
	blocks[26] = outer[26]
	blocks[27] = outer[27]
	blocks[28] = outer[28] ^ w0[5]
	blocks[29] = outer[29]
	blocks[30] = outer[30] ^ w0[4] ^ w0[2]
	blocks[31] = outer[31] ^ w0[6]
	blocks[32] = outer[32] ^ w0[3] ^ w0[2]
	blocks[33] = outer[33]
	blocks[34] = outer[34] ^ w0[7]
	blocks[35] = outer[35] ^ w0[4]
	blocks[36] = outer[36] ^ w0[6] ^ w0[4]
	blocks[37] = outer[37] ^ w0[8]
	blocks[38] = outer[38] ^ w0[4]
	blocks[39] = outer[39]
	blocks[40] = outer[40] ^ w0[4] ^ w0[9]
	blocks[41] = outer[41]
	blocks[42] = outer[42] ^ w0[6] ^ w0[8]
	blocks[43] = outer[43] ^ w0[10]
	blocks[44] = outer[44] ^ w0[6] ^ w0[3] ^ w0[7]
	blocks[45] = outer[45]
	blocks[46] = outer[46] ^ w0[4] ^ w0[11]
	blocks[47] = outer[47] ^ w0[8] ^ w0[4]
	blocks[48] = outer[48] ^ w0[8] ^ w0[4] ^ w0[3] ^ w0[10] ^ w0[5]
	blocks[49] = outer[49] ^ w0[12]
	blocks[50] = outer[50] ^ w0[8]
	blocks[51] = outer[51] ^ w0[6] ^ w0[4]
	blocks[52] = outer[52] ^ w0[8] ^ w0[4] ^ w0[13]
	blocks[53] = outer[53]
	blocks[54] = outer[54] ^ w0[7] ^ w0[10] ^ w0[12]
	blocks[55] = outer[55] ^ w0[14]
	blocks[56] = outer[56] ^ w0[6] ^ w0[4] ^ w0[11] ^ w0[7] ^ w0[10]
	blocks[57] = outer[57] ^ w0[8]
	blocks[58] = outer[58] ^ w0[8] ^ w0[4] ^ w0[15]
	blocks[59] = outer[59] ^ w0[8] ^ w0[12]
	blocks[60] = outer[60] ^ w0[8] ^ w0[4] ^ w0[7] ^ w0[12] ^ w0[14]
	blocks[61] = outer[61] ^ w0[16]
	blocks[62] = outer[62] ^ w0[6] ^ w0[12] ^ w0[8] ^ w0[4]
	blocks[63] = outer[63] ^ w0[8]
	blocks[64] = outer[64] ^ w0[6] ^ w0[7] ^ w0[17] ^ w0[12] ^ w0[8] ^ w0[4]
	blocks[65] = outer[65]
	blocks[66] = outer[66] ^ w0[14] ^ w0[16]
	blocks[67] = outer[67] ^ w0[8] ^ w0[18]
	blocks[68] = outer[68] ^ w0[11] ^ w0[14] ^ w0[15]
	blocks[69] = outer[69]
	blocks[70] = outer[70] ^ w0[12] ^ w0[19]
	blocks[71] = outer[71] ^ w0[12] ^ w0[16]
	blocks[72] = outer[72] ^ w0[11] ^ w0[12] ^ w0[18] ^ w0[13] ^ w0[16] ^ w0[5]
	blocks[73] = outer[73] ^ w0[20]
	blocks[74] = outer[74] ^ w0[8] ^ w0[16]
	blocks[75] = outer[75] ^ w0[6] ^ w0[12] ^ w0[14]
}

// scalarRound advances the five-word state through one generic round: T is
// computed from the current state and folded into the new a, while b, c, d,
// e shift down with b picking up the rotate-by-30 applied each round.
func scalarRound(a, b, c, d, e, t uint32) (uint32, uint32, uint32, uint32, uint32) {
	return t, a, rotl32(b, 30), c, d
}

// scalarCompressToRound75 runs the fixed-IV compression through round 75
// using the folded constants for rounds 0, 1, 2, 3, 4, and 15 (all of which
// have a compile-time-known additive term because the state or message word
// they consume is constant at that point), and returns (a, b, c, d, e) as
// they stand immediately after round 75, ready for the early-exit ladder.
func scalarCompressToRound75(blocks *[80]uint32) (a, b, c, d, e uint32) {
	a, b, c, d, e = iv0, iv1, iv2, iv3, iv4

	t := roundConst00 + blocks[0]
	a, b, c, d, e = scalarRound(a, b, c, d, e, t)

	t = roundConst01 + rotl32(a, 5) + blocks[1]
	a, b, c, d, e = scalarRound(a, b, c, d, e, t)

	t = roundConst02 + rotl32(a, 5) + f0019(b, c, d)
	a, b, c, d, e = scalarRound(a, b, c, d, e, t)

	t = roundConst03 + rotl32(a, 5) + f0019(b, c, d)
	a, b, c, d, e = scalarRound(a, b, c, d, e, t)

	t = roundConst04 + rotl32(a, 5) + f0019(b, c, d)
	a, b, c, d, e = scalarRound(a, b, c, d, e, t)

	for i := 5; i <= 14; i++ {
		t = k0019 + e + rotl32(a, 5) + f0019(b, c, d) + blocks[i]
		a, b, c, d, e = scalarRound(a, b, c, d, e, t)
	}

	t = roundConst15 + e + rotl32(a, 5) + f0019(b, c, d)
	a, b, c, d, e = scalarRound(a, b, c, d, e, t)

	for i := 16; i <= 19; i++ {
		t = k0019 + e + rotl32(a, 5) + f0019(b, c, d) + blocks[i]
		a, b, c, d, e = scalarRound(a, b, c, d, e, t)
	}
	for i := 20; i <= 39; i++ {
		t = k2039 + e + rotl32(a, 5) + frest(b, c, d) + blocks[i]
		a, b, c, d, e = scalarRound(a, b, c, d, e, t)
	}
	for i := 40; i <= 59; i++ {
		t = k4059 + e + rotl32(a, 5) + f4059(b, c, d) + blocks[i]
		a, b, c, d, e = scalarRound(a, b, c, d, e, t)
	}
	for i := 60; i <= 75; i++ {
		t = k6079 + e + rotl32(a, 5) + frest(b, c, d) + blocks[i]
		a, b, c, d, e = scalarRound(a, b, c, d, e, t)
	}
	return a, b, c, d, e
}

// scalarRound6079 runs a single round 60-79-family round (f=b^c^d, k=k6079)
// given its already-computed message word.
func scalarRound6079(a, b, c, d, e, w uint32) (uint32, uint32, uint32, uint32, uint32) {
	t := k6079 + e + rotl32(a, 5) + frest(b, c, d) + w
	return scalarRound(a, b, c, d, e, t)
}

// crackScalar evaluates one candidate per compression over the full search
// space: the outer loop runs positions 4 and 5, the inner loop runs
// positions 0-3 with position 3 innermost, per the enumerator design.
func crackScalar(target Digest) (Preimage, bool) {
	return crackScalarRange(target, 'a', 'z', 'a', 'z')
}

// crackScalarShard restricts the same search to one Shard's (p4, p5) range.
func crackScalarShard(target Digest, s Shard) (Preimage, bool) {
	return crackScalarRange(target, s.P4Lo, s.P4Hi, s.P5Lo, s.P5Hi)
}

func crackScalarRange(target Digest, p4Lo, p4Hi, p5Lo, p5Hi byte) (Preimage, bool) {
	exit := earlyExitTargets(target)

	var outer [80]uint32
	outer[15] = preimageLengthBit

	var p Preimage
	for p4 := p4Lo; p4 <= p4Hi; p4++ {
		for p5 := p5Lo; p5 <= p5Hi; p5++ {
			outer[1] = 0x00008000 | uint32(p4)<<24 | uint32(p5)<<16
			scalarPrecomputeOuter(&outer)

			var blocks [80]uint32
			blocks[1] = outer[1]
			blocks[15] = preimageLengthBit

			for p0 := byte('a'); p0 <= 'z'; p0++ {
				for p1 := byte('a'); p1 <= 'z'; p1++ {
					for p2 := byte('a'); p2 <= 'z'; p2++ {
						for p3 := byte('a'); p3 <= 'z'; p3++ {
							blocks[0] = uint32(p0)<<24 | uint32(p1)<<16 | uint32(p2)<<8 | uint32(p3)
							scalarPrecomputeInner(&outer, &blocks)

							a, b, c, d, e := scalarCompressToRound75(&blocks)
							if a != exit[4] {
								continue
							}
							blocks[76] = rotl32(blocks[73]^blocks[68]^blocks[62]^blocks[60], 1)
							a, b, c, d, e = scalarRound6079(a, b, c, d, e, blocks[76])
							if a != exit[3] {
								continue
							}
							blocks[77] = rotl32(blocks[74]^blocks[69]^blocks[63]^blocks[61], 1)
							a, b, c, d, e = scalarRound6079(a, b, c, d, e, blocks[77])
							if a != exit[2] {
								continue
							}
							blocks[78] = rotl32(blocks[75]^blocks[70]^blocks[64]^blocks[62], 1)
							a, b, c, d, e = scalarRound6079(a, b, c, d, e, blocks[78])
							if a != exit[1] {
								continue
							}
							blocks[79] = rotl32(blocks[76]^blocks[71]^blocks[65]^blocks[63], 1)
							a, b, c, d, e = scalarRound6079(a, b, c, d, e, blocks[79])
							if a != exit[0] {
								continue
							}
							p[0], p[1], p[2], p[3], p[4], p[5] = p0, p1, p2, p3, p4, p5
							return p, true
						}
					}
				}
			}
		}
	}
	return Preimage{}, false
}
