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

// lane8PrecomputeOuter mirrors scalarPrecomputeOuter across eight lanes, the
// software stand-in for an AVX2 256-bit register.
func lane8PrecomputeOuter(outer *[80]vec8) {
	outer[17] = outer[1].rotl(1)
	outer[18] = outer[15].rotl(1)
	outer[20] = outer[17].rotl(1)
	outer[21] = outer[18].rotl(1)
	outer[23] = outer[20].xor(outer[15]).rotl(1)
	outer[24] = outer[21].rotl(1)
	outer[25] = outer[17].rotl(1)
	outer[26] = outer[23].xor(outer[18]).rotl(1)
	outer[27] = outer[24].rotl(1)
	outer[28] = outer[25].xor(outer[20]).rotl(1)
	outer[29] = outer[26].xor(outer[21]).xor(outer[15]).rotl(1)
	outer[30] = outer[27].rotl(1)
	outer[31] = outer[28].xor(outer[23]).xor(outer[17]).xor(outer[15]).rotl(1)
	outer[32] = outer[29].xor(outer[24]).xor(outer[18]).rotl(1)
	outer[33] = outer[30].xor(outer[25]).xor(outer[17]).rotl(1)
	outer[34] = outer[31].xor(outer[26]).xor(outer[20]).xor(outer[18]).rotl(1)
	outer[35] = outer[32].xor(outer[27]).xor(outer[21]).rotl(1)
	outer[36] = outer[33].xor(outer[28]).xor(outer[20]).rotl(1)
	outer[37] = outer[34].xor(outer[29]).xor(outer[23]).xor(outer[21]).rotl(1)
	outer[38] = outer[35].xor(outer[30]).xor(outer[24]).rotl(1)
	outer[39] = outer[36].xor(outer[31]).xor(outer[25]).xor(outer[23]).rotl(1)
	outer[40] = outer[37].xor(outer[32]).xor(outer[26]).xor(outer[24]).rotl(1)
	outer[41] = outer[38].xor(outer[33]).xor(outer[27]).xor(outer[25]).rotl(1)
	outer[42] = outer[39].xor(outer[34]).xor(outer[28]).xor(outer[26]).rotl(1)
	outer[43] = outer[40].xor(outer[35]).xor(outer[29]).xor(outer[27]).rotl(1)
	outer[44] = outer[41].xor(outer[36]).xor(outer[30]).xor(outer[28]).rotl(1)
	outer[45] = outer[42].xor(outer[37]).xor(outer[31]).xor(outer[29]).rotl(1)
	outer[46] = outer[43].xor(outer[38]).xor(outer[32]).xor(outer[30]).rotl(1)
	outer[47] = outer[44].xor(outer[39]).xor(outer[33]).xor(outer[31]).rotl(1)
	outer[48] = outer[45].xor(outer[40]).xor(outer[34]).xor(outer[32]).rotl(1)
	outer[49] = outer[46].xor(outer[41]).xor(outer[35]).xor(outer[33]).rotl(1)
	outer[50] = outer[47].xor(outer[42]).xor(outer[36]).xor(outer[34]).rotl(1)
	outer[51] = outer[48].xor(outer[43]).xor(outer[37]).xor(outer[35]).rotl(1)
	outer[52] = outer[49].xor(outer[44]).xor(outer[38]).xor(outer[36]).rotl(1)
	outer[53] = outer[50].xor(outer[45]).xor(outer[39]).xor(outer[37]).rotl(1)
	outer[54] = outer[51].xor(outer[46]).xor(outer[40]).xor(outer[38]).rotl(1)
	outer[55] = outer[52].xor(outer[47]).xor(outer[41]).xor(outer[39]).rotl(1)
	outer[56] = outer[53].xor(outer[48]).xor(outer[42]).xor(outer[40]).rotl(1)
	outer[57] = outer[54].xor(outer[49]).xor(outer[43]).xor(outer[41]).rotl(1)
	outer[58] = outer[55].xor(outer[50]).xor(outer[44]).xor(outer[42]).rotl(1)
	outer[59] = outer[56].xor(outer[51]).xor(outer[45]).xor(outer[43]).rotl(1)
	outer[60] = outer[57].xor(outer[52]).xor(outer[46]).xor(outer[44]).rotl(1)
	outer[61] = outer[58].xor(outer[53]).xor(outer[47]).xor(outer[45]).rotl(1)
	outer[62] = outer[59].xor(outer[54]).xor(outer[48]).xor(outer[46]).rotl(1)
	outer[63] = outer[60].xor(outer[55]).xor(outer[49]).xor(outer[47]).rotl(1)
	outer[64] = outer[61].xor(outer[56]).xor(outer[50]).xor(outer[48]).rotl(1)
	outer[65] = outer[62].xor(outer[57]).xor(outer[51]).xor(outer[49]).rotl(1)
	outer[66] = outer[63].xor(outer[58]).xor(outer[52]).xor(outer[50]).rotl(1)
	outer[67] = outer[64].xor(outer[59]).xor(outer[53]).xor(outer[51]).rotl(1)
	outer[68] = outer[65].xor(outer[60]).xor(outer[54]).xor(outer[52]).rotl(1)
	outer[69] = outer[66].xor(outer[61]).xor(outer[55]).xor(outer[53]).rotl(1)
	outer[70] = outer[67].xor(outer[62]).xor(outer[56]).xor(outer[54]).rotl(1)
	outer[71] = outer[68].xor(outer[63]).xor(outer[57]).xor(outer[55]).rotl(1)
	outer[72] = outer[69].xor(outer[64]).xor(outer[58]).xor(outer[56]).rotl(1)
	outer[73] = outer[70].xor(outer[65]).xor(outer[59]).xor(outer[57]).rotl(1)
	outer[74] = outer[71].xor(outer[66]).xor(outer[60]).xor(outer[58]).rotl(1)
	outer[75] = outer[72].xor(outer[67]).xor(outer[61]).xor(outer[59]).rotl(1)
}

// lane8PrecomputeInner completes W[16..75] given the per-lane W[0] batch.
func lane8PrecomputeInner(outer *[80]vec8, blocks *[80]vec8) {
	var w0 [21]vec8
	b0 := blocks[0]
	for k := 1; k <= 20; k++ {
		w0[k] = b0.rotl(uint(k))
	}

	blocks[16] = w0[1]
	blocks[17] = outer[17]
	blocks[18] = outer[18]
	blocks[19] = w0[2]
	blocks[20] = outer[20]
	blocks[21] = outer[21]
	blocks[22] = w0[3]
	blocks[23] = outer[23]
	blocks[24] = outer[24].xor(w0[2])
	blocks[25] = outer[25].xor(w0[4])
	blocks[26] = outer[26]
	blocks[27] = outer[27]
	blocks[28] = outer[28].xor(w0[5])
	blocks[29] = outer[29]
	blocks[30] = outer[30].xor(w0[4]).xor(w0[2])
	blocks[31] = outer[31].xor(w0[6])
	blocks[32] = outer[32].xor(w0[3]).xor(w0[2])
	blocks[33] = outer[33]
	blocks[34] = outer[34].xor(w0[7])
	blocks[35] = outer[35].xor(w0[4])
	blocks[36] = outer[36].xor(w0[6]).xor(w0[4])
	blocks[37] = outer[37].xor(w0[8])
	blocks[38] = outer[38].xor(w0[4])
	blocks[39] = outer[39]
	blocks[40] = outer[40].xor(w0[4]).xor(w0[9])
	blocks[41] = outer[41]
	blocks[42] = outer[42].xor(w0[6]).xor(w0[8])
	blocks[43] = outer[43].xor(w0[10])
	blocks[44] = outer[44].xor(w0[6]).xor(w0[3]).xor(w0[7])
	blocks[45] = outer[45]
	blocks[46] = outer[46].xor(w0[4]).xor(w0[11])
	blocks[47] = outer[47].xor(w0[8]).xor(w0[4])
	blocks[48] = outer[48].xor(w0[8]).xor(w0[4]).xor(w0[3]).xor(w0[10]).xor(w0[5])
	blocks[49] = outer[49].xor(w0[12])
	blocks[50] = outer[50].xor(w0[8])
	blocks[51] = outer[51].xor(w0[6]).xor(w0[4])
	blocks[52] = outer[52].xor(w0[8]).xor(w0[4]).xor(w0[13])
	blocks[53] = outer[53]
	blocks[54] = outer[54].xor(w0[7]).xor(w0[10]).xor(w0[12])
	blocks[55] = outer[55].xor(w0[14])
	blocks[56] = outer[56].xor(w0[6]).xor(w0[4]).xor(w0[11]).xor(w0[7]).xor(w0[10])
	blocks[57] = outer[57].xor(w0[8])
	blocks[58] = outer[58].xor(w0[8]).xor(w0[4]).xor(w0[15])
	blocks[59] = outer[59].xor(w0[8]).xor(w0[12])
	blocks[60] = outer[60].xor(w0[8]).xor(w0[4]).xor(w0[7]).xor(w0[12]).xor(w0[14])
	blocks[61] = outer[61].xor(w0[16])
	blocks[62] = outer[62].xor(w0[6]).xor(w0[12]).xor(w0[8]).xor(w0[4])
	blocks[63] = outer[63].xor(w0[8])
	blocks[64] = outer[64].xor(w0[6]).xor(w0[7]).xor(w0[17]).xor(w0[12]).xor(w0[8]).xor(w0[4])
	blocks[65] = outer[65]
	blocks[66] = outer[66].xor(w0[14]).xor(w0[16])
	blocks[67] = outer[67].xor(w0[8]).xor(w0[18])
	blocks[68] = outer[68].xor(w0[11]).xor(w0[14]).xor(w0[15])
	blocks[69] = outer[69]
	blocks[70] = outer[70].xor(w0[12]).xor(w0[19])
	blocks[71] = outer[71].xor(w0[12]).xor(w0[16])
	blocks[72] = outer[72].xor(w0[11]).xor(w0[12]).xor(w0[18]).xor(w0[13]).xor(w0[16]).xor(w0[5])
	blocks[73] = outer[73].xor(w0[20])
	blocks[74] = outer[74].xor(w0[8]).xor(w0[16])
	blocks[75] = outer[75].xor(w0[6]).xor(w0[12]).xor(w0[14])
}

func lane8Round(a, b, c, d, e, t vec8) (vec8, vec8, vec8, vec8, vec8) {
	return t, a, b.rotl(30), c, d
}

func lane8CompressToRound75(blocks *[80]vec8) (a, b, c, d, e vec8) {
	a, b, c, d, e = splat8(iv0), splat8(iv1), splat8(iv2), splat8(iv3), splat8(iv4)

	t := splat8(roundConst00).add(blocks[0])
	a, b, c, d, e = lane8Round(a, b, c, d, e, t)

	t = splat8(roundConst01).add(a.rotl(5)).add(blocks[1])
	a, b, c, d, e = lane8Round(a, b, c, d, e, t)

	t = splat8(roundConst02).add(a.rotl(5)).add(vf0019_8(b, c, d))
	a, b, c, d, e = lane8Round(a, b, c, d, e, t)

	t = splat8(roundConst03).add(a.rotl(5)).add(vf0019_8(b, c, d))
	a, b, c, d, e = lane8Round(a, b, c, d, e, t)

	t = splat8(roundConst04).add(a.rotl(5)).add(vf0019_8(b, c, d))
	a, b, c, d, e = lane8Round(a, b, c, d, e, t)

	for i := 5; i <= 14; i++ {
		t = splat8(k0019).add(e).add(a.rotl(5)).add(vf0019_8(b, c, d)).add(blocks[i])
		a, b, c, d, e = lane8Round(a, b, c, d, e, t)
	}

	t = splat8(roundConst15).add(e).add(a.rotl(5)).add(vf0019_8(b, c, d))
	a, b, c, d, e = lane8Round(a, b, c, d, e, t)

	for i := 16; i <= 19; i++ {
		t = splat8(k0019).add(e).add(a.rotl(5)).add(vf0019_8(b, c, d)).add(blocks[i])
		a, b, c, d, e = lane8Round(a, b, c, d, e, t)
	}
	for i := 20; i <= 39; i++ {
		t = splat8(k2039).add(e).add(a.rotl(5)).add(vfrest_8(b, c, d)).add(blocks[i])
		a, b, c, d, e = lane8Round(a, b, c, d, e, t)
	}
	for i := 40; i <= 59; i++ {
		t = splat8(k4059).add(e).add(a.rotl(5)).add(vf4059_8(b, c, d)).add(blocks[i])
		a, b, c, d, e = lane8Round(a, b, c, d, e, t)
	}
	for i := 60; i <= 75; i++ {
		t = splat8(k6079).add(e).add(a.rotl(5)).add(vfrest_8(b, c, d)).add(blocks[i])
		a, b, c, d, e = lane8Round(a, b, c, d, e, t)
	}
	return a, b, c, d, e
}

func lane8Round6079(a, b, c, d, e, w vec8) (vec8, vec8, vec8, vec8, vec8) {
	t := splat8(k6079).add(e).add(a.rotl(5)).add(vfrest_8(b, c, d)).add(w)
	return lane8Round(a, b, c, d, e, t)
}

// crackLane8 evaluates eight candidates per compression by batching
// stride-2 combinations of positions 1, 2, and 3 into one vec8 lane, the
// software stand-in for an AVX2 256-bit register. Lane index bit 2 selects
// position 1's increment, bit 1 position 2's, bit 0 position 3's, matching
// the p_tempSave packing order in the upstream implementation.
func crackLane8(target Digest) (Preimage, bool) {
	return crackLane8Range(target, 'a', 'z', 'a', 'z')
}

// crackLane8Shard restricts the same search to one Shard's (p4, p5) range.
func crackLane8Shard(target Digest, s Shard) (Preimage, bool) {
	return crackLane8Range(target, s.P4Lo, s.P4Hi, s.P5Lo, s.P5Hi)
}

func crackLane8Range(target Digest, p4Lo, p4Hi, p5Lo, p5Hi byte) (Preimage, bool) {
	exit := earlyExitTargets(target)

	var outer [80]vec8
	outer[15] = splat8(preimageLengthBit)

	var p Preimage
	for p4 := p4Lo; p4 <= p4Hi; p4++ {
		for p5 := p5Lo; p5 <= p5Hi; p5++ {
			outer[1] = splat8(0x00008000 | uint32(p4)<<24 | uint32(p5)<<16)
			lane8PrecomputeOuter(&outer)

			var blocks [80]vec8
			blocks[1] = outer[1]
			blocks[15] = splat8(preimageLengthBit)

			for p0 := byte('a'); p0 <= 'z'; p0++ {
				for p1 := byte('a'); p1 <= 'z'; p1 += 2 {
					for p2 := byte('a'); p2 <= 'z'; p2 += 2 {
						for p3 := byte('a'); p3 <= 'z'; p3 += 2 {
							base := uint32(p0) << 24
							blocks[0] = vec8{
								base | uint32(p1)<<16 | uint32(p2)<<8 | uint32(p3),
								base | uint32(p1)<<16 | uint32(p2)<<8 | uint32(p3+1),
								base | uint32(p1)<<16 | uint32(p2+1)<<8 | uint32(p3),
								base | uint32(p1)<<16 | uint32(p2+1)<<8 | uint32(p3+1),
								base | uint32(p1+1)<<16 | uint32(p2)<<8 | uint32(p3),
								base | uint32(p1+1)<<16 | uint32(p2)<<8 | uint32(p3+1),
								base | uint32(p1+1)<<16 | uint32(p2+1)<<8 | uint32(p3),
								base | uint32(p1+1)<<16 | uint32(p2+1)<<8 | uint32(p3+1),
							}
							lane8PrecomputeInner(&outer, &blocks)

							a, b, c, d, e := lane8CompressToRound75(&blocks)
							lane := matchLane8(a, exit[4])
							if lane < 0 {
								continue
							}
							blocks[76] = blocks[73].xor(blocks[68]).xor(blocks[62]).xor(blocks[60]).rotl(1)
							a, b, c, d, e = lane8Round6079(a, b, c, d, e, blocks[76])
							if a[lane] != exit[3] {
								continue
							}
							blocks[77] = blocks[74].xor(blocks[69]).xor(blocks[63]).xor(blocks[61]).rotl(1)
							a, b, c, d, e = lane8Round6079(a, b, c, d, e, blocks[77])
							if a[lane] != exit[2] {
								continue
							}
							blocks[78] = blocks[75].xor(blocks[70]).xor(blocks[64]).xor(blocks[62]).rotl(1)
							a, b, c, d, e = lane8Round6079(a, b, c, d, e, blocks[78])
							if a[lane] != exit[1] {
								continue
							}
							blocks[79] = blocks[76].xor(blocks[71]).xor(blocks[65]).xor(blocks[63]).rotl(1)
							a, b, c, d, e = lane8Round6079(a, b, c, d, e, blocks[79])
							if a[lane] != exit[0] {
								continue
							}

							p1m, p2m, p3m := p1, p2, p3
							if lane&4 != 0 {
								p1m++
							}
							if lane&2 != 0 {
								p2m++
							}
							if lane&1 != 0 {
								p3m++
							}
							p[0], p[1], p[2], p[3], p[4], p[5] = p0, p1m, p2m, p3m, p4, p5
							return p, true
						}
					}
				}
			}
		}
	}
	return Preimage{}, false
}

// matchLane8 returns the lane index whose word equals want, or -1.
func matchLane8(v vec8, want uint32) int {
	lane := -1
	for i, x := range v {
		if x == want {
			lane = i
		}
	}
	return lane
}
