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

// vec4 and vec8 stand in for the 128-bit and 256-bit integer vectors an
// SSE2/AVX2 build would hold in a single register: plain arrays operated on
// elementwise, one lane per batched candidate.

type vec4 [4]uint32

func splat4(x uint32) vec4 {
	return vec4{x, x, x, x}
}

func (v vec4) add(w vec4) vec4 {
	return vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v vec4) xor(w vec4) vec4 {
	return vec4{v[0] ^ w[0], v[1] ^ w[1], v[2] ^ w[2], v[3] ^ w[3]}
}

func (v vec4) rotl(n uint) vec4 {
	return vec4{rotl32(v[0], n), rotl32(v[1], n), rotl32(v[2], n), rotl32(v[3], n)}
}

func vf0019_4(b, c, d vec4) vec4 {
	return vec4{f0019(b[0], c[0], d[0]), f0019(b[1], c[1], d[1]), f0019(b[2], c[2], d[2]), f0019(b[3], c[3], d[3])}
}

func vf4059_4(b, c, d vec4) vec4 {
	return vec4{f4059(b[0], c[0], d[0]), f4059(b[1], c[1], d[1]), f4059(b[2], c[2], d[2]), f4059(b[3], c[3], d[3])}
}

func vfrest_4(b, c, d vec4) vec4 {
	return vec4{frest(b[0], c[0], d[0]), frest(b[1], c[1], d[1]), frest(b[2], c[2], d[2]), frest(b[3], c[3], d[3])}
}

type vec8 [8]uint32

func splat8(x uint32) vec8 {
	return vec8{x, x, x, x, x, x, x, x}
}

func (v vec8) add(w vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = v[i] + w[i]
	}
	return r
}

func (v vec8) xor(w vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = v[i] ^ w[i]
	}
	return r
}

func (v vec8) rotl(n uint) vec8 {
	var r vec8
	for i := range r {
		r[i] = rotl32(v[i], n)
	}
	return r
}

func vf0019_8(b, c, d vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = f0019(b[i], c[i], d[i])
	}
	return r
}

func vf4059_8(b, c, d vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = f4059(b[i], c[i], d[i])
	}
	return r
}

func vfrest_8(b, c, d vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = frest(b[i], c[i], d[i])
	}
	return r
}
