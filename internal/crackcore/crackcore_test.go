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
	"crypto/sha1"
	"testing"
)

var allEngines = []struct {
	name   string
	engine Engine
}{
	{"scalar", EngineScalar},
	{"lane4", EngineLane4},
	{"lane8", EngineLane8},
}

var vectors = []struct {
	preimage string
	digest   Digest
}{
	{"ananas", Digest{0x755BD810, 0xD2BE0EBC, 0xBB6CE6F5, 0x32B3D9CF, 0xCF9D9695}},
	{"passwd", Digest{0x30274C47, 0x903BD1BA, 0xC7633BBF, 0x09743149, 0xEBAB805F}},
	{"qfucra", Digest{0x3854E277, 0xA37AEE29, 0xBF9ECC86, 0xFB983737, 0xCF9D9695}},
	{"swords", Digest{0xD6056E47, 0xD33A009D, 0x754613AF, 0xBB20A3A3, 0x86496177}},
	{"zzzzzz", Digest{0x984FF6EE, 0x7C78078D, 0x4CB1CA08, 0x255303FB, 0x8741D986}},
}

func TestCrackVectors(t *testing.T) {
	for _, v := range vectors {
		v := v
		for _, eng := range allEngines {
			eng := eng
			t.Run(v.preimage+"/"+eng.name, func(t *testing.T) {
				got, ok := CrackWith(v.digest, eng.engine)
				if !ok {
					t.Fatalf("CrackWith(%s): not found", eng.name)
				}
				if string(got[:]) != v.preimage {
					t.Fatalf("CrackWith(%s) = %q, want %q", eng.name, got[:], v.preimage)
				}
			})
		}
	}
}

func TestCrackAllZeroDigestNotFound(t *testing.T) {
	var zero Digest
	for _, eng := range allEngines {
		eng := eng
		t.Run(eng.name, func(t *testing.T) {
			_, ok := CrackWith(zero, eng.engine)
			if ok {
				t.Fatalf("CrackWith(%s) on all-zero digest: expected NotFound", eng.name)
			}
		})
	}
}

func TestCrackEarliestTraversalPosition(t *testing.T) {
	target := digestOf("aaaaaa")
	for _, eng := range allEngines {
		eng := eng
		t.Run(eng.name, func(t *testing.T) {
			got, ok := CrackWith(target, eng.engine)
			if !ok {
				t.Fatalf("CrackWith(%s): not found", eng.name)
			}
			if string(got[:]) != "aaaaaa" {
				t.Fatalf("CrackWith(%s) = %q, want %q", eng.name, got[:], "aaaaaa")
			}
		})
	}
}

// TestCrackEngineAgreement is property P4: every engine must find each
// vector's preimage, and all engines must return the same preimage.
// TestCrackSoundness checks that the preimage hashes back to the target.
func TestCrackEngineAgreement(t *testing.T) {
	for _, v := range vectors {
		results := make([]Preimage, len(allEngines))
		for i, eng := range allEngines {
			got, ok := CrackWith(v.digest, eng.engine)
			if !ok {
				t.Fatalf("engine %s: not found for %q", eng.name, v.preimage)
			}
			results[i] = got
		}
		for i := 1; i < len(results); i++ {
			if results[i] != results[0] {
				t.Fatalf("engine disagreement for %q: %s=%q %s=%q",
					v.preimage, allEngines[0].name, results[0][:], allEngines[i].name, results[i][:])
			}
		}
	}
}

// TestCrackSoundness is property P1: any returned preimage must hash (plain
// SHA-1) to the requested target.
func TestCrackSoundness(t *testing.T) {
	for _, v := range vectors {
		for _, eng := range allEngines {
			got, ok := CrackWith(v.digest, eng.engine)
			if !ok {
				t.Fatalf("engine %s: not found for %q", eng.name, v.preimage)
			}
			if digestOf(string(got[:])) != v.digest {
				t.Fatalf("engine %s: %q does not hash back to target", eng.name, got[:])
			}
			for _, b := range got {
				if b < 'a' || b > 'z' {
					t.Fatalf("engine %s: byte %q outside ['a'..'z']", eng.name, b)
				}
			}
		}
	}
}

// TestCrackDeterminism is property P6: repeated calls with the same target
// and engine must return identical results.
func TestCrackDeterminism(t *testing.T) {
	target := vectors[0].digest
	for _, eng := range allEngines {
		first, ok1 := CrackWith(target, eng.engine)
		second, ok2 := CrackWith(target, eng.engine)
		if ok1 != ok2 || first != second {
			t.Fatalf("engine %s: nondeterministic result (%v,%q) vs (%v,%q)",
				eng.name, ok1, first[:], ok2, second[:])
		}
	}
}

func TestShardsPartitionSpace(t *testing.T) {
	shards := Shards()
	if len(shards) != 26*26 {
		t.Fatalf("Shards() returned %d shards, want %d", len(shards), 26*26)
	}
	seen := make(map[[2]byte]bool, 26*26)
	for _, s := range shards {
		if s.P4Lo != s.P4Hi || s.P5Lo != s.P5Hi {
			t.Fatalf("shard %+v is not a single (p4, p5) pair", s)
		}
		key := [2]byte{s.P4Lo, s.P5Lo}
		if seen[key] {
			t.Fatalf("shard %+v duplicated", s)
		}
		seen[key] = true
	}
	for p4 := byte('a'); p4 <= 'z'; p4++ {
		for p5 := byte('a'); p5 <= 'z'; p5++ {
			if !seen[[2]byte{p4, p5}] {
				t.Fatalf("pair (%q, %q) missing from Shards()", p4, p5)
			}
		}
	}
}

func TestShardSize(t *testing.T) {
	single := Shard{P4Lo: 'a', P4Hi: 'a', P5Lo: 'b', P5Hi: 'b'}
	if single.Size() != 1 {
		t.Fatalf("single-pair shard Size() = %d, want 1", single.Size())
	}
	wide := Shard{P4Lo: 'a', P4Hi: 'c', P5Lo: 'a', P5Hi: 'z'}
	if wide.Size() != 3*26 {
		t.Fatalf("wide shard Size() = %d, want %d", wide.Size(), 3*26)
	}
}

func TestCrackShardAgreesWithCrack(t *testing.T) {
	v := vectors[0]
	target := digestOf(v.preimage)
	p4, p5 := v.preimage[4], v.preimage[5]
	for _, eng := range allEngines {
		found := false
		for _, s := range Shards() {
			if s.P4Lo != p4 || s.P5Lo != p5 {
				continue
			}
			got, ok := CrackShard(target, eng.engine, s)
			if ok {
				if string(got[:]) != v.preimage {
					t.Fatalf("engine %s: CrackShard found %q, want %q", eng.name, got[:], v.preimage)
				}
				found = true
			}
		}
		if !found {
			t.Fatalf("engine %s: no shard covering (%q, %q) found the preimage", eng.name, p4, p5)
		}
	}
}

func digestOf(s string) Digest {
	sum := sha1.Sum([]byte(s))
	var d Digest
	for i := range d {
		d[i] = uint32(sum[4*i])<<24 | uint32(sum[4*i+1])<<16 | uint32(sum[4*i+2])<<8 | uint32(sum[4*i+3])
	}
	return d
}

func BenchmarkCrackScalar(b *testing.B) {
	target := vectors[0].digest
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CrackWith(target, EngineScalar)
	}
}

func BenchmarkCrackLane4(b *testing.B) {
	target := vectors[0].digest
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CrackWith(target, EngineLane4)
	}
}

func BenchmarkCrackLane8(b *testing.B) {
	target := vectors[0].digest
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CrackWith(target, EngineLane8)
	}
}
