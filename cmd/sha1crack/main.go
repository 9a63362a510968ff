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

// Command sha1crack recovers a six-letter lowercase preimage of a SHA-1
// digest by exhaustive search, fanning the 676 outer-letter-pair shards of
// the search space across a worker pool. The search core itself
// (internal/crackcore) knows nothing about flags, workers, or logging; this
// command is the external collaborator the core's contract calls for.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dchest/siphash"
	"github.com/google/uuid"

	"github.com/SnellerInc/sneller/internal/crackcore"
)

var (
	dashDigest   string
	dashA        string
	dashB        string
	dashC        string
	dashD        string
	dashE        string
	dashWorkers  int
	dashEngine   string
	dashProgress bool
	dashDedupe   bool
)

func init() {
	flagDefaultUsage = flag.CommandLine.Usage
	flag.CommandLine.Usage = printHelp

	flag.StringVar(&dashDigest, "digest", "", "target SHA-1 digest as 40 hex characters")
	flag.StringVar(&dashA, "a", "", "target digest word A as 8 hex characters (alternative to -digest)")
	flag.StringVar(&dashB, "b", "", "target digest word B as 8 hex characters")
	flag.StringVar(&dashC, "c", "", "target digest word C as 8 hex characters")
	flag.StringVar(&dashD, "d", "", "target digest word D as 8 hex characters")
	flag.StringVar(&dashE, "e", "", "target digest word E as 8 hex characters")
	flag.IntVar(&dashWorkers, "workers", runtime.NumCPU(), "number of shard workers to run concurrently")
	flag.StringVar(&dashEngine, "engine", "auto", "search engine: auto, scalar, lane4, or lane8")
	flag.BoolVar(&dashProgress, "progress", false, "log shard completion progress")
	flag.BoolVar(&dashDedupe, "dedupe", false, "suppress duplicate progress log lines for a shard requeued across workers")
}

func engineFlag(name string) (crackcore.Engine, error) {
	switch name {
	case "auto":
		return crackcore.EngineAuto, nil
	case "scalar":
		return crackcore.EngineScalar, nil
	case "lane4":
		return crackcore.EngineLane4, nil
	case "lane8":
		return crackcore.EngineLane8, nil
	default:
		return 0, fmt.Errorf("unrecognized -engine %q: want auto, scalar, lane4, or lane8", name)
	}
}

func parseWord(flagName, s string) (uint32, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("-%s: %w", flagName, err)
	}
	if len(raw) != 4 {
		return 0, fmt.Errorf("-%s: want 8 hex characters (4 bytes), got %d bytes", flagName, len(raw))
	}
	return binary.BigEndian.Uint32(raw), nil
}

func targetDigest() (crackcore.Digest, error) {
	if dashDigest != "" {
		if dashA != "" || dashB != "" || dashC != "" || dashD != "" || dashE != "" {
			return crackcore.Digest{}, fmt.Errorf("-digest cannot be combined with -a/-b/-c/-d/-e")
		}
		raw, err := hex.DecodeString(dashDigest)
		if err != nil {
			return crackcore.Digest{}, fmt.Errorf("-digest: %w", err)
		}
		if len(raw) != 20 {
			return crackcore.Digest{}, fmt.Errorf("-digest: want 40 hex characters (20 bytes), got %d bytes", len(raw))
		}
		var d crackcore.Digest
		for i := range d {
			d[i] = binary.BigEndian.Uint32(raw[4*i:])
		}
		return d, nil
	}

	if dashA == "" || dashB == "" || dashC == "" || dashD == "" || dashE == "" {
		return crackcore.Digest{}, fmt.Errorf("supply either -digest or all of -a, -b, -c, -d, -e")
	}
	var d crackcore.Digest
	var err error
	words := []struct {
		name string
		s    string
		out  *uint32
	}{
		{"a", dashA, &d[0]},
		{"b", dashB, &d[1]},
		{"c", dashC, &d[2]},
		{"d", dashD, &d[3]},
		{"e", dashE, &d[4]},
	}
	for _, w := range words {
		*w.out, err = parseWord(w.name, w.s)
		if err != nil {
			return crackcore.Digest{}, err
		}
	}
	return d, nil
}

// shardKey computes a stable dedupe key for a shard so that -dedupe can
// suppress a repeated progress line if the same shard is run twice (for
// instance after a worker is restarted and resumes from a shard list that
// overlaps work already reported).
func shardKey(k0, k1 uint64, s crackcore.Shard) uint64 {
	return siphash.Hash(k0, k1, []byte{s.P4Lo, s.P4Hi, s.P5Lo, s.P5Hi})
}

func run() error {
	target, err := targetDigest()
	if err != nil {
		return err
	}
	engine, err := engineFlag(dashEngine)
	if err != nil {
		return err
	}
	if dashWorkers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", dashWorkers)
	}

	runID := uuid.New()
	shards := crackcore.Shards()
	shardCh := make(chan crackcore.Shard)

	var found atomic.Bool
	var result crackcore.Preimage
	var resultOnce sync.Once
	var done atomic.Uint64

	var seenMu sync.Mutex
	seen := make(map[uint64]bool)
	dedupeK0, dedupeK1 := runID64(runID)

	var wg sync.WaitGroup
	for w := 0; w < dashWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for s := range shardCh {
				if found.Load() {
					continue
				}
				p, ok := crackcore.CrackShard(target, engine, s)
				if ok {
					resultOnce.Do(func() {
						result = p
						found.Store(true)
					})
				}
				n := done.Add(1)
				if dashProgress {
					logProgress(runID, worker, s, n, len(shards), &seenMu, seen, dedupeK0, dedupeK1)
				}
			}
		}(w)
	}

	for _, s := range shards {
		if found.Load() {
			break
		}
		shardCh <- s
	}
	close(shardCh)
	wg.Wait()

	if !found.Load() {
		return fmt.Errorf("run %s: exhausted %d shards, no preimage found", runID, len(shards))
	}
	fmt.Println(string(result[:]))
	return nil
}

func logProgress(runID uuid.UUID, worker int, s crackcore.Shard, n uint64, total int, seenMu *sync.Mutex, seen map[uint64]bool, k0, k1 uint64) {
	if dashDedupe {
		key := shardKey(k0, k1, s)
		seenMu.Lock()
		already := seen[key]
		seen[key] = true
		seenMu.Unlock()
		if already {
			return
		}
	}
	log.Printf("run %s worker %d: shard %c%c done (%d/%d)", runID, worker, s.P4Lo, s.P5Lo, n, total)
}

// runID64 derives a siphash key pair from a run's uuid so dedupe keys are
// distinct across concurrent runs without needing a process-wide counter.
func runID64(id uuid.UUID) (uint64, uint64) {
	raw := id[:]
	return binary.BigEndian.Uint64(raw[0:8]), binary.BigEndian.Uint64(raw[8:16])
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 0 {
		exit(fmt.Errorf("unexpected arguments: %v", flag.Args()))
	}
	if err := run(); err != nil {
		exit(err)
	}
}
