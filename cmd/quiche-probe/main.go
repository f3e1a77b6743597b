/*
NAME
  main.go

DESCRIPTION
  Quiche-probe generates pseudo-random QUIC packets and round-trips each
  one through the codec (encode, decode, compare), reporting any mismatch.
  It exercises the codec's public API the way a fuzz-adjacent smoke test
  would, without itself being part of the codec.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements quiche-probe, a round-trip smoke-test harness
// for the QUIC wire-format codec.
package main

import (
	"flag"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/quiche/internal/problog"
	"github.com/ausocean/quiche/internal/randgen"
	"github.com/ausocean/quiche/packet"
)

// Logging related defaults.
const (
	logPath      = "quiche-probe.log"
	logMaxSizeMB = 50
	logMaxBackup = 3
	logMaxAgeDay = 7
)

func main() {
	count := flag.Int("n", 1000, "number of random packets to round-trip")
	seed := flag.Uint64("seed", 0, "LCG seed; 0 uses the default reproducible seed")
	verbose := flag.Bool("v", false, "enable debug-level logging")
	noFile := flag.Bool("no-log-file", false, "skip the rotated log file and log to stderr only")
	flag.Parse()

	path := logPath
	if *noFile {
		path = ""
	}
	l := problog.New(problog.Options{
		FilePath:   path,
		MaxSizeMB:  logMaxSizeMB,
		MaxBackups: logMaxBackup,
		MaxAgeDays: logMaxAgeDay,
		Verbose:    *verbose,
	})

	var r *randgen.Source
	if *seed == 0 {
		r = randgen.New()
	} else {
		r = randgen.NewSeeded(*seed)
	}

	l.Info("starting round-trip probe", "count", *count)

	failures := 0
	for i := 0; i < *count; i++ {
		p := packet.Random(r)

		encoded, err := p.Encode(nil)
		if err != nil {
			failures++
			l.Error("encode failed", "iteration", i, "error", err)
			continue
		}

		decoded, err := packet.Decode(encoded)
		if err != nil {
			failures++
			l.Error("decode failed", "iteration", i, "error", err, "bytes", len(encoded))
			continue
		}

		if diff := cmp.Diff(p, decoded, cmpopts.EquateEmpty()); diff != "" {
			failures++
			l.Error("round trip mismatch", "iteration", i, "diff", diff)
			continue
		}

		l.Debug("round trip ok", "iteration", i, "bytes", len(encoded))
	}

	l.Info("probe finished", "count", *count, "failures", failures)
	if failures > 0 {
		os.Exit(1)
	}
}
