// Package engine drives a scan: it enumerates candidate files, classifies
// them, fans file scanning out to a worker pool and aggregates findings.
// Workers share only the read-only ScanConfig; results are reassembled in
// enumeration order so a parallel run is byte-identical to a synchronous
// one and re-scanning an unchanged tree is idempotent.
package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/keyhound/keyhound/internal/classify"
	"github.com/keyhound/keyhound/internal/config"
	"github.com/keyhound/keyhound/internal/ignore"
	"github.com/keyhound/keyhound/internal/matcher"
	"github.com/keyhound/keyhound/internal/types"
	"github.com/keyhound/keyhound/internal/walker"
)

// IgnoreFileName is the optional per-root glob ignore file.
const IgnoreFileName = ".keyhoundignore"

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration
}

// Scan walks root and returns the aggregated findings for every candidate
// file, in traversal-then-rule-iteration order.
func Scan(ctx context.Context, root string, cfg config.ScanConfig) (Result, error) {
	var res Result
	started := time.Now()

	ign, err := ignore.Load(filepath.Join(root, IgnoreFileName))
	if err != nil {
		log.Warn().Err(err).Msg("ignore file unreadable, continuing without it")
	}

	var candidates []string
	err = walker.Walk(ctx, root, ign, func(rel string) {
		if !classify.ShouldScan(rel, cfg.IgnoreFragments) {
			res.FilesSkipped++
			return
		}
		if cfg.MaxBytes > 0 {
			if info, err := os.Stat(filepath.Join(root, rel)); err == nil && info.Size() > cfg.MaxBytes {
				log.Debug().Str("path", rel).Int64("size", info.Size()).Msg("oversized file skipped")
				res.FilesSkipped++
				return
			}
		}
		candidates = append(candidates, rel)
	})
	if err != nil {
		return res, err
	}

	res.Findings = scanAll(ctx, root, candidates, cfg)
	res.FilesScanned = len(candidates)
	res.Duration = time.Since(started)
	return res, nil
}

// scanAll scans candidates with a worker pool and flattens the per-file
// results by enumeration index.
func scanAll(ctx context.Context, root string, candidates []string, cfg config.ScanConfig) []types.Finding {
	if len(candidates) == 0 {
		return nil
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > len(candidates) {
		threads = len(candidates)
	}

	perFile := make([][]types.Finding, len(candidates))
	jobs := make(chan int, threads)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perFile[i] = matcher.ScanFile(root, candidates[i], cfg)
			}
		}()
	}
	for i := range candidates {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out []types.Finding
	for _, fs := range perFile {
		out = append(out, fs...)
	}
	return out
}
