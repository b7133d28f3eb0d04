// Package tuning ports utils.go's SetTunings/SetOptions performance
// parameter logic from PubMed-record batch
// sizing to Badger store options: it uses cpuid to read the machine's
// thread-per-core count and pbnjay/memory to read total system memory,
// then derives cache and table-size budgets from them, the way the
// teacher derives worker-farm sizes from the same two signals.
package tuning

import (
	"runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// Report summarizes the tuning signals this package read and the
// budgets derived from them.
type Report struct {
	NumCPU           int
	ThreadsPerCore   int
	TotalMemoryBytes uint64
	MemTableSizeMB   int
	BlockCacheSizeMB int
}

// Measure reads the machine's CPU topology and total memory, mirroring
// utils.go's nCPU/cpuid.CPU.ThreadsPerCore/memory.TotalMemory() reads.
func Measure() Report {
	nCPU := runtime.NumCPU()
	if nCPU < 1 {
		nCPU = 1
	}
	total := memory.TotalMemory()

	// Budget roughly 1/64th of system memory for the block cache and
	// 1/128th for each memtable, capped to sane bounds — the same
	// "reality check" spirit as utils.go's clamps on farmSize/heapSize.
	blockCacheMB := int(total / (1024 * 1024) / 64)
	if blockCacheMB < 16 {
		blockCacheMB = 16
	} else if blockCacheMB > 1024 {
		blockCacheMB = 1024
	}
	memTableMB := int(total / (1024 * 1024) / 128)
	if memTableMB < 16 {
		memTableMB = 16
	} else if memTableMB > 256 {
		memTableMB = 256
	}

	return Report{
		NumCPU:           nCPU,
		ThreadsPerCore:   cpuid.CPU.ThreadsPerCore,
		TotalMemoryBytes: total,
		MemTableSizeMB:   memTableMB,
		BlockCacheSizeMB: blockCacheMB,
	}
}

// ApplyBadgerOptions sizes a Badger options struct from Measure's
// report, in place of Badger's one-size-fits-all defaults.
func ApplyBadgerOptions(opts badger.Options) badger.Options {
	r := Measure()
	mb := int64(1024 * 1024)
	opts = opts.
		WithMemTableSize(int64(r.MemTableSizeMB) * mb).
		WithBlockCacheSize(int64(r.BlockCacheSizeMB) * mb).
		WithNumCompactors(numCompactors(r))
	return opts
}

func numCompactors(r Report) int {
	n := r.NumCPU
	if r.ThreadsPerCore > 1 {
		n = r.NumCPU / r.ThreadsPerCore
	}
	if n < 2 {
		n = 2
	}
	if n > 8 {
		n = 8
	}
	return n
}
