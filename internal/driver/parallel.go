package driver

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileScan pairs one input path with its scan outcome.
type FileScan struct {
	Path   string
	Result *ScanResult
	Err    error
}

// ScanFiles scans paths concurrently with at most jobs workers and returns
// results in input order. Ошибка одного файла не останавливает остальные.
func ScanFiles(paths []string, opts ScanOptions, jobs int) []FileScan {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Interner не потокобезопасен — в параллельном прогоне не используем.
	opts.Interner = nil

	out := make([]FileScan, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			res, err := ScanFile(p, opts)
			out[i] = FileScan{Path: p, Result: res, Err: err}
			return nil
		})
	}
	// воркеры никогда не возвращают ошибку — она остаётся в FileScan
	_ = g.Wait()
	return out
}
