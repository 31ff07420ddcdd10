// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"runtime"
	"sync"

	"github.com/gogpu/nle/shader"
	"go.uber.org/multierr"
)

// asyncErrors collects errors from worker goroutines.
type asyncErrors struct {
	mu   sync.Mutex
	errs error
}

func (ae *asyncErrors) add(err error) {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	ae.errs = multierr.Append(ae.errs, err)
}

func (ae *asyncErrors) err() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.errs
}

// Precompile compiles programs on worker goroutines so later passes hit the
// module cache. It returns every compile failure combined; use
// multierr.Errors to inspect them one by one.
func (b *Backend) Precompile(programs ...shader.Program) error {
	workers := min(runtime.GOMAXPROCS(0), len(programs))

	var (
		wg   sync.WaitGroup
		errs asyncErrors
		jobs = make(chan shader.Program)
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				if _, err := b.Compile(p); err != nil {
					errs.add(err)
				}
			}
		}()
	}
	for _, p := range programs {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	return errs.err()
}
