// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options controls how a render is scheduled.
type Options struct {
	// Workers caps concurrent window jobs. Zero or less means
	// runtime.GOMAXPROCS(0).
	Workers int
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Workers
}

// run calls job for 0..n-1 on at most o.workers() goroutines.
func (o Options) run(n int, job func(i int) error) error {
	var g errgroup.Group
	g.SetLimit(o.workers())

	for i := range n {
		g.Go(func() error { return job(i) })
	}

	return g.Wait()
}
