package voxeltrace

import (
	"context"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// estimateCoverage casts trials rays through random pixels and returns the
// fraction that hit geometry.
func estimateCoverage(ctx context.Context, t *Tracer, trials int) (float64, error) {
	if trials <= 0 {
		return 0, nil
	}
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}
	w, h := t.Uniforms.Width(), t.Uniforms.Height()

	per, rem := trials/workers, trials%workers
	var totalHits int64
	g, gctx := errgroup.WithContext(ctx)

	for wk := 0; wk < workers; wk++ {
		n := per
		if wk < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wid := wk
		g.Go(func() error {
			// independent RNG per worker
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))

			localHits := int64(0)
			for i := 0; i < n; i++ {
				if i&255 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				uv := PixelUV(rng.Intn(w), rng.Intn(h), w, h)
				if _, stats := t.CastRay(t.Camera.Ray(uv)); stats.State == Hit {
					localHits++
				}
			}
			atomic.AddInt64(&totalHits, localHits)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return float64(totalHits) / float64(trials), nil
}
