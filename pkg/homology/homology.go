package homology

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mgn/pkg/combinatorics"
	"github.com/matzehuels/mgn/pkg/errors"
)

// Result holds the homology computation for one surface type.
//
// Dims and Ranks are indexed by level (Dims[i] is the cell count at
// MinEdges+i edges, Ranks[i] the rank of the boundary operator leaving
// that level). Betti is indexed by homological degree and always has
// MaxEdges entries: Betti[d] is the rank of the homology at level
// MaxEdges-d, zero-padded below the bottom level.
type Result struct {
	Genus     int
	Punctures int
	MinEdges  int
	MaxEdges  int

	Dims  []int
	Ranks []int
	Betti []int
}

// EulerCharacteristic returns the alternating sum of the Betti numbers,
// which by exactness equals the alternating sum of the cell counts.
func (r *Result) EulerCharacteristic() int {
	chi := 0
	for d, b := range r.Betti {
		chi += combinatorics.MinusOneExp(d) * b
	}
	return chi
}

// Options configures a homology computation.
type Options struct {
	// Ranker computes boundary ranks; defaults to [BareissRanker].
	Ranker Ranker
	// Workers bounds the number of concurrent rank computations;
	// defaults to GOMAXPROCS.
	Workers int
	// Logger defaults to the package default.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Ranker == nil {
		o.Ranker = BareissRanker{}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// Homology computes the Betti numbers of the complex. Boundary ranks are
// independent, so they run on a bounded worker pool; a single rank
// failure aborts the whole computation, since partial homology numbers
// are meaningless.
func (c *Complex) Homology(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()

	levels := len(c.Levels)
	ranks := make([]int, levels)
	errs := make([]error, levels)

	start := time.Now()
	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	for i := 1; i < levels; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			r, err := opts.Ranker.Rank(ctx, c.Boundaries[i])
			if err != nil {
				errs[i] = errors.Wrap(errors.ErrCodeRankUnavailable, err,
					"rank of boundary at level %d", c.Levels[i].Edges)
				return
			}
			ranks[i] = r
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Genus:     c.Genus,
		Punctures: c.Punctures,
		MinEdges:  c.MinEdges,
		MaxEdges:  c.MaxEdges,
		Dims:      make([]int, levels),
		Ranks:     ranks,
		Betti:     make([]int, c.MaxEdges),
	}
	for i, lvl := range c.Levels {
		res.Dims[i] = len(lvl.Cells)
	}
	for d := 0; d < c.MaxEdges; d++ {
		level := c.MaxEdges - d
		if level < c.MinEdges {
			continue
		}
		i := level - c.MinEdges
		h := res.Dims[i] - res.Ranks[i]
		if i+1 < levels {
			h -= res.Ranks[i+1]
		}
		res.Betti[d] = h
	}

	opts.Logger.Info("computed homology",
		"genus", c.Genus, "punctures", c.Punctures,
		"betti", res.Betti,
		"duration", time.Since(start))
	return res, nil
}

// Compute is the whole pipeline for one surface type: build the complex
// and take its homology.
func Compute(ctx context.Context, g, n int, opts Options) (*Result, error) {
	opts.setDefaults()
	c, err := NewBuilder(opts.Logger).Build(ctx, g, n)
	if err != nil {
		return nil, err
	}
	return c.Homology(ctx, opts)
}
