package engine

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/keyframes/internal/animation"
	"github.com/ivlev/keyframes/internal/effect"
	"github.com/ivlev/keyframes/internal/registry"
)

// Result is the outcome of checking one effect document
type Result struct {
	Path       string
	Parameters int
	Keyframes  int
	Advanced   bool
	Simple     bool
	Err        error
}

// Checker loads effect documents into animation models and verifies them.
// Every document gets its own model, so documents are checked in parallel
// while each model stays single-threaded.
type Checker struct {
	Metadata registry.MetadataSource
	Workers  int
	Options  []animation.Option
}

func NewChecker(meta registry.MetadataSource, workers int, opts ...animation.Option) *Checker {
	return &Checker{
		Metadata: meta,
		Workers:  workers,
		Options:  opts,
	}
}

// CheckAll checks every path. A broken document is reported in its Result;
// only cancellation of ctx fails the whole run.
func (c *Checker) CheckAll(ctx context.Context, paths []string) ([]Result, error) {
	startTime := time.Now()
	results := make([]Result, len(paths))

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.Check(path)
			if results[i].Err != nil {
				log.Printf("[!] %s: %v", path, results[i].Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	fmt.Printf("[*] Проверено документов: %d за %v\n", len(paths), time.Since(startTime).Round(time.Millisecond))
	return results, nil
}

// Check loads a single document and verifies the model's invariants
func (c *Checker) Check(path string) Result {
	res := Result{Path: path}

	doc, err := effect.ReadDocument(path)
	if err != nil {
		res.Err = err
		return res
	}

	model := animation.New(c.Options...)
	if err := model.Load(c.Metadata, doc); err != nil {
		res.Err = fmt.Errorf("load: %w", err)
		return res
	}

	res.Parameters = model.ParameterCount()
	for i := 0; i < res.Parameters; i++ {
		res.Keyframes += model.KeyframeCount(i)
	}
	res.Advanced = model.AdvancedKeyframesInUse()
	res.Simple = model.SimpleKeyframesInUse()
	if err := model.Check(); err != nil {
		res.Err = fmt.Errorf("invariants: %w", err)
	}
	return res
}
