package retofa

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// CompileOption functions optionally alter how CompileAll operates.
type CompileOption = func(*compileConfig)

type compileConfig struct {
	goroutines int
	parseOpts  []ParseOption
	buildOpts  []BuildOption
}

// GoroutineLimit sets the maximum number of patterns compiled at once.
// Zero or negative means one goroutine per pattern (the default).
func GoroutineLimit(n int) CompileOption {
	return func(cfg *compileConfig) {
		cfg.goroutines = n
	}
}

// WithParseOptions sets the options used to parse every pattern.
func WithParseOptions(opts ...ParseOption) CompileOption {
	return func(cfg *compileConfig) {
		cfg.parseOpts = append(cfg.parseOpts, opts...)
	}
}

// WithBuildOptions sets the options used to build every automaton.
func WithBuildOptions(opts ...BuildOption) CompileOption {
	return func(cfg *compileConfig) {
		cfg.buildOpts = append(cfg.buildOpts, opts...)
	}
}

// CompileAll parses each pattern and builds its minimized DFA, calling f with
// the index of the pattern and the result. Patterns are compiled in parallel,
// and f is called as each one finishes, so f must be safe to call
// concurrently from multiple goroutines (or set GoroutineLimit to 1).
// The first parse error or error returned by f stops the remaining work and
// is returned.
func CompileAll(ctx context.Context, patterns []string, f func(int, *Automaton[DFAState]) error, opts ...CompileOption) error {
	if f == nil {
		return errors.New("nil callback in arg to CompileAll")
	}

	cfg := &compileConfig{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}

	if len(patterns) == 0 {
		return nil
	}

	// Spin up this many worker goroutines.
	if cfg.goroutines <= 0 || cfg.goroutines > len(patterns) {
		cfg.goroutines = len(patterns)
	}
	workCh := make(chan int)
	wctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := compileWorker(wctx, cfg, patterns, f, workCh); err != nil {
				cancel(err)
			}
		}()
	}

	// Feed work to the workers
feed:
	for i := range patterns {
		select {
		case <-wctx.Done():
			break feed

		case workCh <- i:
			// work has been fed
		}
	}
	close(workCh)

	wg.Wait()
	return context.Cause(wctx)
}

func compileWorker(ctx context.Context, cfg *compileConfig, patterns []string, f func(int, *Automaton[DFAState]) error, workCh <-chan int) error {
	for {
		var i int
		select {
		case work, open := <-workCh:
			if !open {
				return nil
			}
			i = work

		case <-ctx.Done():
			return ctx.Err()
		}

		ast, err := Parse(patterns[i], cfg.parseOpts...)
		if err != nil {
			return fmt.Errorf("pattern %d (%q): %w", i, patterns[i], err)
		}
		if err := f(i, BuildDFA(ast, cfg.buildOpts...)); err != nil {
			return err
		}
	}
}
