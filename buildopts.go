package retofa

import (
	"fmt"
	"io"
)

// BuildOption functions optionally alter how automata are built.
type BuildOption = func(*buildConfig)

type buildConfig struct {
	traceLogger io.Writer
}

func newBuildConfig(opts []BuildOption) *buildConfig {
	cfg := &buildConfig{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	return cfg
}

// WithTraceLogs logs each step of automaton construction (epsilon edges
// contracted, subsets discovered, partitions split, states merged) to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) BuildOption {
	return func(cfg *buildConfig) {
		cfg.traceLogger = out
	}
}

func (cfg *buildConfig) logf(format string, args ...any) {
	if cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(cfg.traceLogger, format, args...)
}
