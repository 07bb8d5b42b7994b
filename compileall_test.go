package retofa

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// compiled collects CompileAll results by pattern index.
type compiled struct {
	mu   sync.Mutex
	dots map[int]string
}

func (c *compiled) add(i int, dfa *Automaton[DFAState]) error {
	dot, err := dfa.Dot()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dots == nil {
		c.dots = make(map[int]string)
	}
	c.dots[i] = dot
	return nil
}

func TestCompileAll(t *testing.T) {
	patterns := []string{"a", "a*", "(a|b)*abb", "(a|b).c", ""}

	for _, limit := range []int{0, 1, 2} {
		var got compiled
		err := CompileAll(context.Background(), patterns, got.add,
			GoroutineLimit(limit),
			WithParseOptions(SingleCharTokens(true)),
		)
		if err != nil {
			t.Fatalf("CompileAll(..., GoroutineLimit(%d)) = %v", limit, err)
		}

		want := make(map[int]string)
		for i, pattern := range patterns {
			dot, err := BuildDFA(MustParse(pattern, SingleCharTokens(true))).Dot()
			if err != nil {
				t.Fatalf("Dot() error = %v", err)
			}
			want[i] = dot
		}
		if diff := cmp.Diff(got.dots, want); diff != "" {
			t.Errorf("CompileAll(..., GoroutineLimit(%d)) results diff (-got +want):\n%s", limit, diff)
		}
	}
}

func TestCompileAll_ParseError(t *testing.T) {
	var got compiled
	err := CompileAll(context.Background(), []string{"a", "a#b", "c"}, got.add, GoroutineLimit(1))
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("CompileAll(...) = %v, want error wrapping %v", err, ErrInvalidToken)
	}
	if _, ok := got.dots[2]; ok {
		t.Errorf("CompileAll(...) compiled pattern 2 after an earlier error")
	}
}

func TestCompileAll_CallbackError(t *testing.T) {
	errStop := errors.New("stop")
	calls := 0
	err := CompileAll(context.Background(), []string{"a", "b", "c"}, func(i int, _ *Automaton[DFAState]) error {
		calls++
		if i == 1 {
			return errStop
		}
		return nil
	}, GoroutineLimit(1))

	if !errors.Is(err, errStop) {
		t.Errorf("CompileAll(...) = %v, want %v", err, errStop)
	}
	if calls != 2 {
		t.Errorf("callback called %d times, want 2", calls)
	}
}

func TestCompileAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got compiled
	err := CompileAll(ctx, []string{"a", "b", "c"}, got.add)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("CompileAll(cancelled ctx, ...) = %v, want %v", err, context.Canceled)
	}
}

func TestCompileAll_Degenerate(t *testing.T) {
	if err := CompileAll(context.Background(), []string{"a"}, nil); err == nil {
		t.Errorf("CompileAll(..., nil) = nil, want error")
	}

	called := false
	err := CompileAll(context.Background(), nil, func(int, *Automaton[DFAState]) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Errorf("CompileAll(ctx, nil, f) = %v, called = %t, want nil, false", err, called)
	}
}
