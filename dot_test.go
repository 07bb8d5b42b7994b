package retofa

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testDotHeader = "digraph {\n" +
	"\tgraph [pad=.3];\n" +
	"\tedge [arrowsize=.6];\n" +
	"\tnode [style=filled,label=\"\",fillcolor=\"#ffe066\",margin=\".01,.06\"];\n"

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		fa   interface{ Dot() (string, error) }
		want string
	}{
		{
			name: "DFA for a",
			fa:   BuildDFA(MustParse("a")),
			want: testDotHeader +
				"\t_1 [label=\"Start\",fillcolor=\"#8ce99a\"];\n" +
				"\t_2 [label=\"Accept\",fillcolor=\"#ffa8a8\"];\n" +
				"\t_1 -> _2 [label=\" a\"];\n" +
				"}",
		},
		{
			name: "epsilon-NFA for a*",
			fa:   BuildEpsilonNFA(MustParse("a*")),
			want: testDotHeader +
				"\t1 [label=\"Start\",fillcolor=\"#8ce99a\"];\n" +
				"\t2 [label=\"Accept\",fillcolor=\"#ffa8a8\"];\n" +
				"\t3 [shape=circle,width=.15,fixedsize=true];\n" +
				"\t1 -> 3 [label=\" \"];\n" +
				"\t3 -> 2 [label=\" \"];\n" +
				"\t3 -> 3 [label=\" a\"];\n" +
				"}",
		},
		{
			name: "DFA for a*",
			fa:   BuildDFA(MustParse("a*")),
			want: testDotHeader +
				"\t_2_3 [label=\"Start & Accept\",fillcolor=\"#74c0fc\"];\n" +
				"\t_2_3 -> _2_3 [label=\" a\"];\n" +
				"}",
		},
		{
			name: "DFA for the empty pattern",
			fa:   BuildDFA(MustParse("")),
			want: testDotHeader +
				"\t_2 [label=\"Start & Accept\",fillcolor=\"#74c0fc\"];\n" +
				"}",
		},
		{
			name: "escaped labels",
			fa:   BuildEpsilonNFA(MustParse(`'a"b' | 'x\\y' | '<é>'`)),
			want: testDotHeader +
				"\t1 [label=\"Start\",fillcolor=\"#8ce99a\"];\n" +
				"\t2 [label=\"Accept\",fillcolor=\"#ffa8a8\"];\n" +
				"\t1 -> 2 [label=\" <é>\"];\n" +
				"\t1 -> 2 [label=\" a\\\"b\"];\n" +
				"\t1 -> 2 [label=\" x\\\\y\"];\n" +
				"}",
		},
	}

	for _, test := range tests {
		got, err := test.fa.Dot()
		if err != nil {
			t.Errorf("%s: Dot() error = %v", test.name, err)
			continue
		}
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("%s: Dot() diff (-got +want):\n%s", test.name, diff)
		}
	}
}

func TestDotLabel(t *testing.T) {
	tests := []struct {
		sym, want string
	}{
		{sym: "", want: ""},
		{sym: "abc", want: "abc"},
		{sym: `a"b`, want: `a\"b`},
		{sym: `x\y`, want: `x\\y`},
		{sym: "tab\there", want: `tab\there`},
		{sym: "<&>", want: "<&>"},
		{sym: "a\u2028b\u2029", want: "a\u2028b\u2029"},
		{sym: "\u2028\u2028\n", want: "\u2028\u2028" + `\n`},
		// Escaped text that looks like an escape stays escaped.
		{sym: `\u2028`, want: `\\u2028`},
	}

	for _, test := range tests {
		got, err := dotLabel(test.sym)
		if err != nil {
			t.Errorf("dotLabel(%q) error = %v", test.sym, err)
			continue
		}
		if got != test.want {
			t.Errorf("dotLabel(%q) = %q, want %q", test.sym, got, test.want)
		}
	}
}

func TestWriteDot_Deterministic(t *testing.T) {
	const pattern = "('+'|'-'|'') (digit+ (''|dot digit*) | digit* dot digit+)"

	var first strings.Builder
	if err := BuildDFA(MustParse(pattern)).WriteDot(&first); err != nil {
		t.Fatalf("WriteDot error = %v", err)
	}
	for i := 0; i < 10; i++ {
		var again strings.Builder
		if err := BuildDFA(MustParse(pattern)).WriteDot(&again); err != nil {
			t.Fatalf("WriteDot error = %v", err)
		}
		if diff := cmp.Diff(again.String(), first.String()); diff != "" {
			t.Fatalf("WriteDot output changed between runs: diff (-got +want):\n%s", diff)
		}
	}
}
