package puzzle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolutionString(t *testing.T) {
	tests := []struct {
		name string
		sol  Solution
		want string
	}{
		{name: "both parts", sol: New(142, 281), want: "part 1: 142\npart 2: 281"},
		{name: "partial", sol: Partial(uint64(6440)), want: "part 1: 6440"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sol.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSolutionPart(t *testing.T) {
	sol := Partial(35)
	if got, ok := sol.Part(1); !ok || got != "35" {
		t.Errorf("Part(1) = %q, %v", got, ok)
	}
	if _, ok := sol.Part(2); ok {
		t.Errorf("Part(2) reported an answer for a partial solution")
	}
	if got, ok := New(1, 2).Part(2); !ok || got != "2" {
		t.Errorf("Part(2) = %q, %v", got, ok)
	}
	if _, ok := New(1, 2).Part(3); ok {
		t.Errorf("Part(3) reported an answer")
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a\nb\n", want: []string{"a", "b"}},
		{in: "a\r\nb", want: []string{"a", "b"}},
		{in: "seeds: 1\n\nmap:\n", want: []string{"seeds: 1", "", "map:"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Lines(tt.in)); diff != "" {
			t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
