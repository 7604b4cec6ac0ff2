package day04

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestParseCard(t *testing.T) {
	got, err := ParseCard("Card 1: 1 2 3 4 5 | 6 7 8 9 10")
	if err != nil {
		t.Fatal(err)
	}
	want := Card{ID: 1, Winning: []int{1, 2, 3, 4, 5}, Scratched: []int{6, 7, 8, 9, 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseCard mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCardErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "Card 1 1 2 | 3", want: ErrMissingColon},
		{in: "Ticket 1: 1 2 | 3", want: ErrMissingPrefix},
		{in: "Card one: 1 2 | 3", want: ErrInvalidID},
		{in: "Card 1: 1 2 3", want: ErrMissingBar},
		{in: "Card 1: 1 x | 3", want: ErrInvalidNumber},
		{in: "Card 1: 1 2 | y", want: ErrInvalidNumber},
	}

	for _, tt := range tests {
		if _, err := ParseCard(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseCard(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestPoints(t *testing.T) {
	want := []int{8, 2, 2, 1, 0, 0}
	for i, line := range puzzle.Lines(example) {
		c, err := ParseCard(line)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Points(); got != want[i] {
			t.Errorf("card %d: Points() = %d, want %d", c.ID, got, want[i])
		}
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(context.Background(), example)
	if err != nil {
		t.Fatal(err)
	}
	if want := puzzle.New(13, 30); got != want {
		t.Errorf("Solve() = %+v, want %+v", got, want)
	}
}
