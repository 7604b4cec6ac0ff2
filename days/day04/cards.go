// Package day04 scores the elf's scratchcards.
package day04

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"github.com/st3v3nmw/aoc2023/pkg/aoc"
)

var (
	ErrMissingColon  = errors.New("missing colon")
	ErrMissingPrefix = errors.New("missing 'Card '")
	ErrInvalidID     = errors.New("invalid card id")
	ErrMissingBar    = errors.New("missing vertical bar separating winning and scratched numbers")
	ErrInvalidNumber = errors.New("invalid number")
)

type Card struct {
	ID        int
	Winning   []int
	Scratched []int
}

func Solve(ctx context.Context, input string) (puzzle.Solution, error) {
	var cards []Card
	for i, line := range puzzle.Lines(input) {
		c, err := ParseCard(line)
		if err != nil {
			return puzzle.Solution{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}

	points := 0
	for _, c := range cards {
		points += c.Points()
	}

	return puzzle.New(points, TotalCards(cards)), nil
}

// ParseCard parses "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(s string) (Card, error) {
	head, numbers, ok := strings.Cut(s, ": ")
	if !ok {
		return Card{}, ErrMissingColon
	}
	id, ok := strings.CutPrefix(head, "Card ")
	if !ok {
		return Card{}, ErrMissingPrefix
	}

	var c Card
	var err error
	if c.ID, err = strconv.Atoi(strings.TrimSpace(id)); err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	winning, scratched, ok := strings.Cut(numbers, " | ")
	if !ok {
		return Card{}, ErrMissingBar
	}
	if c.Winning, err = aoc.Ints(winning); err != nil {
		return Card{}, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	if c.Scratched, err = aoc.Ints(scratched); err != nil {
		return Card{}, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	return c, nil
}

// Matches counts the winning numbers that were scratched.
func (c Card) Matches() int {
	n := 0
	for _, w := range c.Winning {
		if slices.Contains(c.Scratched, w) {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for every further one.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// TotalCards counts the cards held once every match has won copies of the
// cards that follow it.
func TotalCards(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}
