// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/st3v3nmw/aoc2023/internal/puzzle"
)

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrHandSize    = errors.New("a hand has exactly 5 cards")
	ErrMissingBid  = errors.New("missing bid")
	ErrInvalidBid  = errors.New("invalid bid")
)

// Card is the strength of a card; higher beats lower.
type Card int

const (
	Joker Card = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const labels = "J23456789TJQKA"

func (c Card) String() string {
	return string(labels[c])
}

func ParseCard(r rune) (Card, error) {
	i := strings.IndexRune(labels[1:], r)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, r)
	}
	return Card(i + 1), nil
}

type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var handTypeNames = [...]string{
	"high card", "one pair", "two pair", "three of a kind",
	"full house", "four of a kind", "five of a kind",
}

func (t HandType) String() string {
	return handTypeNames[t]
}

type Hand struct {
	Cards [5]Card
	Bid   int
	Type  HandType
}

func Solve(ctx context.Context, input string) (puzzle.Solution, error) {
	hands, err := ParseHands(input)
	if err != nil {
		return puzzle.Solution{}, err
	}

	part1 := TotalWinnings(hands)

	wild := make([]Hand, len(hands))
	for i, h := range hands {
		wild[i] = h.JokersWild()
	}

	return puzzle.New(part1, TotalWinnings(wild)), nil
}

func ParseHands(input string) ([]Hand, error) {
	var hands []Hand
	for i, line := range puzzle.Lines(input) {
		h, err := ParseHand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// ParseHand parses "32T3K 765".
func ParseHand(s string) (Hand, error) {
	cards, bid, ok := strings.Cut(s, " ")
	if !ok {
		return Hand{}, ErrMissingBid
	}

	var h Hand
	n, err := strconv.Atoi(bid)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %q", ErrInvalidBid, bid)
	}
	h.Bid = n

	if len(cards) != len(h.Cards) {
		return Hand{}, fmt.Errorf("%w, got %d", ErrHandSize, len(cards))
	}
	for i, r := range cards {
		if h.Cards[i], err = ParseCard(r); err != nil {
			return Hand{}, err
		}
	}

	h.Type = classify(h.Cards)
	return h, nil
}

// JokersWild turns every jack into a joker: the weakest card, but one that
// counts as whatever makes the strongest hand type.
func (h Hand) JokersWild() Hand {
	for i, c := range h.Cards {
		if c == Jack {
			h.Cards[i] = Joker
		}
	}
	h.Type = classify(h.Cards)
	return h
}

func classify(cards [5]Card) HandType {
	var counts [Ace + 1]int
	for _, c := range cards {
		counts[c]++
	}
	jokers := counts[Joker]
	counts[Joker] = 0

	groups := slices.DeleteFunc(counts[:], func(n int) bool { return n == 0 })
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		return FiveOfAKind
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by type, then card by card from the left.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	return slices.Compare(a.Cards[:], b.Cards[:])
}

// TotalWinnings ranks the hands from weakest (rank 1) and sums bid * rank.
func TotalWinnings(hands []Hand) int {
	sorted := slices.Clone(hands)
	slices.SortFunc(sorted, Compare)

	total := 0
	for i, h := range sorted {
		total += h.Bid * (i + 1)
	}
	return total
}
