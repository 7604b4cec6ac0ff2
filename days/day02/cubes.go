// Package day02 plays the elf's cube game.
package day02

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
)

var (
	ErrMissingColon  = errors.New("missing colon")
	ErrMissingPrefix = errors.New("missing 'Game '")
	ErrInvalidID     = errors.New("invalid game id")
	ErrInvalidCount  = errors.New("invalid count")
	ErrInvalidColor  = errors.New("invalid color")
)

// Bag holds a number of cubes per colour. A grab from the bag uses the same type.
type Bag struct {
	Red, Green, Blue int
}

// Game is one line of the record: the id and every grab revealed.
type Game struct {
	ID    int
	Grabs []Bag
}

// ElfBag is the bag the elf asks about.
var ElfBag = Bag{Red: 12, Green: 13, Blue: 14}

func Solve(ctx context.Context, input string) (puzzle.Solution, error) {
	games, err := ParseGames(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	zerolog.Ctx(ctx).Debug().Int("games", len(games)).Msg("games loaded")

	possible, power := 0, 0
	for _, g := range games {
		if ElfBag.Allows(g) {
			possible += g.ID
		}
		power += MinimumBag(g).Power()
	}

	return puzzle.New(possible, power), nil
}

func ParseGames(input string) ([]Game, error) {
	var games []Game
	for i, line := range puzzle.Lines(input) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(s string) (Game, error) {
	head, grabs, ok := strings.Cut(s, ": ")
	if !ok {
		return Game{}, ErrMissingColon
	}
	id, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, ErrMissingPrefix
	}

	var g Game
	var err error
	if g.ID, err = strconv.Atoi(id); err != nil {
		return Game{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	for _, grab := range strings.Split(grabs, "; ") {
		b, err := parseGrab(grab)
		if err != nil {
			return Game{}, err
		}
		g.Grabs = append(g.Grabs, b)
	}
	return g, nil
}

func parseGrab(s string) (Bag, error) {
	var b Bag
	for _, part := range strings.Split(s, ", ") {
		count, color, ok := strings.Cut(part, " ")
		if !ok {
			return Bag{}, fmt.Errorf("%w: %q", ErrInvalidCount, part)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return Bag{}, fmt.Errorf("%w: %q", ErrInvalidCount, count)
		}

		switch color {
		case "red":
			b.Red = n
		case "green":
			b.Green = n
		case "blue":
			b.Blue = n
		default:
			return Bag{}, fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
	}
	return b, nil
}

// Allows reports whether every grab of g could have come out of b.
func (b Bag) Allows(g Game) bool {
	for _, grab := range g.Grabs {
		if grab.Red > b.Red || grab.Green > b.Green || grab.Blue > b.Blue {
			return false
		}
	}
	return true
}

// MinimumBag is the smallest bag that allows g.
func MinimumBag(g Game) Bag {
	var b Bag
	for _, grab := range g.Grabs {
		b.Red = max(b.Red, grab.Red)
		b.Green = max(b.Green, grab.Green)
		b.Blue = max(b.Blue, grab.Blue)
	}
	return b
}

func (b Bag) Power() int {
	return b.Red * b.Green * b.Blue
}
