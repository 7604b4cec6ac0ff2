package registry

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"golang.org/x/exp/maps"
)

const (
	FirstDay = 1
	LastDay  = 25
)

var (
	ErrInvalidDay = errors.New("invalid day")
	ErrUnknownDay = errors.New("unknown day")
)

var days = make(map[int]*Day)

// Day is one puzzle of the calendar.
type Day struct {
	Number int
	Title  string
	Solve  puzzle.Solver
}

func (d *Day) String() string {
	return fmt.Sprintf("Day %d: %s", d.Number, d.Title)
}

// Register adds a day to the registry. It is meant to be called from the
// init function of each day's package and panics on a bad registration.
func Register(d *Day) {
	if d.Number < FirstDay || d.Number > LastDay {
		panic(fmt.Sprintf("cannot register day %d: must be in the range %d-%d", d.Number, FirstDay, LastDay))
	}
	if d.Solve == nil {
		panic(fmt.Sprintf("cannot register day %d without a solver", d.Number))
	}
	if _, exists := days[d.Number]; exists {
		panic(fmt.Sprintf("day %d registered twice", d.Number))
	}

	days[d.Number] = d
}

func Get(number int) (*Day, error) {
	day, exists := days[number]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, number)
	}

	return day, nil
}

// All returns every registered day, sorted by number.
func All() []*Day {
	numbers := maps.Keys(days)
	slices.Sort(numbers)

	out := make([]*Day, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, days[n])
	}
	return out
}

// ParseDay parses a day number from the command line.
func ParseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%v)", ErrInvalidDay, s, err)
	}
	if day < FirstDay || day > LastDay {
		return 0, fmt.Errorf("%w: %d. Must be in the range %d-%d", ErrInvalidDay, day, FirstDay, LastDay)
	}

	return day, nil
}
