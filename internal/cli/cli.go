package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "github.com/st3v3nmw/aoc2023/days"
	"github.com/st3v3nmw/aoc2023/internal/answers"
	"github.com/st3v3nmw/aoc2023/internal/config"
	"github.com/st3v3nmw/aoc2023/internal/input"
	"github.com/st3v3nmw/aoc2023/internal/logging"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"github.com/st3v3nmw/aoc2023/internal/registry"
	"github.com/st3v3nmw/aoc2023/internal/verify"
	"github.com/st3v3nmw/aoc2023/pkg/threadsafe"
	commands "github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCheckFailed = errors.New("some answers do not match")
	ErrDaysFailed  = errors.New("some days failed")
)

// setup loads the config and attaches a logger to the context. The
// --log-level flag wins over the config file.
func setup(ctx context.Context, cmd *commands.Command) (context.Context, *config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, nil, err
	}

	name := cfg.LogLevel
	if cmd.IsSet("log-level") {
		name = cmd.String("log-level")
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return ctx, nil, err
	}

	log := logging.New(cmd.Root().ErrWriter, level)
	return log.WithContext(ctx), cfg, nil
}

func readInput(ctx context.Context, cmd *commands.Command) (string, error) {
	src, err := input.ParseSource(cmd.String("input"))
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Info().Msgf("Reading input from %s", src)
	return src.Read(ctx, cmd.Root().Reader)
}

// Solve runs the solver of the day given as the first argument.
func Solve(ctx context.Context, cmd *commands.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("exactly one day is required\nUsage: aoc [--input FILE] <day>")
	}

	ctx, _, err := setup(ctx, cmd)
	if err != nil {
		return err
	}

	number, err := registry.ParseDay(cmd.Args().First())
	if err != nil {
		return err
	}
	day, err := registry.Get(number)
	if err != nil {
		return err
	}

	in, err := readInput(ctx, cmd)
	if err != nil {
		return err
	}

	log := zerolog.Ctx(ctx)
	start := time.Now()
	sol, err := day.Solve(ctx, in)
	if err != nil {
		return fmt.Errorf("day %d failed: %w", number, err)
	}
	log.Debug().Dur("took", time.Since(start)).Msgf("solved %s", day)

	return printSolution(cmd.Root().Writer, cmd.String("format"), number, sol)
}

type jsonSolution struct {
	Day   int    `json:"day"`
	Part1 string `json:"part1"`
	Part2 string `json:"part2,omitempty"`
}

func printSolution(w io.Writer, format string, day int, sol puzzle.Solution) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintln(w, sol)
		return err
	case "json":
		return json.NewEncoder(w).Encode(jsonSolution{Day: day, Part1: sol.Part1, Part2: sol.Part2})
	}
	return fmt.Errorf("unknown format %q (want text or json)", format)
}

// Input echoes the input back, which is handy to check what a run will read.
func Input(ctx context.Context, cmd *commands.Command) error {
	ctx, _, err := setup(ctx, cmd)
	if err != nil {
		return err
	}

	in, err := readInput(ctx, cmd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.Root().Writer, in)
	return err
}

func List(ctx context.Context, cmd *commands.Command) error {
	w := cmd.Root().Writer

	fmt.Fprintln(w, "Solved days:")
	fmt.Fprintln(w)
	for _, day := range registry.All() {
		fmt.Fprintf(w, "  %2d  %s\n", day.Number, day.Title)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run with: aoc --input <file> <day>")

	return nil
}

// selectDays returns the days named in the arguments, or every registered day.
func selectDays(cmd *commands.Command) ([]*registry.Day, error) {
	if cmd.NArg() == 0 {
		return registry.All(), nil
	}

	var out []*registry.Day
	for _, arg := range cmd.Args().Slice() {
		n, err := registry.ParseDay(arg)
		if err != nil {
			return nil, err
		}
		day, err := registry.Get(n)
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}

// Check solves the selected days against the configured inputs and compares
// the answers with the answer book.
func Check(ctx context.Context, cmd *commands.Command) error {
	ctx, cfg, err := setup(ctx, cmd)
	if err != nil {
		return err
	}

	book, err := answers.Load(cfg.Answers)
	if err != nil {
		return err
	}
	days, err := selectDays(cmd)
	if err != nil {
		return err
	}

	suite := verify.New()
	for _, day := range days {
		path := cfg.InputPath(day.Number)
		solve := sync.OnceValues(func() (puzzle.Solution, error) {
			src, err := input.ParseSource(path)
			if err != nil {
				return puzzle.Solution{}, err
			}
			in, err := src.Read(ctx, cmd.Root().Reader)
			if err != nil {
				return puzzle.Solution{}, err
			}
			return day.Solve(ctx, in)
		})

		for part := 1; part <= 2; part++ {
			name := fmt.Sprintf("day %d part %d", day.Number, part)
			suite.Case(name, func() verify.Result {
				want, ok := book.Expected(day.Number, part)
				if !ok {
					return verify.Skip("no answer recorded")
				}

				sol, err := solve()
				if errors.Is(err, input.ErrNotFound) {
					return verify.Skip("no input at " + path)
				}
				if err != nil {
					return verify.Fail(err)
				}

				got, ok := sol.Part(part)
				if !ok {
					return verify.Fail(fmt.Errorf("part %d is not solved yet", part))
				}
				if got != want {
					return verify.Mismatch(want, got)
				}
				return verify.Pass()
			})
		}
	}

	if !suite.Run(cmd.Root().Writer) {
		return ErrCheckFailed
	}
	return nil
}

type outcome struct {
	day  *registry.Day
	sol  puzzle.Solution
	err  error
	took time.Duration
}

// All solves every registered day that has an input file, in parallel, and
// prints the results in day order.
func All(ctx context.Context, cmd *commands.Command) error {
	ctx, cfg, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	log := zerolog.Ctx(ctx)

	results := threadsafe.NewMap[int, outcome]()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, day := range registry.All() {
		path := cfg.InputPath(day.Number)
		if _, err := os.Stat(path); err != nil {
			log.Debug().Int("day", day.Number).Str("path", path).Msg("no input, skipping")
			continue
		}

		g.Go(func() error {
			src, err := input.ParseSource(path)
			if err != nil {
				return err
			}
			in, err := src.Read(gctx, cmd.Root().Reader)
			if err != nil {
				return err
			}

			start := time.Now()
			sol, err := day.Solve(gctx, in)
			results.Set(day.Number, outcome{day: day, sol: sol, err: err, took: time.Since(start)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.Root().Writer
	failed := false
	results.Range(func(_ int, o outcome) bool {
		fmt.Fprintf(w, "%s (took %s)\n", o.day, o.took.Round(time.Microsecond))
		if o.err != nil {
			failed = true
			fmt.Fprintf(w, "error: %v\n\n", o.err)
			return true
		}
		fmt.Fprintf(w, "%s\n\n", o.sol)
		return true
	})

	if results.Len() == 0 {
		fmt.Fprintf(w, "No inputs found (looked for %s).\n", cfg.Inputs)
	}
	if failed {
		return ErrDaysFailed
	}
	return nil
}
