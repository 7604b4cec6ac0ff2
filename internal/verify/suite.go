// Package verify runs a list of named checks and reports them with
// coloured check marks.
package verify

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	green     = color.New(color.FgGreen).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
	checkMark = green("✓")
	crossMark = red("✗")
	skipMark  = yellow("○")
)

type Status int

const (
	Passed Status = iota
	Failed
	Skipped
)

// Result is the outcome of one case.
type Result struct {
	Status Status
	Detail string
}

func Pass() Result {
	return Result{Status: Passed}
}

// Mismatch fails a case with the expected and actual values.
func Mismatch(want, got string) Result {
	return Result{Status: Failed, Detail: fmt.Sprintf("Expected %s, got %s", want, got)}
}

func Fail(err error) Result {
	return Result{Status: Failed, Detail: err.Error()}
}

func Skip(reason string) Result {
	return Result{Status: Skipped, Detail: reason}
}

type Suite struct {
	cases []Case
}

type Case struct {
	Name string
	Fn   func() Result
}

func New() *Suite {
	return &Suite{cases: make([]Case, 0)}
}

func (s *Suite) Case(name string, fn func() Result) *Suite {
	s.cases = append(s.cases, Case{Name: name, Fn: fn})
	return s
}

func (s *Suite) Len() int {
	return len(s.cases)
}

// Run executes every case and reports to w. It returns false if any case
// failed; skipped cases do not count as failures.
func (s *Suite) Run(w io.Writer) bool {
	start := time.Now()

	passed, failed := 0, 0
	for _, c := range s.cases {
		res := run(c)

		switch res.Status {
		case Passed:
			passed++
			fmt.Fprintf(w, " %s %s\n", checkMark, c.Name)
		case Skipped:
			fmt.Fprintf(w, " %s %s [skipped: %s]\n", skipMark, c.Name, res.Detail)
		case Failed:
			failed++
			fmt.Fprintf(w, " %s %s\n", crossMark, c.Name)
			for _, line := range strings.Split(res.Detail, "\n") {
				if line != "" {
					fmt.Fprintf(w, "   %s\n", line)
				}
			}
		}
	}

	fmt.Fprintln(w)

	if failed == 0 {
		fmt.Fprintf(w, "%s %s", bold("PASSED"), checkMark)
	} else {
		fmt.Fprintf(w, "%s %d/%d cases passed", bold("FAILED"), passed, passed+failed)
	}

	duration := time.Since(start).Round(time.Millisecond)
	fmt.Fprintf(w, " (took %s)\n", duration)

	return failed == 0
}

// run converts a panicking case into a failure.
func run(c Case) (res Result) {
	defer func() {
		if err := recover(); err != nil {
			res = Result{Status: Failed, Detail: fmt.Sprintf("panic: %v", err)}
		}
	}()

	return c.Fn()
}
