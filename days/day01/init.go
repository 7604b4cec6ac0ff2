package day01

import "github.com/st3v3nmw/aoc2023/internal/registry"

func init() {
	registry.Register(&registry.Day{
		Number: 1,
		Title:  "Trebuchet?!",
		Solve:  Solve,
	})
}
