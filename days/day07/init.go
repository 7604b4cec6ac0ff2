package day07

import "github.com/st3v3nmw/aoc2023/internal/registry"

func init() {
	registry.Register(&registry.Day{
		Number: 7,
		Title:  "Camel Cards",
		Solve:  Solve,
	})
}
