package day02

import "github.com/st3v3nmw/aoc2023/internal/registry"

func init() {
	registry.Register(&registry.Day{
		Number: 2,
		Title:  "Cube Conundrum",
		Solve:  Solve,
	})
}
