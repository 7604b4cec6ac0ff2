package day03

import "github.com/st3v3nmw/aoc2023/internal/registry"

func init() {
	registry.Register(&registry.Day{
		Number: 3,
		Title:  "Gear Ratios",
		Solve:  Solve,
	})
}
