package day05

import "github.com/st3v3nmw/aoc2023/internal/registry"

func init() {
	registry.Register(&registry.Day{
		Number: 5,
		Title:  "If You Give A Seed A Fertilizer",
		Solve:  Solve,
	})
}
