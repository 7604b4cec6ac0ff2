package day06

import "github.com/st3v3nmw/aoc2023/internal/registry"

func init() {
	registry.Register(&registry.Day{
		Number: 6,
		Title:  "Wait For It",
		Solve:  Solve,
	})
}
