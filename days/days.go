// Package days registers every solved day with the registry.
package days

import (
	_ "github.com/st3v3nmw/aoc2023/days/day01"
	_ "github.com/st3v3nmw/aoc2023/days/day02"
	_ "github.com/st3v3nmw/aoc2023/days/day03"
	_ "github.com/st3v3nmw/aoc2023/days/day04"
	_ "github.com/st3v3nmw/aoc2023/days/day05"
	_ "github.com/st3v3nmw/aoc2023/days/day06"
	_ "github.com/st3v3nmw/aoc2023/days/day07"
)
