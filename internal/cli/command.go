package cli

import (
	"github.com/st3v3nmw/aoc2023/internal/config"
	"github.com/st3v3nmw/aoc2023/internal/input"
	"github.com/st3v3nmw/aoc2023/internal/logging"
	commands "github.com/urfave/cli/v3"
)

// Command builds the aoc command tree.
func Command() *commands.Command {
	return &commands.Command{
		Name:      "aoc",
		Usage:     "Advent of Code 2023 solutions",
		ArgsUsage: "<day>",
		Flags: []commands.Flag{
			&commands.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Puzzle input file, - for stdin",
				Value:   input.Stdin,
				Sources: commands.EnvVars("AOC_INPUT"),
			},
			&commands.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   logging.DefaultLevel,
				Sources: commands.EnvVars("AOC_LOG_LEVEL"),
			},
			&commands.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to aoc.yaml",
				Value:   config.DefaultPath,
				Sources: commands.EnvVars("AOC_CONFIG"),
			},
			&commands.StringFlag{
				Name:  "format",
				Usage: "Output format (text, json)",
				Value: "text",
			},
		},
		Action: Solve,
		Commands: []*commands.Command{
			{
				Name:   "list",
				Usage:  "Show solved days",
				Action: List,
			},
			{
				Name:   "input",
				Usage:  "Echo the puzzle input",
				Action: Input,
			},
			{
				Name:      "check",
				Usage:     "Compare solutions with the answer book",
				ArgsUsage: "[day...]",
				Action:    Check,
			},
			{
				Name:   "all",
				Usage:  "Solve every day that has an input file",
				Action: All,
			},
		},
	}
}
