package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/st3v3nmw/aoc2023/internal/cli"
	"github.com/st3v3nmw/aoc2023/internal/logging"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Command().Run(context.Background(), os.Args); err != nil {
		log := logging.New(os.Stderr, zerolog.ErrorLevel)
		log.Fatal().Err(err).Msg("aoc failed")
	}
}
