// Package input resolves where a puzzle input is read from.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Stdin is the argument selecting standard input.
const Stdin = "-"

var ErrNotFound = errors.New("file not found")

// Source is either standard input or a file on disk.
type Source struct {
	path string
}

// ParseSource resolves "-" to standard input and anything else to an
// absolute path of an existing file.
func ParseSource(s string) (Source, error) {
	if s == "" || s == Stdin {
		return Source{}, nil
	}

	path, err := filepath.Abs(s)
	if err != nil {
		return Source{}, fmt.Errorf("resolve %s: %w", s, err)
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return Source{}, fmt.Errorf("%w: %s", ErrNotFound, s)
	}
	if err != nil {
		return Source{}, fmt.Errorf("stat %s: %w", s, err)
	}
	if info.IsDir() {
		return Source{}, fmt.Errorf("%s is a directory", s)
	}

	return Source{path: path}, nil
}

func (s Source) IsStdin() bool {
	return s.path == ""
}

func (s Source) Path() string {
	return s.path
}

func (s Source) String() string {
	if s.IsStdin() {
		return "<stdin>"
	}
	return s.path
}

// Read returns the whole input. stdin is used when the source is standard input.
func (s Source) Read(ctx context.Context, stdin io.Reader) (string, error) {
	log := zerolog.Ctx(ctx)
	log.Trace().Stringer("source", s).Msg("reading input")

	var (
		data []byte
		err  error
	)
	if s.IsStdin() {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(s.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", s, err)
	}

	log.Trace().Int("bytes", len(data)).Msg("read input")
	return string(data), nil
}
