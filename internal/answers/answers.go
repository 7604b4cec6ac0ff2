// Package answers reads the book of accepted answers used by `aoc check`.
//
// The book is a JSON object keyed by day number:
//
//	{"1": {"part1": 55029, "part2": 55686}}
package answers

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

type Book struct {
	raw string
}

// Load reads the book at path. A missing file yields an empty book.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Book{raw: "{}"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Book, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("answers are not valid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, errors.New("answers must be a JSON object keyed by day")
	}

	return &Book{raw: string(data)}, nil
}

// Expected returns the accepted answer for a day's part.
func (b *Book) Expected(day, part int) (string, bool) {
	res := gjson.Get(b.raw, fmt.Sprintf("%d.part%d", day, part))
	if !res.Exists() || res.Type == gjson.Null {
		return "", false
	}

	// Raw keeps large integers exact; strings are unquoted.
	if res.Type == gjson.String {
		return res.Str, true
	}
	return res.Raw, true
}
