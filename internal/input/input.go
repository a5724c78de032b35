// internal/input/input.go
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jason-s-yu/bingo/internal/bingo"
)

// ErrMalformedInput is returned when the puzzle input does not have the expected shape.
var ErrMalformedInput = errors.New("malformed input")

// LoadLines reads r line by line, trimming surrounding whitespace from each line.
func LoadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// LoadFile opens path and returns its trimmed lines.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	lines, err := LoadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// ParseDraws parses a comma separated list of numbers.
func ParseDraws(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	fields := strings.Split(line, ",")
	draws := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid draw %q", ErrMalformedInput, f)
		}
		draws = append(draws, n)
	}
	return draws, nil
}

// ParseBingo splits puzzle input into the draw sequence (first line) and the
// cards that follow it, one per blank-line separated block.
func ParseBingo(lines []string) ([]int, []*bingo.Card, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	draws, err := ParseDraws(lines[0])
	if err != nil {
		return nil, nil, fmt.Errorf("line 1: %w", err)
	}

	var (
		cards []*bingo.Card
		rows  [][]int
		start int
	)
	flush := func() {
		if len(rows) > 0 {
			cards = append(cards, bingo.NewCard(rows))
		}
		rows = nil
	}

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			flush()
			continue
		}
		if len(rows) == 0 {
			start = i + 1
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, nil, fmt.Errorf("line %d: %w: row has %d numbers, card starting at line %d has %d",
				i+1, ErrMalformedInput, len(row), start, len(rows[0]))
		}
		rows = append(rows, row)
	}
	// the last card may not be followed by a blank line
	flush()

	return draws, cards, nil
}

func parseRow(line string) ([]int, error) {
	fields := strings.Fields(line)
	row := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrMalformedInput, f)
		}
		row = append(row, n)
	}
	return row, nil
}
