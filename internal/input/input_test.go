// internal/input/input_test.go
package input

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jason-s-yu/bingo/internal/bingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLinesTrims(t *testing.T) {
	lines, err := LoadLines(strings.NewReader("  1,2 \n\n 3 4\t\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1,2", "", "3 4"}, lines)
}

func TestLoadLinesReadError(t *testing.T) {
	_, err := LoadLines(iotest.ErrReader(errors.New("boom")))
	assert.ErrorContains(t, err, "boom")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "nope.txt")
}

func TestParseDraws(t *testing.T) {
	draws, err := ParseDraws("7, 4,9 ,5")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 4, 9, 5}, draws)

	draws, err = ParseDraws("")
	require.NoError(t, err)
	assert.Empty(t, draws)

	_, err = ParseDraws("1,x,3")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseBingoExampleFile(t *testing.T) {
	lines, err := LoadFile(filepath.Join("testdata", "example.txt"))
	require.NoError(t, err)

	draws, cards, err := ParseBingo(lines)
	require.NoError(t, err)
	assert.Len(t, draws, 27)
	require.Len(t, cards, 3, "last card has no trailing blank line and must still be read")

	for _, c := range cards {
		assert.Equal(t, 5, c.Rows())
		assert.Equal(t, 5, c.Cols())
	}
	cell, ok := cards[2].Value(4, 4)
	require.True(t, ok)
	assert.Equal(t, 7, cell.Number)

	res, ok := bingo.NewDriver(nil, bingo.RuleFirstLine).Play(bingo.NewMatch(cards), draws, bingo.PolicyFirstWinner)
	require.True(t, ok)
	assert.Equal(t, 4512, res.Score)
}

func TestParseBingoBlankLines(t *testing.T) {
	lines := []string{"1,2", "", "", "1 2", "3 4", "", "", "", "5 6", "7 8", ""}

	draws, cards, err := ParseBingo(lines)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, draws)
	require.Len(t, cards, 2, "repeated blank lines do not create empty cards")
	assert.Equal(t, 26, cards[1].SumUnmarked())
}

func TestParseBingoNoCards(t *testing.T) {
	draws, cards, err := ParseBingo([]string{"3,1"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, draws)
	assert.Empty(t, cards)
}

func TestParseBingoErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"empty", nil, "empty input"},
		{"bad draw", []string{"1,a"}, "line 1"},
		{"bad number", []string{"1", "", "1 2", "3 b"}, "line 4"},
		{"irregular row", []string{"1", "", "1 2 3", "4 5"}, "line 4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseBingo(tc.lines)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
