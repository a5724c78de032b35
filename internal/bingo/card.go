// internal/bingo/card.go
package bingo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Cell is a single number on a card together with its marked state.
type Cell struct {
	Number int  `json:"number"`
	Marked bool `json:"marked"`
}

// Card is a rectangular grid of numbers that get marked as they are drawn.
// The grid is assumed rectangular; the input parser is responsible for that.
type Card struct {
	ID    uuid.UUID
	cells [][]Cell
}

// NewCard builds an unmarked card from a grid of numbers.
func NewCard(rows [][]int) *Card {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, n := range row {
			cells[i][j] = Cell{Number: n}
		}
	}
	return &Card{
		ID:    uuid.New(),
		cells: cells,
	}
}

// Rows returns the number of rows on the card.
func (c *Card) Rows() int {
	return len(c.cells)
}

// Cols returns the number of columns, taken from the first row.
func (c *Card) Cols() int {
	if len(c.cells) == 0 {
		return 0
	}
	return len(c.cells[0])
}

// Value returns the cell at (row, col). The bool is false when either index is out of range.
func (c *Card) Value(row, col int) (Cell, bool) {
	if row < 0 || row >= len(c.cells) {
		return Cell{}, false
	}
	if col < 0 || col >= len(c.cells[row]) {
		return Cell{}, false
	}
	return c.cells[row][col], true
}

// Mark marks every cell holding n and reports whether a row or column
// containing one of those cells is complete afterwards. Cells that were
// already marked are inspected too, so repeating a number that sits in a
// complete line reports true again.
func (c *Card) Mark(n int) bool {
	type pos struct{ row, col int }
	var touched []pos
	for i, row := range c.cells {
		for j := range row {
			if row[j].Number != n {
				continue
			}
			row[j].Marked = true
			touched = append(touched, pos{i, j})
		}
	}

	for _, p := range touched {
		if c.rowCompleted(p.row) || c.colCompleted(p.col) {
			return true
		}
	}
	return false
}

// SumUnmarked adds up every number that has not been marked yet.
func (c *Card) SumUnmarked() int {
	sum := 0
	for _, row := range c.cells {
		for _, cell := range row {
			if !cell.Marked {
				sum += cell.Number
			}
		}
	}
	return sum
}

// CountCompletedLines counts fully marked rows plus fully marked columns over the whole grid.
func (c *Card) CountCompletedLines() int {
	if c.Rows() == 0 || c.Cols() == 0 {
		return 0
	}

	count := 0
	for i := range c.cells {
		if c.rowCompleted(i) {
			count++
		}
	}
	for j := 0; j < c.Cols(); j++ {
		if c.colCompleted(j) {
			count++
		}
	}
	return count
}

// Cells returns a copy of the grid.
func (c *Card) Cells() [][]Cell {
	cells := make([][]Cell, len(c.cells))
	for i, row := range c.cells {
		cells[i] = append([]Cell(nil), row...)
	}
	return cells
}

// Clone returns a deep copy of the card, keeping its ID.
func (c *Card) Clone() *Card {
	return &Card{ID: c.ID, cells: c.Cells()}
}

type cardJSON struct {
	ID    uuid.UUID `json:"id"`
	Cells [][]Cell  `json:"cells"`
}

// MarshalJSON encodes the card ID together with its grid.
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{ID: c.ID, Cells: c.cells})
}

// UnmarshalJSON restores a card written by MarshalJSON.
func (c *Card) UnmarshalJSON(data []byte) error {
	var v cardJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c.ID = v.ID
	c.cells = v.Cells
	return nil
}

// String renders the grid one row per line, with marked numbers in brackets.
func (c *Card) String() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			if cell.Marked {
				fmt.Fprintf(&b, "[%2d]", cell.Number)
			} else {
				fmt.Fprintf(&b, " %2d ", cell.Number)
			}
		}
	}
	return b.String()
}

func (c *Card) rowCompleted(row int) bool {
	if row < 0 || row >= len(c.cells) || len(c.cells[row]) == 0 {
		return false
	}
	for _, cell := range c.cells[row] {
		if !cell.Marked {
			return false
		}
	}
	return true
}

func (c *Card) colCompleted(col int) bool {
	if len(c.cells) == 0 {
		return false
	}
	for _, row := range c.cells {
		if col < 0 || col >= len(row) || !row[col].Marked {
			return false
		}
	}
	return true
}
