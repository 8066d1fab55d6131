package domain

import (
	"errors"
	"fmt"
	"strings"
)

// RowSize is the fixed board width. Every board is a whole number of rows.
const RowSize = 9

// Cell holds one board value: 1-9 is an active tile, Cleared a removed
// tile that still occupies its slot, NoCell padding past the dealt tiles.
type Cell = int8

const (
	NoCell  Cell = -1
	Cleared Cell = 0
)

// Board is a flattened row-major grid. Boards are treated as immutable:
// every operation that changes one returns a fresh slice.
type Board []Cell

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidMove  = errors.New("invalid move")
)

// Parse reads one board row per line. A digit becomes a tile, '.' (or '0')
// a cleared cell and any other character a NoCell slot; short rows are
// padded with NoCell up to RowSize. Blank lines are dropped.
func Parse(text string) (Board, error) {
	b := make(Board, 0, 4*RowSize)
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > RowSize {
			return nil, fmt.Errorf("%w: row %q exceeds %d cells", ErrInvalidBoard, line, RowSize)
		}
		for _, ch := range line {
			switch {
			case ch >= '1' && ch <= '9':
				b = append(b, Cell(ch-'0'))
			case ch == '.' || ch == '0':
				b = append(b, Cleared)
			default:
				b = append(b, NoCell)
			}
		}
		for len(b)%RowSize != 0 {
			b = append(b, NoCell)
		}
		rows++
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	return b, nil
}

// String renders the board in the same alphabet Parse consumes, trailing
// spaces trimmed per row.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		row := b[r*RowSize : (r+1)*RowSize]
		line := make([]byte, RowSize)
		for c, v := range row {
			switch {
			case v > 0:
				line[c] = byte('0' + v)
			case v == Cleared:
				line[c] = '.'
			default:
				line[c] = ' '
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
	}
	return sb.String()
}

// Rows returns the number of rows.
func (b Board) Rows() int { return len(b) / RowSize }

// RemainingCount counts active tiles.
func (b Board) RemainingCount() int {
	n := 0
	for _, v := range b {
		if v > 0 {
			n++
		}
	}
	return n
}

// Key packs the full cell sequence into a string usable as a map key.
// Sentinel and cleared cells are distinguished: two boards differing only
// in padding are distinct states.
func (b Board) Key() string {
	buf := make([]byte, len(b))
	for i, v := range b {
		buf[i] = byte(v + 1)
	}
	return string(buf)
}

// Clone returns an independent copy.
func (b Board) Clone() Board { return append(Board(nil), b...) }

// RowCol converts a flat index to (row, col).
func RowCol(i int) (int, int) { return i / RowSize, i % RowSize }

// Index converts (row, col) to a flat index.
func Index(row, col int) int { return row*RowSize + col }
