package othello

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Size is the width and height of the board.
const Size = 8

// ErrInvalidBoard is returned when a board string cannot be parsed.
var ErrInvalidBoard = errors.New("invalid board")

// ErrInvalidMove is returned when a move string cannot be parsed.
var ErrInvalidMove = errors.New("invalid move")

// Side is one of the two competing colors.
type Side int8

const (
	Black Side = iota + 1
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return Black + White - s
}

// Cell returns the cell state occupied by this side.
func (s Side) Cell() Cell {
	return Cell(s)
}

// String returns the name of the side.
func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Side(%d)", int8(s))
	}
}

// ParseSide parses "b", "black", "w" or "white" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	default:
		return 0, fmt.Errorf("invalid side: %q", s)
	}
}

// Cell is the state of a single square.
type Cell int8

const (
	Empty Cell = 0
)

// String returns the single character used in board strings.
func (c Cell) String() string {
	switch c {
	case Cell(Black):
		return "B"
	case Cell(White):
		return "W"
	default:
		return "."
	}
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Valid checks that the move is within the board bounds.
func (m Move) Valid() bool {
	return inBounds(m.Row, m.Col)
}

// index returns the bit index of the move, row-major.
func (m Move) index() int {
	return m.Row*Size + m.Col
}

// String returns the move as "(row,col)".
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Field returns the algebraic notation, e.g. (2,3) is "d3".
func (m Move) Field() string {
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// ParseMove parses either "row col" (zero based, space or comma separated)
// or algebraic notation such as "d3".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if len(s) == 2 && 'a' <= s[0] && s[0] <= 'h' && '1' <= s[1] && s[1] <= '8' {
		return Move{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	var m Move
	if _, err := fmt.Sscanf(fields[0]+" "+fields[1], "%d %d", &m.Row, &m.Col); err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	if !m.Valid() {
		return Move{}, fmt.Errorf("%w: %s is off the board", ErrInvalidMove, m)
	}

	return m, nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Board is an 8x8 grid of cells. It is a value type: assigning a Board copies
// all cells, so a copy can be mutated without affecting the original.
type Board struct {
	cells [Size][Size]Cell
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	var b Board
	b.cells[3][3] = White.Cell()
	b.cells[4][4] = White.Cell()
	b.cells[3][4] = Black.Cell()
	b.cells[4][3] = Black.Cell()
	return b
}

// NewBoardEmpty creates a new board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString creates a board from 64 characters in row-major order.
// 'B' is black, 'W' is white, '.' or '-' is empty. Whitespace is ignored.
func NewBoardFromString(s string) (Board, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(s) != Size*Size {
		return Board{}, fmt.Errorf("%w: must be %d characters long, got %d", ErrInvalidBoard, Size*Size, len(s))
	}

	var b Board
	for i := range len(s) {
		var cell Cell
		switch s[i] {
		case 'B', 'b':
			cell = Black.Cell()
		case 'W', 'w':
			cell = White.Cell()
		case '.', '-':
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at %d", ErrInvalidBoard, s[i], i)
		}
		b.cells[i/Size][i%Size] = cell
	}

	return b, nil
}

// NewBoardFromStringMust is like NewBoardFromString but panics on error.
func NewBoardFromStringMust(s string) Board {
	b, err := NewBoardFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Get returns the cell at the given move. Moves off the board are Empty.
func (b Board) Get(m Move) Cell {
	if !m.Valid() {
		return Empty
	}
	return b.cells[m.Row][m.Col]
}

// Set overwrites a cell. Only meant for building fixtures, use Apply to play.
func (b *Board) Set(m Move, c Cell) {
	b.cells[m.Row][m.Col] = c
}

// Count returns the number of cells in the given state.
func (b Board) Count(c Cell) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if b.cells[row][col] == c {
				count++
			}
		}
	}
	return count
}

// Tally returns the number of black and white discs.
func (b Board) Tally() (black, white int) {
	return b.Count(Black.Cell()), b.Count(White.Cell())
}

// DiscDifference returns the disc count of side minus that of its opponent.
func (b Board) DiscDifference(side Side) int {
	return b.Count(side.Cell()) - b.Count(side.Opponent().Cell())
}

// String returns the 64 character representation of the board.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for row := range Size {
		for col := range Size {
			sb.WriteString(b.cells[row][col].String())
		}
	}
	return sb.String()
}

// ASCIIArtLines returns the ascii art lines for the board. Cells in marked
// are drawn as '*', which is used to show legal moves.
func (b Board) ASCIIArtLines(marked []Move) []string {
	var markMask uint64
	for _, m := range marked {
		if m.Valid() {
			markMask |= 1 << m.index()
		}
	}

	lines := make([]string, Size+1)
	lines[0] = "  0 1 2 3 4 5 6 7"

	for row := range Size {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", row)

		for col := range Size {
			cell := b.cells[row][col]
			sb.WriteByte(' ')
			switch {
			case cell != Empty:
				sb.WriteString(cell.String())
			case markMask&(1<<(row*Size+col)) != 0:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}

		lines[row+1] = sb.String()
	}

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(marked []Move) {
	for _, line := range b.ASCIIArtLines(marked) {
		fmt.Println(line)
	}
}
