package othello

import "math/bits"

// directions lists the 8 compass directions as (row, col) steps.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// flipped returns a bitset with all the opponent discs that would be flipped
// if side played the given move. It is zero for illegal moves.
// All runs are collected from the current board, nothing is changed.
func (b Board) flipped(m Move, side Side) uint64 {
	if !m.Valid() || b.cells[m.Row][m.Col] != Empty {
		return 0
	}

	own := side.Cell()
	opp := side.Opponent().Cell()

	flipped := uint64(0)

	for _, dir := range directions {
		dr, dc := dir[0], dir[1]
		row, col := m.Row+dr, m.Col+dc

		run := uint64(0)
		for inBounds(row, col) && b.cells[row][col] == opp {
			run |= 1 << (row*Size + col)
			row += dr
			col += dc
		}

		// The run only counts when it is bounded by one of our own discs.
		if run != 0 && inBounds(row, col) && b.cells[row][col] == own {
			flipped |= run
		}
	}

	return flipped
}

// IsLegal checks if side may play the given move.
func (b Board) IsLegal(m Move, side Side) bool {
	return b.flipped(m, side) != 0
}

// LegalMoves returns all legal moves for side in row-major order.
func (b Board) LegalMoves(side Side) []Move {
	moves := make([]Move, 0, 16)
	for row := range Size {
		for col := range Size {
			m := Move{Row: row, Col: col}
			if b.IsLegal(m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasLegalMove returns whether side has at least one legal move.
func (b Board) HasLegalMove(side Side) bool {
	for row := range Size {
		for col := range Size {
			if b.IsLegal(Move{Row: row, Col: col}, side) {
				return true
			}
		}
	}
	return false
}

// Flipped returns the discs that would be flipped by the move, row-major.
// It returns nil if the move is not legal.
func (b Board) Flipped(m Move, side Side) []Move {
	mask := b.flipped(m, side)
	if mask == 0 {
		return nil
	}

	moves := make([]Move, 0, bits.OnesCount64(mask))
	for mask != 0 {
		index := bits.TrailingZeros64(mask)
		moves = append(moves, Move{Row: index / Size, Col: index % Size})
		mask &= mask - 1
	}
	return moves
}

// Apply plays the move for side in place. It returns false and leaves the
// board untouched if the move is not legal.
func (b *Board) Apply(m Move, side Side) bool {
	mask := b.flipped(m, side)
	if mask == 0 {
		return false
	}

	own := side.Cell()
	b.cells[m.Row][m.Col] = own

	for mask != 0 {
		index := bits.TrailingZeros64(mask)
		b.cells[index/Size][index%Size] = own
		mask &= mask - 1
	}

	return true
}

// DoMove returns a copy of the board with the move played. The receiver is
// never modified. If the move is not legal the copy is returned unchanged
// together with false.
func (b Board) DoMove(m Move, side Side) (Board, bool) {
	ok := b.Apply(m, side)
	return b, ok
}

// IsTerminal returns true if neither side has a legal move.
func (b Board) IsTerminal() bool {
	return !b.HasLegalMove(Black) && !b.HasLegalMove(White)
}
