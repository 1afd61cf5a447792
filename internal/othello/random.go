package othello

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// NewBoardRandom plays random legal moves from the start position until the
// board holds the requested number of discs. It returns the board and the
// side to move. Passes are handled like in a real game.
func NewBoardRandom(rng *rand.Rand, discs int) (Board, Side, error) {
	if discs < 4 || discs > Size*Size {
		return Board{}, 0, fmt.Errorf("invalid number of discs: %d", discs)
	}

	board := NewBoardStart()
	side := Black

	for board.Count(Empty) > Size*Size-discs {
		moves := board.LegalMoves(side)
		if len(moves) == 0 {
			if !board.HasLegalMove(side.Opponent()) {
				// Game ended early, start over.
				board = NewBoardStart()
				side = Black
				continue
			}
			side = side.Opponent()
			continue
		}

		board.Apply(moves[rng.Intn(len(moves))], side)
		side = side.Opponent()
	}

	return board, side, nil
}
