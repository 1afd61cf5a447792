package game

import (
	"errors"
	"fmt"

	"github.com/lk16/reversi/internal/othello"
)

var (
	// ErrIllegalMove is returned when a move is not legal for the side to move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver is returned when playing a move after the game ended.
	ErrGameOver = errors.New("game is over")
)

// Ply is a single turn in the game: either a move or a pass.
type Ply struct {
	Side othello.Side
	Move othello.Move
	Pass bool
}

// Game represents an Othello game, either complete or in progress.
type Game struct {
	// start is the board before any move is played. This allows for custom
	// start positions in tests.
	start     othello.Board
	startSide othello.Side

	// plies is the list of turns in the game. Passes are added automatically.
	plies []Ply

	// board and turn are derived from start and plies.
	board othello.Board
	turn  othello.Side
}

// NewGameWithStart creates a new game with a custom start board and side to move.
func NewGameWithStart(start othello.Board, side othello.Side) *Game {
	g := &Game{
		start:     start,
		startSide: side,
		plies:     make([]Ply, 0, 64),
	}
	g.replay()
	return g
}

// NewGame creates a new game from the standard start position with black to move.
func NewGame() *Game {
	return NewGameWithStart(othello.NewBoardStart(), othello.Black)
}

// Board returns a copy of the current board.
func (g *Game) Board() othello.Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() othello.Side {
	return g.turn
}

// History returns a copy of all plies played so far.
func (g *Game) History() []Ply {
	history := make([]Ply, len(g.plies))
	copy(history, g.plies)
	return history
}

// LastPly returns the last ply, if any.
func (g *Game) LastPly() (Ply, bool) {
	if len(g.plies) == 0 {
		return Ply{}, false
	}
	return g.plies[len(g.plies)-1], true
}

// Play plays a move for the side to move. If the next side then has no
// legal move while the game continues, a pass is recorded for it.
func (g *Game) Play(move othello.Move) error {
	if g.IsOver() {
		return ErrGameOver
	}

	if !g.board.Apply(move, g.turn) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, move, g.turn)
	}

	g.plies = append(g.plies, Ply{Side: g.turn, Move: move})
	g.turn = g.turn.Opponent()
	g.addPassIfNeeded()

	return nil
}

// addPassIfNeeded records a pass when the side to move has no legal moves
// but its opponent does.
func (g *Game) addPassIfNeeded() {
	if g.board.HasLegalMove(g.turn) || !g.board.HasLegalMove(g.turn.Opponent()) {
		return
	}

	g.plies = append(g.plies, Ply{Side: g.turn, Pass: true})
	g.turn = g.turn.Opponent()
}

// Undo removes the last move together with any pass that followed it.
// It does nothing if no move was played yet.
func (g *Game) Undo() {
	n := len(g.plies)

	// Prevent having a last board without moves.
	for n > 0 && g.plies[n-1].Pass {
		n--
	}

	if n == 0 {
		return
	}

	g.plies = g.plies[:n-1]
	g.replay()
}

// replay recomputes board and turn from the start board and the plies.
func (g *Game) replay() {
	g.board = g.start
	g.turn = g.startSide

	if len(g.plies) == 0 {
		g.addPassIfNeeded()
		return
	}

	for _, ply := range g.plies {
		if !ply.Pass {
			g.board.Apply(ply.Move, ply.Side)
		}
		g.turn = ply.Side.Opponent()
	}
}

// IsOver returns true when neither side can move.
func (g *Game) IsOver() bool {
	return g.board.IsTerminal()
}

// Tally returns the number of black and white discs.
func (g *Game) Tally() (black, white int) {
	return g.board.Tally()
}

// Winner returns the side with more discs. The boolean is false on a draw.
func (g *Game) Winner() (othello.Side, bool) {
	black, white := g.Tally()
	switch {
	case black > white:
		return othello.Black, true
	case white > black:
		return othello.White, true
	default:
		return 0, false
	}
}
