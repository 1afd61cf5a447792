package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lk16/reversi/internal/othello"
)

// Controller runs a game between two players on a text console.
type Controller struct {
	// game contains the board and move history
	game *Game

	// players maps each side to the player making its moves
	players map[othello.Side]Player

	// out receives the rendered board and messages
	out io.Writer
}

// NewController creates a controller for the given game and players.
func NewController(game *Game, black, white Player, out io.Writer) *Controller {
	return &Controller{
		game: game,
		players: map[othello.Side]Player{
			othello.Black: black,
			othello.White: white,
		},
		out: out,
	}
}

// Game returns the game being played.
func (c *Controller) Game() *Game {
	return c.game
}

// Run alternates turns until the game is over or a player fails.
func (c *Controller) Run(ctx context.Context) error {
	for !c.game.IsOver() {
		side := c.game.Turn()
		board := c.game.Board()

		c.render(board.LegalMoves(side))

		move, err := c.players[side].NextMove(ctx, board, side)
		if errors.Is(err, ErrUndoRequested) {
			c.undo(side)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s player: %w", side, err)
		}

		if err := c.game.Play(move); err != nil {
			return fmt.Errorf("%s player: %w", side, err)
		}

		fmt.Fprintf(c.out, "%s plays %s %s\n", side, move, move.Field())
		slog.Debug("Move played", "side", side, "move", move.Field(), "board", c.game.Board().String())

		if last, ok := c.game.LastPly(); ok && last.Pass {
			fmt.Fprintf(c.out, "%s has no moves. Skipping turn.\n", last.Side)
		}
	}

	c.render(nil)
	c.printResult()
	return nil
}

// undo takes back moves until it is side's turn again.
func (c *Controller) undo(side othello.Side) {
	before := len(c.game.History())
	c.game.Undo()

	for c.game.Turn() != side && len(c.game.History()) > 0 {
		previous := len(c.game.History())
		c.game.Undo()
		if len(c.game.History()) == previous {
			break
		}
	}

	if len(c.game.History()) == before {
		fmt.Fprintln(c.out, "Nothing to undo.")
		return
	}

	fmt.Fprintln(c.out, "Move taken back.")
}

func (c *Controller) render(marked []othello.Move) {
	fmt.Fprintln(c.out)
	for _, line := range c.game.Board().ASCIIArtLines(marked) {
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprintln(c.out)
}

func (c *Controller) printResult() {
	black, white := c.game.Tally()
	fmt.Fprintf(c.out, "Black: %d, White: %d\n", black, white)

	winner, ok := c.game.Winner()
	if !ok {
		fmt.Fprintln(c.out, "Game over! It's a tie!")
		return
	}

	fmt.Fprintf(c.out, "Game over! %s won!\n", winner)
}
