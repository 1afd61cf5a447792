package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/search"
	"golang.org/x/exp/rand"
)

var (
	// ErrInputClosed is returned when a human player's input ends.
	ErrInputClosed = errors.New("input closed")

	// ErrQuit is returned when a human player asks to stop the game.
	ErrQuit = errors.New("player quit")

	// ErrUndoRequested is returned when a human player wants to take back
	// their last move.
	ErrUndoRequested = errors.New("undo requested")
)

// Player picks moves. NextMove is only called when side has a legal move
// and must return one of them.
type Player interface {
	NextMove(ctx context.Context, board othello.Board, side othello.Side) (othello.Move, error)
}

// HumanPlayer reads moves from a line based input.
type HumanPlayer struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHumanPlayer creates a human player reading from scanner and writing
// prompts to out.
func NewHumanPlayer(scanner *bufio.Scanner, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		scanner: scanner,
		out:     out,
	}
}

// NextMove prompts until a legal move is entered.
func (h *HumanPlayer) NextMove(ctx context.Context, board othello.Board, side othello.Side) (othello.Move, error) {
	legalMoves := board.LegalMoves(side)

	fields := make([]string, len(legalMoves))
	for i, m := range legalMoves {
		fields[i] = fmt.Sprintf("%s %s", m, m.Field())
	}

	for {
		if err := ctx.Err(); err != nil {
			return othello.Move{}, err
		}

		fmt.Fprintf(h.out, "Your turn (%s). Valid moves: %s\n", side, strings.Join(fields, ", "))
		fmt.Fprint(h.out, "Enter move (row col), undo or quit: ")

		line, err := readLine(h.scanner)
		if err != nil {
			return othello.Move{}, err
		}

		switch strings.ToLower(line) {
		case "undo":
			return othello.Move{}, ErrUndoRequested
		case "quit", "exit":
			return othello.Move{}, ErrQuit
		}

		move, err := othello.ParseMove(line)
		if err != nil || !board.IsLegal(move, side) {
			fmt.Fprintln(h.out, "Invalid move. Try again.")
			continue
		}

		return move, nil
	}
}

// readLine returns the next trimmed line or ErrInputClosed at the end of input.
func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// BotPlayer plays the moves found by a search bot at a fixed depth.
type BotPlayer struct {
	bot   *search.Bot
	depth int
}

// NewBotPlayer creates a bot player.
func NewBotPlayer(bot *search.Bot, depth int) *BotPlayer {
	return &BotPlayer{
		bot:   bot,
		depth: depth,
	}
}

// NextMove runs the search. The search itself is not interruptible, ctx is
// only checked before it starts.
func (b *BotPlayer) NextMove(ctx context.Context, board othello.Board, side othello.Side) (othello.Move, error) {
	if err := ctx.Err(); err != nil {
		return othello.Move{}, err
	}

	result, err := b.bot.Analyze(board, side, b.depth)
	if err != nil {
		return othello.Move{}, fmt.Errorf("bot search failed: %w", err)
	}

	return result.Move, nil
}

// RandomPlayer plays uniformly random legal moves.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer creates a random player with a fixed seed.
func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NextMove picks a random legal move.
func (r *RandomPlayer) NextMove(_ context.Context, board othello.Board, side othello.Side) (othello.Move, error) {
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return othello.Move{}, search.ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// ChooseColor asks the human which side they want to play until they
// answer B or W.
func ChooseColor(scanner *bufio.Scanner, out io.Writer) (othello.Side, error) {
	for {
		fmt.Fprint(out, "Choose your color (B for Black, W for White): ")

		line, err := readLine(scanner)
		if err != nil {
			return 0, err
		}

		switch strings.ToUpper(line) {
		case "B":
			return othello.Black, nil
		case "W":
			return othello.White, nil
		}

		fmt.Fprintln(out, "Invalid choice. Please enter 'B' or 'W'.")
	}
}
