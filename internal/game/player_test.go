package game

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/search"
	"github.com/stretchr/testify/require"
)

func newScanner(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestHumanPlayer_NextMove(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        othello.Move
		wantErr     error
		wantInvalid int
	}{
		{"row col", "2 3\n", othello.Move{Row: 2, Col: 3}, nil, 0},
		{"algebraic", "e6\n", othello.Move{Row: 5, Col: 4}, nil, 0},
		{"retry after illegal", "0 0\nfoo\n\n3 2\n", othello.Move{Row: 3, Col: 2}, nil, 3},
		{"undo", "undo\n", othello.Move{}, ErrUndoRequested, 0},
		{"quit", "QUIT\n", othello.Move{}, ErrQuit, 0},
		{"end of input", "9 9\n", othello.Move{}, ErrInputClosed, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			player := NewHumanPlayer(newScanner(test.input), &out)

			move, err := player.NextMove(context.Background(), othello.NewBoardStart(), othello.Black)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, test.want, move)
			}

			require.Equal(t, test.wantInvalid, strings.Count(out.String(), "Invalid move. Try again."))
			require.Contains(t, out.String(), "Your turn (Black). Valid moves: (2,3) d3, (3,2) c4, (4,5) f5, (5,4) e6")
		})
	}
}

func TestHumanPlayer_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	player := NewHumanPlayer(newScanner("2 3\n"), &bytes.Buffer{})
	_, err := player.NextMove(ctx, othello.NewBoardStart(), othello.Black)
	require.ErrorIs(t, err, context.Canceled)
}

func TestChooseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    othello.Side
		wantErr error
	}{
		{"black", "B\n", othello.Black, nil},
		{"white lower case", "w\n", othello.White, nil},
		{"retry", "x\n\nblack\nW\n", othello.White, nil},
		{"end of input", "", 0, ErrInputClosed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			side, err := ChooseColor(newScanner(test.input), &out)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, side)
		})
	}
}

func TestChooseColor_InvalidMessage(t *testing.T) {
	var out bytes.Buffer
	_, err := ChooseColor(newScanner("x\nb\n"), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Invalid choice. Please enter 'B' or 'W'.")
}

func TestBotPlayer_NextMove(t *testing.T) {
	bot := search.NewBot()
	player := NewBotPlayer(bot, 3)
	board := othello.NewBoardStart()

	move, err := player.NextMove(context.Background(), board, othello.Black)
	require.NoError(t, err)

	want, ok := bot.BestMove(board, othello.Black, 3)
	require.True(t, ok)
	require.Equal(t, want, move)

	_, err = player.NextMove(context.Background(), othello.NewBoardEmpty(), othello.Black)
	require.ErrorIs(t, err, search.ErrNoLegalMoves)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = player.NextMove(ctx, board, othello.Black)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRandomPlayer_NextMove(t *testing.T) {
	player := NewRandomPlayer(1)
	board := othello.NewBoardStart()

	seen := make(map[othello.Move]bool)
	for range 100 {
		move, err := player.NextMove(context.Background(), board, othello.Black)
		require.NoError(t, err)
		require.True(t, board.IsLegal(move, othello.Black))
		seen[move] = true
	}
	require.Len(t, seen, 4)

	_, err := player.NextMove(context.Background(), othello.NewBoardEmpty(), othello.Black)
	require.ErrorIs(t, err, search.ErrNoLegalMoves)
}

func TestRandomPlayer_Deterministic(t *testing.T) {
	a := NewRandomPlayer(99)
	b := NewRandomPlayer(99)
	board := othello.NewBoardStart()

	for range 20 {
		moveA, err := a.NextMove(context.Background(), board, othello.Black)
		require.NoError(t, err)
		moveB, err := b.NextMove(context.Background(), board, othello.Black)
		require.NoError(t, err)
		require.Equal(t, moveA, moveB)
	}
}
