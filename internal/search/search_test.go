package search

import (
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// plainMinimax is minimax without pruning, used as a reference.
func plainMinimax(evaluator *othello.Evaluator, board othello.Board, depth int, toMove, root othello.Side) int {
	if depth <= 0 || board.IsTerminal() {
		return evaluator.Score(board, root)
	}

	moves := board.LegalMoves(toMove)
	if len(moves) == 0 {
		return plainMinimax(evaluator, board, depth-1, toMove.Opponent(), root)
	}

	values := make([]int, 0, len(moves))
	for _, move := range moves {
		child, ok := board.DoMove(move, toMove)
		if !ok {
			panic("legal move was rejected")
		}
		values = append(values, plainMinimax(evaluator, child, depth-1, toMove.Opponent(), root))
	}

	if toMove == root {
		return maxOf(values)
	}
	return minOf(values)
}

func maxOf(values []int) int {
	best := values[0]
	for _, v := range values[1:] {
		best = max(best, v)
	}
	return best
}

func minOf(values []int) int {
	best := values[0]
	for _, v := range values[1:] {
		best = min(best, v)
	}
	return best
}

// plainBestMove returns the first move with the highest plain minimax value.
func plainBestMove(evaluator *othello.Evaluator, board othello.Board, side othello.Side, depth int) (othello.Move, int) {
	var bestMove othello.Move
	bestScore := MinScore

	for _, move := range board.LegalMoves(side) {
		child, _ := board.DoMove(move, side)
		value := plainMinimax(evaluator, child, depth-1, side.Opponent(), side)
		if value > bestScore {
			bestScore = value
			bestMove = move
		}
	}

	return bestMove, bestScore
}

type position struct {
	board othello.Board
	side  othello.Side
}

// randomPositions returns boards with a side to move that has legal moves.
func randomPositions(t *testing.T, seed uint64, count int) []position {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	positions := make([]position, 0, count)

	for len(positions) < count {
		board, side, err := othello.NewBoardRandom(rng, 4+rng.Intn(57))
		require.NoError(t, err)

		if !board.HasLegalMove(side) {
			continue
		}

		positions = append(positions, position{board: board, side: side})
	}

	return positions
}

func TestBot_BestMove_Start(t *testing.T) {
	bot := NewBot()

	// All four openings are symmetric, the first one wins the tie.
	move, ok := bot.BestMove(othello.NewBoardStart(), othello.Black, 1)
	require.True(t, ok)
	require.Equal(t, othello.Move{Row: 2, Col: 3}, move)

	for depth := range 5 {
		move, ok := bot.BestMove(othello.NewBoardStart(), othello.Black, depth)
		require.True(t, ok)
		require.True(t, othello.NewBoardStart().IsLegal(move, othello.Black))
	}
}

func TestBot_BestMove_TakesCorner(t *testing.T) {
	board := othello.NewBoardFromStringMust(
		".WB....." +
			"........" +
			"........" +
			"...WB..." +
			"...BW..." +
			"........" +
			"........" +
			"........")

	move, ok := NewBot().BestMove(board, othello.Black, 1)
	require.True(t, ok)
	require.Equal(t, othello.Move{Row: 0, Col: 0}, move)
}

func TestBot_NoLegalMoves(t *testing.T) {
	bot := NewBot()

	// White cannot move, black can.
	board := othello.NewBoardFromStringMust(
		"BW......" +
			"........" +
			"........" +
			"........" +
			"........" +
			"........" +
			"........" +
			"........")

	_, ok := bot.BestMove(board, othello.White, 3)
	require.False(t, ok)

	_, err := bot.Analyze(board, othello.White, 3)
	require.ErrorIs(t, err, ErrNoLegalMoves)

	_, ok = bot.BestMove(othello.NewBoardEmpty(), othello.Black, 3)
	require.False(t, ok)
}

func TestBot_NegativeDepth(t *testing.T) {
	bot := NewBot()

	_, err := bot.Analyze(othello.NewBoardStart(), othello.Black, -1)
	require.ErrorIs(t, err, ErrNegativeDepth)

	_, ok := bot.BestMove(othello.NewBoardStart(), othello.Black, -1)
	require.False(t, ok)
}

func TestBot_Analyze_DepthZero(t *testing.T) {
	result, err := NewBot().Analyze(othello.NewBoardStart(), othello.Black, 0)
	require.NoError(t, err)
	require.Equal(t, 1, result.Depth)
	require.Equal(t, othello.Move{Row: 2, Col: 3}, result.Move)
	require.Equal(t, 6, result.Score)
	require.Positive(t, result.Nodes)
}

func TestBot_Analyze_DoesNotModifyBoard(t *testing.T) {
	board := othello.NewBoardStart()
	snapshot := board

	_, err := NewBot().Analyze(board, othello.Black, 4)
	require.NoError(t, err)
	require.Equal(t, snapshot, board)
}

func TestBot_Minimax_DepthZero(t *testing.T) {
	bot := NewBot()
	board := othello.NewBoardStart()
	require.True(t, board.Apply(othello.Move{Row: 2, Col: 3}, othello.Black))

	require.Equal(t, 6, bot.Minimax(board, 0, othello.White, othello.Black, MinScore, MaxScore))
	require.Equal(t, -6, bot.Minimax(board, 0, othello.Black, othello.White, MinScore, MaxScore))
}

func TestBot_Minimax_Terminal(t *testing.T) {
	bot := NewBot()
	board := othello.NewBoardEmpty()
	board.Set(othello.Move{Row: 0, Col: 0}, othello.Black.Cell())

	for depth := range 5 {
		require.Equal(t, 100, bot.Minimax(board, depth, othello.White, othello.Black, MinScore, MaxScore))
	}
}

func TestBot_Minimax_Pass(t *testing.T) {
	bot := NewBot()

	// White has no move, so white passes and black plays with one ply less.
	board := othello.NewBoardFromStringMust(
		"BW......" +
			"........" +
			"........" +
			"........" +
			"........" +
			"........" +
			"........" +
			"........")

	for depth := 1; depth <= 4; depth++ {
		passed := bot.Minimax(board, depth, othello.White, othello.Black, MinScore, MaxScore)
		direct := bot.Minimax(board, depth-1, othello.Black, othello.Black, MinScore, MaxScore)
		require.Equal(t, direct, passed, "depth %d", depth)
	}
}

func TestBot_AlphaBetaMatchesPlainMinimax(t *testing.T) {
	bot := NewBot()
	evaluator := othello.DefaultEvaluator()

	for i, position := range randomPositions(t, 5, 8) {
		for depth := 0; depth <= 4; depth++ {
			for _, root := range []othello.Side{othello.Black, othello.White} {
				want := plainMinimax(evaluator, position.board, depth, position.side, root)
				got := bot.Minimax(position.board, depth, position.side, root, MinScore, MaxScore)
				require.Equal(t, want, got, "position %d depth %d root %s", i, depth, root)
			}

			// Every legal root move gets the same value as plain minimax.
			for _, move := range position.board.LegalMoves(position.side) {
				child, _ := position.board.DoMove(move, position.side)
				want := plainMinimax(evaluator, child, depth, position.side.Opponent(), position.side)
				got := bot.Minimax(child, depth, position.side.Opponent(), position.side, MinScore, MaxScore)
				require.Equal(t, want, got, "position %d depth %d move %s", i, depth, move)
			}
		}
	}
}

func TestBot_AnalyzeMatchesPlainBestMove(t *testing.T) {
	bot := NewBot()
	evaluator := othello.DefaultEvaluator()

	for i, position := range randomPositions(t, 9, 12) {
		for depth := 1; depth <= 4; depth++ {
			wantMove, wantScore := plainBestMove(evaluator, position.board, position.side, depth)

			result, err := bot.Analyze(position.board, position.side, depth)
			require.NoError(t, err)
			require.Equal(t, wantMove, result.Move, "position %d depth %d", i, depth)
			require.Equal(t, wantScore, result.Score, "position %d depth %d", i, depth)
		}
	}
}

func TestBot_ParallelMatchesSequential(t *testing.T) {
	sequential := NewBot()
	parallel := NewBot(WithWorkers(4))

	for i, position := range randomPositions(t, 13, 10) {
		for depth := 1; depth <= 4; depth++ {
			want, err := sequential.Analyze(position.board, position.side, depth)
			require.NoError(t, err)

			got, err := parallel.Analyze(position.board, position.side, depth)
			require.NoError(t, err)

			require.Equal(t, want.Move, got.Move, "position %d depth %d", i, depth)
			require.Equal(t, want.Score, got.Score, "position %d depth %d", i, depth)
		}
	}
}

func TestBot_WithEvaluator(t *testing.T) {
	var ones othello.Weights
	for row := range othello.Size {
		for col := range othello.Size {
			ones[row][col] = 1
		}
	}

	bot := NewBot(WithEvaluator(othello.NewEvaluator(ones)))

	// With unit weights depth one is greedy disc counting.
	result, err := bot.Analyze(othello.NewBoardStart(), othello.Black, 1)
	require.NoError(t, err)
	require.Equal(t, 3, result.Score)

	// Nil evaluators and non-positive worker counts keep the defaults.
	bot = NewBot(WithEvaluator(nil), WithWorkers(0))
	require.Equal(t, othello.DefaultEvaluator(), bot.evaluator)
	require.Equal(t, 1, bot.workers)
}
