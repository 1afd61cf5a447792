package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lk16/reversi/internal/othello"
)

const (
	// MinScore and MaxScore form the initial alpha-beta window.
	MinScore = math.MinInt
	MaxScore = math.MaxInt
)

var (
	// ErrNoLegalMoves is returned when the side to search for cannot move.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrNegativeDepth is returned for search depths below zero.
	ErrNegativeDepth = errors.New("depth must not be negative")
)

// Option configures a Bot.
type Option func(b *Bot)

// WithEvaluator sets the evaluator used at the leaves.
func WithEvaluator(evaluator *othello.Evaluator) Option {
	return func(b *Bot) {
		if evaluator != nil {
			b.evaluator = evaluator
		}
	}
}

// WithWorkers evaluates the root moves on this many goroutines.
func WithWorkers(workers int) Option {
	return func(b *Bot) {
		if workers > 0 {
			b.workers = workers
		}
	}
}

// Bot selects moves with minimax and alpha-beta pruning. A Bot holds no
// state between searches and may be used from several goroutines.
type Bot struct {
	evaluator *othello.Evaluator
	workers   int
}

// NewBot creates a new bot.
func NewBot(options ...Option) *Bot {
	b := &Bot{
		evaluator: othello.DefaultEvaluator(),
		workers:   1,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Result describes the outcome of a search.
type Result struct {
	Move    othello.Move
	Score   int
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// BestMove returns the best move for side. The boolean is false when side
// has no legal move or depth is negative.
func (b *Bot) BestMove(board othello.Board, side othello.Side, depth int) (othello.Move, bool) {
	result, err := b.Analyze(board, side, depth)
	if err != nil {
		return othello.Move{}, false
	}
	return result.Move, true
}

// Analyze searches every legal move of side and returns the first one with
// the highest minimax value, scored from the perspective of side. A depth of
// zero is searched as depth one, since a move has to be played to compare
// moves.
func (b *Bot) Analyze(board othello.Board, side othello.Side, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	depth = max(depth, 1)
	start := time.Now()

	var result Result
	if b.workers > 1 && len(moves) > 1 {
		result = b.rootParallel(board, side, depth, moves)
	} else {
		result = b.rootSequential(board, side, depth, moves)
	}

	result.Depth = depth
	result.Elapsed = time.Since(start)

	b.logStats(side, result)
	return result, nil
}

// Minimax returns the value of board with toMove to play, scored for root.
func (b *Bot) Minimax(board othello.Board, depth int, toMove, root othello.Side, alpha, beta int) int {
	s := &searcher{evaluator: b.evaluator, root: root}
	return s.minimax(board, depth, toMove, alpha, beta)
}

func (b *Bot) rootSequential(board othello.Board, side othello.Side, depth int, moves []othello.Move) Result {
	s := &searcher{evaluator: b.evaluator, root: side}

	result := Result{Score: MinScore}
	alpha := MinScore

	for _, move := range moves {
		child := board
		child.Apply(move, side)

		value := s.minimax(child, depth-1, side.Opponent(), alpha, MaxScore)

		// Strictly greater keeps the first of equal moves.
		if value > result.Score {
			result.Score = value
			result.Move = move
		}
		alpha = max(alpha, result.Score)
	}

	result.Nodes = s.nodes
	return result
}

func (b *Bot) logStats(side othello.Side, result Result) {
	elapsedSeconds := result.Elapsed.Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 {
		nodesPerSecond = int64(float64(result.Nodes) / elapsedSeconds)
	}

	slog.Debug("Search finished",
		"side", side,
		"depth", result.Depth,
		"move", result.Move.Field(),
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", result.Elapsed,
		"nodes_per_second", nodesPerSecond,
	)
}

// searcher holds the state of a single search. The root side stays fixed
// for the whole tree.
type searcher struct {
	evaluator *othello.Evaluator
	root      othello.Side
	nodes     uint64
}

func (s *searcher) minimax(board othello.Board, depth int, toMove othello.Side, alpha, beta int) int {
	s.nodes++

	if depth <= 0 {
		return s.evaluator.Score(board, s.root)
	}

	moves := board.LegalMoves(toMove)

	if len(moves) == 0 {
		if !board.HasLegalMove(toMove.Opponent()) {
			return s.evaluator.Score(board, s.root)
		}

		// Pass.
		return s.minimax(board, depth-1, toMove.Opponent(), alpha, beta)
	}

	if toMove == s.root {
		best := MinScore
		for _, move := range moves {
			child := board
			child.Apply(move, toMove)

			best = max(best, s.minimax(child, depth-1, toMove.Opponent(), alpha, beta))
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := MaxScore
	for _, move := range moves {
		child := board
		child.Apply(move, toMove)

		best = min(best, s.minimax(child, depth-1, toMove.Opponent(), alpha, beta))
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}
	return best
}
