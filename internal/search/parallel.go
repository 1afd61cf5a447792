package search

import (
	"sync"

	"github.com/lk16/reversi/internal/othello"
)

// rootParallel evaluates every root move with the full window on its own
// board copy. Values are exact, so merging them in move order gives the same
// result as rootSequential.
func (b *Bot) rootParallel(board othello.Board, side othello.Side, depth int, moves []othello.Move) Result {
	values := make([]int, len(moves))
	nodes := make([]uint64, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for range min(b.workers, len(moves)) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				s := &searcher{evaluator: b.evaluator, root: side}

				child := board
				child.Apply(moves[i], side)

				values[i] = s.minimax(child, depth-1, side.Opponent(), MinScore, MaxScore)
				nodes[i] = s.nodes
			}
		}()
	}
	wg.Wait()

	result := Result{Score: MinScore}
	for i, value := range values {
		if value > result.Score {
			result.Score = value
			result.Move = moves[i]
		}
		result.Nodes += nodes[i]
	}

	return result
}
