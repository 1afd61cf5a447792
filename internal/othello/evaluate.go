package othello

// Weights assigns a positional value to every square.
type Weights [Size][Size]int

// DefaultWeights favours corners and punishes the squares next to them,
// which usually give the corner away. It is tuned for shallow searches.
var DefaultWeights = Weights{
	{100, -30, 6, 2, 2, 6, -30, 100},
	{-30, -50, 0, 0, 0, 0, -50, -30},
	{6, 0, 0, 0, 0, 0, 0, 6},
	{2, 0, 0, 3, 3, 0, 0, 2},
	{2, 0, 0, 3, 3, 0, 0, 2},
	{6, 0, 0, 0, 0, 0, 0, 6},
	{-30, -50, 0, 0, 0, 0, -50, -30},
	{100, -30, 6, 2, 2, 6, -30, 100},
}

// Evaluator scores boards with a static weight table.
type Evaluator struct {
	weights Weights
}

// NewEvaluator creates an evaluator using the given weights.
func NewEvaluator(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

var defaultEvaluator = NewEvaluator(DefaultWeights)

// DefaultEvaluator returns the evaluator using DefaultWeights.
func DefaultEvaluator() *Evaluator {
	return defaultEvaluator
}

// Weights returns a copy of the weight table.
func (e *Evaluator) Weights() Weights {
	return e.weights
}

// Score returns the weighted sum of side's discs minus the weighted sum of
// the opponent's discs.
func (e *Evaluator) Score(b Board, side Side) int {
	own := side.Cell()
	opp := side.Opponent().Cell()

	score := 0
	for row := range Size {
		for col := range Size {
			switch b.cells[row][col] {
			case own:
				score += e.weights[row][col]
			case opp:
				score -= e.weights[row][col]
			}
		}
	}
	return score
}

// MaxAbsScore returns an upper bound for the absolute value of Score.
func (e *Evaluator) MaxAbsScore() int {
	total := 0
	for row := range Size {
		for col := range Size {
			w := e.weights[row][col]
			if w < 0 {
				w = -w
			}
			total += w
		}
	}
	return total
}

// Score evaluates the board for side using DefaultWeights.
func (b Board) Score(side Side) int {
	return defaultEvaluator.Score(b, side)
}
