package models

import (
	"errors"
	"fmt"

	"github.com/lk16/reversi/internal/othello"
)

// PositionPayload identifies a board and the side the request is about.
type PositionPayload struct {
	Board string `json:"board"`
	Side  string `json:"side"`
}

// Parse validates and converts the payload.
func (p *PositionPayload) Parse() (othello.Board, othello.Side, error) {
	board, err := othello.NewBoardFromString(p.Board)
	if err != nil {
		return othello.Board{}, 0, err
	}

	side, err := othello.ParseSide(p.Side)
	if err != nil {
		return othello.Board{}, 0, err
	}

	return board, side, nil
}

// ApplyPayload asks to play a move on a board.
type ApplyPayload struct {
	PositionPayload
	Move *othello.Move `json:"move"`
}

// Parse validates and converts the payload.
func (p *ApplyPayload) Parse() (othello.Board, othello.Side, othello.Move, error) {
	board, side, err := p.PositionPayload.Parse()
	if err != nil {
		return othello.Board{}, 0, othello.Move{}, err
	}

	if p.Move == nil {
		return othello.Board{}, 0, othello.Move{}, errors.New("move is missing")
	}

	if !p.Move.Valid() {
		return othello.Board{}, 0, othello.Move{}, fmt.Errorf("move %s is off the board", p.Move)
	}

	return board, side, *p.Move, nil
}

// BestMovePayload asks for a search to the given depth.
type BestMovePayload struct {
	PositionPayload
	Depth int `json:"depth"`
}

// Validate checks the depth against the configured maximum.
func (p *BestMovePayload) Validate(maxDepth int) error {
	if p.Depth < 0 || p.Depth > maxDepth {
		return fmt.Errorf("depth must be between 0 and %d", maxDepth)
	}
	return nil
}

// MoveResponse is a move with its algebraic notation.
type MoveResponse struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Field string `json:"field"`
}

// NewMoveResponse converts a move.
func NewMoveResponse(m othello.Move) MoveResponse {
	return MoveResponse{
		Row:   m.Row,
		Col:   m.Col,
		Field: m.Field(),
	}
}

// NewMoveResponses converts a list of moves, never returning nil.
func NewMoveResponses(moves []othello.Move) []MoveResponse {
	responses := make([]MoveResponse, len(moves))
	for i, m := range moves {
		responses[i] = NewMoveResponse(m)
	}
	return responses
}

// MovesResponse lists the legal moves of a side.
type MovesResponse struct {
	Moves []MoveResponse `json:"moves"`
}

// ApplyResponse contains the board after a move.
type ApplyResponse struct {
	Board   string         `json:"board"`
	Flipped []MoveResponse `json:"flipped"`
}

// BestMoveResponse is the result of a search. Move and Score are null when
// the side has no legal move.
type BestMoveResponse struct {
	ID     string        `json:"id"`
	Move   *MoveResponse `json:"move"`
	Score  *int          `json:"score"`
	Depth  int           `json:"depth"`
	Nodes  uint64        `json:"nodes"`
	Cached bool          `json:"cached"`
}

// ScoreResponse contains the static evaluation and disc counts of a board.
type ScoreResponse struct {
	Score    int  `json:"score"`
	Black    int  `json:"black"`
	White    int  `json:"white"`
	Terminal bool `json:"terminal"`
}

// VersionResponse contains the git commit of the running server.
type VersionResponse struct {
	Commit string `json:"commit"`
}
