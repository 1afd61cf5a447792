package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
)

// LegalMoves lists the legal moves of a side.
func LegalMoves(c *fiber.Ctx) error {
	var payload models.PositionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	board, side, err := payload.Parse()
	if err != nil {
		return badRequest(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.MovesResponse{
		Moves: models.NewMoveResponses(board.LegalMoves(side)),
	})
}

// ApplyMove plays a move and returns the resulting board.
func ApplyMove(c *fiber.Ctx) error {
	var payload models.ApplyPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	board, side, move, err := payload.Parse()
	if err != nil {
		return badRequest(c, err)
	}

	flipped := board.Flipped(move, side)

	if !board.Apply(move, side) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("illegal move %s for %s", move, side),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.ApplyResponse{
		Board:   board.String(),
		Flipped: models.NewMoveResponses(flipped),
	})
}

// Score returns the static evaluation of a board for a side.
func Score(c *fiber.Ctx) error {
	var payload models.PositionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	board, side, err := payload.Parse()
	if err != nil {
		return badRequest(c, err)
	}

	black, white := board.Tally()

	return c.Status(fiber.StatusOK).JSON(models.ScoreResponse{
		Score:    board.Score(side),
		Black:    black,
		White:    white,
		Terminal: board.IsTerminal(),
	})
}
