package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const gameOverTitle = "Game Over"

// Display - output side of the surface the controller is bound to.
type Display interface {
	RenderCell(row, col int, text string)
	ShowModal(title, message string)
	ClearAll()
	RenderTurn(player entity.Mark)
}

// GameController - owns the board and the turn, and is driven by cell activations.
// It is not safe for concurrent use; the display calls it from its event loop only.
type GameController struct {
	logger  *slog.Logger
	display Display

	board         entity.Board
	currentPlayer entity.Mark
	score         entity.Score
}

func NewGameController(logger *slog.Logger, display Display) *GameController {
	that := &GameController{
		logger:        logger.With("component", "tictactoe"),
		display:       display,
		currentPlayer: entity.PlayerX,
	}

	display.RenderTurn(that.currentPlayer)

	return that
}

// HandleCellActivated - places the current player's mark, reports a finished round and starts the next one.
// Activations on occupied cells, or after the round is decided, are ignored.
func (that *GameController) HandleCellActivated(row, col int) {
	log := that.logger.With("row", row, "col", col, "player", that.currentPlayer)

	if err := that.makeTurn(entity.Cell{Row: row, Col: col}); err != nil {
		log.Debug("activation ignored", "reason", err)
		return
	}

	that.display.RenderCell(row, col, string(that.currentPlayer))
	log.Debug("mark placed")

	outcome := that.ComputeOutcome()
	if outcome.IsOngoing() {
		that.currentPlayer = that.currentPlayer.Opponent()
		that.display.RenderTurn(that.currentPlayer)
		return
	}

	that.score.Record(outcome)
	that.logger.Info("round finished",
		"status", outcome.Status,
		"winner", outcome.Winner,
		"wins_x", that.score.WinsX,
		"wins_o", that.score.WinsO,
		"ties", that.score.Ties,
	)

	that.display.ShowModal(gameOverTitle, outcome.Message())
	that.Reset()
}

// makeTurn - checks that the round is still open and places the mark.
func (that *GameController) makeTurn(cell entity.Cell) error {
	if !that.ComputeOutcome().IsOngoing() {
		return apperror.ErrGameFinished
	}

	if err := that.board.Place(cell, that.currentPlayer); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

// ComputeOutcome - derives the outcome from the current board.
func (that *GameController) ComputeOutcome() entity.Outcome {
	return that.board.ComputeOutcome()
}

// Reset - empties the board and gives the first move to X.
func (that *GameController) Reset() {
	that.board = entity.Board{}
	that.currentPlayer = entity.PlayerX

	that.display.ClearAll()
	that.display.RenderTurn(that.currentPlayer)
}

func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) CurrentPlayer() entity.Mark {
	return that.currentPlayer
}

func (that *GameController) Score() entity.Score {
	return that.score
}
