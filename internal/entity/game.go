package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

const BoardSize = 3

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusTie     Status = "tie"
)

// Cell - a position on the board, both coordinates in [0, BoardSize).
type Cell struct {
	Row int
	Col int
}

// WinLines - every row, every column and both diagonals.
var WinLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// IsPlayer - reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the mark of the other player.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Cell) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Outcome - game status derived from a board.
type Outcome struct {
	Status Status
	Winner Mark
}

func (that Outcome) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Message - text shown to the players when a round ends.
func (that Outcome) Message() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("Player %s wins!", that.Winner)
	case StatusTie:
		return "It's a tie!"
	default:
		return ""
	}
}

type Board [BoardSize][BoardSize]Mark

func (that *Board) At(cell Cell) Mark {
	return that[cell.Row][cell.Col]
}

// Place - puts the mark in an empty cell.
func (that *Board) Place(cell Cell, mark Mark) error {
	if !cell.IsValid() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, cell.Row, cell.Col)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that.At(cell) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that[cell.Row][cell.Col] = mark

	return nil
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, mark := range row {
			if mark == EmptyCell {
				return false
			}
		}
	}

	return true
}

// ComputeOutcome - a full board with three in a line is a win, not a tie.
func (that *Board) ComputeOutcome() Outcome {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != EmptyCell && a == b && b == c {
			return Outcome{Status: StatusWin, Winner: a}
		}
	}

	if that.IsFull() {
		return Outcome{Status: StatusTie}
	}

	return Outcome{Status: StatusOngoing}
}
