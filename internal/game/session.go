package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// NoBotMove is returned from ApplyMove when no bot move happened this call.
const NoBotMove = -1

// Mover selects the next cell for the given mark. It must only be asked for
// a move on a board with at least one empty cell.
type Mover interface {
	BestMove(board Board, mark string) int
}

// MoverFunc adapts a plain function to the Mover interface.
type MoverFunc func(board Board, mark string) int

func (that MoverFunc) BestMove(board Board, mark string) int {
	return that(board, mark)
}

// Session is one game addressed by its ID. It is not safe for concurrent
// use; callers serialize access per session.
type Session struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Turn      string `json:"current_player"`
	Winner    string `json:"winner,omitempty"`
	Draw      bool   `json:"is_draw"`
	GameOver  bool   `json:"game_over"`
	BotMode   bool   `json:"bot_mode"`
	HumanMark string `json:"human_mark"`
	BotMark   string `json:"bot_mark"`
}

func NewSession(id string, botMode bool) *Session {
	return &Session{
		ID:        id,
		Board:     NewBoard(),
		Turn:      PlayerX,
		BotMode:   botMode,
		HumanMark: PlayerX,
		BotMark:   PlayerO,
	}
}

// ApplyMove places the mark on turn at cell and settles the outcome. When
// the session runs in bot mode and the turn passes to the bot, mover is
// asked for a cell and that move is applied in the same call; the chosen
// cell is returned, NoBotMove otherwise. A rejected move leaves the board
// untouched.
func (that *Session) ApplyMove(cell int, mover Mover) (int, error) {
	if that.GameOver {
		return NoBotMove, apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return NoBotMove, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Board[cell] != EmptyCell {
		return NoBotMove, apperror.ErrCellOccupied
	}

	that.place(cell)

	if that.GameOver || !that.BotMode || that.Turn != that.BotMark || mover == nil {
		return NoBotMove, nil
	}

	botCell := mover.BestMove(that.Board, that.Turn)
	if botCell < 0 || botCell >= len(that.Board) || that.Board[botCell] != EmptyCell {
		return NoBotMove, fmt.Errorf("%w: cell %d", apperror.ErrBotMove, botCell)
	}

	that.place(botCell)

	return botCell, nil
}

// place sets the cell for the mark on turn, then either finishes the game
// or passes the turn.
func (that *Session) place(cell int) {
	that.Board[cell] = that.Turn

	if winner := that.Board.Winner(); winner != "" {
		that.Winner = winner
		that.GameOver = true
		return
	}

	if that.Board.IsDraw() {
		that.Draw = true
		that.GameOver = true
		return
	}

	that.Turn = OtherMark(that.Turn)
}

// Reset clears the board and outcome and hands the turn back to X. The
// session ID and the mode and mark configuration survive.
func (that *Session) Reset() {
	that.Board = NewBoard()
	that.Turn = PlayerX
	that.Winner = ""
	that.Draw = false
	that.GameOver = false
}
