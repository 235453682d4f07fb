package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe/internal/game"
)

// Engine picks moves by exhaustive minimax over the 9-cell board, so it
// always returns a legal empty cell and never loses a winnable position.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (that *Engine) BestMove(board game.Board, mark string) int {
	bestCell := game.NoBotMove
	bestScore := math.MinInt

	for cell := range board {
		if board[cell] != game.EmptyCell {
			continue
		}

		board[cell] = mark
		score := -search(board, game.OtherMark(mark), 1)
		board[cell] = game.EmptyCell

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell
}

// search scores the position for the side to move. Wins nearer the root
// score higher, so the engine finishes games it can win instead of
// shuffling.
func search(board game.Board, mark string, depth int) int {
	if winner := board.Winner(); winner != "" {
		// the previous mover just won
		return depth - 10
	}

	if board.IsDraw() {
		return 0
	}

	best := math.MinInt
	for cell := range board {
		if board[cell] != game.EmptyCell {
			continue
		}

		board[cell] = mark
		if score := -search(board, game.OtherMark(mark), depth+1); score > best {
			best = score
		}
		board[cell] = game.EmptyCell
	}

	return best
}
