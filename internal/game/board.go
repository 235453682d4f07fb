package game

const (
	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = "-"
)

// WinCombos lists the 8 winning lines: rows top to bottom, columns left to
// right, then the two diagonals. Winner scans them in this order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid flattened row by row, cells 0-8.
type Board [9]string

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = EmptyCell
	}
	return board
}

// Winner returns the mark occupying the first fully matched line, or an
// empty string when no line is matched. A board with two winning lines is
// illegal under correct play but still resolves deterministically by combo
// order.
func (that Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return ""
}

// IsDraw reports whether every cell is taken and nobody won.
func (that Board) IsDraw() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return that.Winner() == ""
}

func OtherMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// MarkNumber maps X to player 1 and O to player 2, the numbering used by
// console prompts and the snapshot file.
func MarkNumber(mark string) int {
	if mark == PlayerX {
		return 1
	}
	return 2
}

func MarkForNumber(number int) string {
	if number == 1 {
		return PlayerX
	}
	return PlayerO
}
