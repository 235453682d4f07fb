// Package snapshot stores one resumable console game as a plain text file:
// three comma-joined board rows of X, O and - tokens, then a line
// "Player Turn: N" with N 1 for X or 2 for O.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/game"
)

const turnPrefix = "player turn:"

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Save overwrites the file with the board and the mark on turn.
func (that *Store) Save(board game.Board, mark string) error {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.WriteString(strings.Join(board[row*3:row*3+3], ","))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Player Turn: %d\n", game.MarkNumber(mark))

	if err := os.WriteFile(that.path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Load reads the saved board and the mark on turn. A missing or malformed
// file means no resumable game exists, never an error.
func (that *Store) Load() (game.Board, string, bool) {
	raw, err := os.ReadFile(that.path)
	if err != nil {
		return game.Board{}, "", false
	}

	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 4 {
		return game.Board{}, "", false
	}

	board := game.NewBoard()
	for row := 0; row < 3; row++ {
		cells := strings.Split(lines[row], ",")
		if len(cells) != 3 {
			return game.Board{}, "", false
		}

		for col, cell := range cells {
			cell = strings.TrimSpace(cell)
			if cell != game.PlayerX && cell != game.PlayerO && cell != game.EmptyCell {
				return game.Board{}, "", false
			}
			board[row*3+col] = cell
		}
	}

	rest, ok := strings.CutPrefix(strings.ToLower(lines[3]), turnPrefix)
	if !ok {
		return game.Board{}, "", false
	}

	number, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || (number != 1 && number != 2) {
		return game.Board{}, "", false
	}

	return board, game.MarkForNumber(number), true
}

// Delete removes the file; a missing file is fine.
func (that *Store) Delete() error {
	if err := os.Remove(that.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}

	return nil
}
