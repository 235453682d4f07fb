// Package console runs the interactive terminal game: two players on one
// keyboard with save and resume, or a single player against the bot.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe/internal/game"
	"github.com/rocketscienceinc/tictactoe/internal/snapshot"
)

type Runner struct {
	in    *bufio.Scanner
	out   io.Writer
	store *snapshot.Store
	mover game.Mover
}

// New builds a runner. A nil mover means the bot is unavailable and mode 2
// falls back to two players.
func New(in io.Reader, out io.Writer, store *snapshot.Store, mover game.Mover) *Runner {
	return &Runner{
		in:    bufio.NewScanner(in),
		out:   out,
		store: store,
		mover: mover,
	}
}

// Run drives one game start to finish. It returns nil on every deliberate
// exit, including end of input.
func (that *Runner) Run() error {
	fmt.Fprintln(that.out, "Welcome to Tic Tac Toe!")
	fmt.Fprintln(that.out, "1) Two Players")
	fmt.Fprintln(that.out, "2) Play vs AI")

	mode, err := that.prompt("Choose mode (1-2): ")
	if err != nil {
		return that.goodbye()
	}

	vsBot := mode == "2"
	if vsBot && that.mover == nil {
		fmt.Fprintln(that.out, color.YellowString("AI mode is unavailable."))
		fmt.Fprintln(that.out, "Falling back to Two Players mode.")
		fmt.Fprintln(that.out)
		vsBot = false
	}

	if vsBot {
		return that.playBot()
	}

	return that.playTwoPlayers()
}

func (that *Runner) playTwoPlayers() error {
	fmt.Fprintln(that.out, "Player 1: X")
	fmt.Fprintln(that.out, "Player 2: O")
	fmt.Fprintln(that.out)

	board, turn, resumed := that.promptResume()
	if !resumed {
		board, turn = game.NewBoard(), game.PlayerX
	}

	for {
		that.render(board)

		input, err := that.prompt(fmt.Sprintf("\nPlayer %d, enter your move (1-9) or 's' to save and exit: ", game.MarkNumber(turn)))
		if err != nil {
			return that.goodbye()
		}

		if input == "s" || input == "save" {
			if err = that.store.Save(board, turn); err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}
			fmt.Fprintln(that.out, color.GreenString("Game state saved!"))
			return nil
		}

		cell, ok := parseCell(input)
		if !ok {
			fmt.Fprintln(that.out, "Please enter a number between 1 and 9, or 's' to save.")
			continue
		}

		if board[cell] != game.EmptyCell {
			fmt.Fprintln(that.out, "That cell is already taken. Choose another one.")
			continue
		}

		board[cell] = turn

		if done := that.announceOutcome(board, func(winner string) string {
			return fmt.Sprintf("Player %d (%s) wins! Congratulations!", game.MarkNumber(winner), winner)
		}); done {
			return that.store.Delete()
		}

		turn = game.OtherMark(turn)
	}
}

func (that *Runner) playBot() error {
	fmt.Fprintln(that.out, "You: X")
	fmt.Fprintln(that.out, "AI: O")
	fmt.Fprintln(that.out)

	board, turn := game.NewBoard(), game.PlayerX

	for {
		if turn == game.PlayerX {
			that.render(board)

			input, err := that.prompt("\nEnter your move (1-9): ")
			if err != nil {
				return that.goodbye()
			}

			cell, ok := parseCell(input)
			if !ok {
				fmt.Fprintln(that.out, "Please enter a number between 1 and 9.")
				continue
			}

			if board[cell] != game.EmptyCell {
				fmt.Fprintln(that.out, "That cell is already taken. Choose another one.")
				continue
			}

			board[cell] = turn
		} else {
			cell := that.mover.BestMove(board, turn)
			fmt.Fprintf(that.out, "\nAI plays %d.\n", cell+1)
			board[cell] = turn
		}

		if done := that.announceOutcome(board, func(winner string) string {
			if winner == game.PlayerX {
				return "You win! Congratulations!"
			}
			return "The AI wins!"
		}); done {
			return nil
		}

		turn = game.OtherMark(turn)
	}
}

// announceOutcome renders the final board and reports a win or draw.
func (that *Runner) announceOutcome(board game.Board, winMessage func(winner string) string) bool {
	if winner := board.Winner(); winner != "" {
		that.render(board)
		fmt.Fprintf(that.out, "\n%s\n", color.GreenString(winMessage(winner)))
		return true
	}

	if board.IsDraw() {
		that.render(board)
		fmt.Fprintln(that.out, "\nIt's a draw!")
		return true
	}

	return false
}

// promptResume offers to resume a saved game. An invalid snapshot or an
// explicit no discards it silently.
func (that *Runner) promptResume() (game.Board, string, bool) {
	board, turn, ok := that.store.Load()
	if !ok {
		return game.Board{}, "", false
	}

	for {
		choice, err := that.prompt("A saved game was found. Resume it? (y/n): ")
		if err != nil {
			return game.Board{}, "", false
		}

		switch choice {
		case "y", "yes":
			return board, turn, true
		case "n", "no":
			return game.Board{}, "", false
		}

		fmt.Fprintln(that.out, "Please enter 'y' or 'n'.")
	}
}

// render prints the board; empty cells show their 1-based position as a
// placement hint.
func (that *Runner) render(board game.Board) {
	cell := func(i int) string {
		switch board[i] {
		case game.PlayerX:
			return color.CyanString(game.PlayerX)
		case game.PlayerO:
			return color.YellowString(game.PlayerO)
		default:
			return strconv.Itoa(i + 1)
		}
	}

	fmt.Fprintln(that.out, "Current Board:")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(that.out, " %s | %s | %s\n", cell(row*3), cell(row*3+1), cell(row*3+2))
		if row < 2 {
			fmt.Fprintln(that.out, "---+---+---")
		}
	}
}

func (that *Runner) prompt(question string) (string, error) {
	fmt.Fprint(that.out, question)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.ToLower(strings.TrimSpace(that.in.Text())), nil
}

func (that *Runner) goodbye() error {
	fmt.Fprintln(that.out, "\nExiting. Goodbye!")
	return nil
}

func parseCell(input string) (int, bool) {
	number, err := strconv.Atoi(input)
	if err != nil || number < 1 || number > 9 {
		return 0, false
	}

	return number - 1, true
}
