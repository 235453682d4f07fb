package registry

import (
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/game"
)

func newTestRegistry(mover game.Mover) *Registry {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(logger, mover)
}

func TestRegistry_Create(t *testing.T) {
	t.Run("Creates sessions with unique IDs", func(t *testing.T) {
		// Given: an empty registry
		reg := newTestRegistry(nil)

		// When: creating two sessions
		first := reg.Create(false)
		second := reg.Create(false)

		// Then: both exist with distinct IDs and default state
		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, game.PlayerX, first.Turn)
		assert.Equal(t, game.NewBoard(), first.Board)
	})

	t.Run("Forces bot mode off when no mover is wired", func(t *testing.T) {
		// Given: a registry without a bot
		reg := newTestRegistry(nil)

		// When: requesting a bot-mode session
		session := reg.Create(true)

		// Then: the session is created with the flag off instead of failing
		assert.False(t, session.BotMode)
	})

	t.Run("Keeps bot mode on when a mover is wired", func(t *testing.T) {
		// Given: a registry with a bot
		mover := game.MoverFunc(func(board game.Board, _ string) int { return 0 })
		reg := newTestRegistry(mover)

		// When: requesting a bot-mode session
		session := reg.Create(true)

		// Then: the flag sticks
		assert.True(t, session.BotMode)
	})
}

func TestRegistry_View(t *testing.T) {
	t.Run("Returns the session state", func(t *testing.T) {
		// Given: a registry with one session
		reg := newTestRegistry(nil)
		created := reg.Create(false)

		// When: viewing it by ID
		session, err := reg.View(created.ID)

		// Then: the state matches
		require.NoError(t, err)
		assert.Equal(t, created, session)
	})

	t.Run("Returns ErrSessionNotFound for an unknown ID", func(t *testing.T) {
		// Given: an empty registry
		reg := newTestRegistry(nil)

		// When: viewing an unknown ID
		_, err := reg.View("missing")

		// Then: the lookup fails with ErrSessionNotFound
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestRegistry_Move(t *testing.T) {
	t.Run("Applies a move and returns the new state", func(t *testing.T) {
		// Given: a registry with one session
		reg := newTestRegistry(nil)
		created := reg.Create(false)

		// When: X moves to cell 0
		session, botCell, err := reg.Move(created.ID, 0)

		// Then: the cell is taken and the turn passed
		require.NoError(t, err)
		assert.Equal(t, game.NoBotMove, botCell)
		assert.Equal(t, game.PlayerX, session.Board[0])
		assert.Equal(t, game.PlayerO, session.Turn)
	})

	t.Run("Surfaces move rejections without mutation", func(t *testing.T) {
		// Given: a session where cell 0 is taken
		reg := newTestRegistry(nil)
		created := reg.Create(false)
		_, _, err := reg.Move(created.ID, 0)
		require.NoError(t, err)

		// When: moving to the same cell again
		session, _, err := reg.Move(created.ID, 0)

		// Then: the move is rejected and the stored state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, game.PlayerX, session.Board[0])
		assert.Equal(t, game.PlayerO, session.Turn)
	})

	t.Run("Returns ErrSessionNotFound for an unknown ID", func(t *testing.T) {
		// Given: an empty registry
		reg := newTestRegistry(nil)

		// When: moving in an unknown session
		_, _, err := reg.Move("missing", 0)

		// Then: the lookup fails
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Hands bot-mode moves to the mover", func(t *testing.T) {
		// Given: a registry whose bot takes the first empty cell
		mover := game.MoverFunc(func(board game.Board, _ string) int {
			for i := range board {
				if board[i] == game.EmptyCell {
					return i
				}
			}
			return game.NoBotMove
		})
		reg := newTestRegistry(mover)
		created := reg.Create(true)

		// When: the human moves to cell 4
		session, botCell, err := reg.Move(created.ID, 4)

		// Then: the bot answered cell 0 within the same call
		require.NoError(t, err)
		assert.Equal(t, 0, botCell)
		assert.Equal(t, game.PlayerO, session.Board[0])
		assert.Equal(t, game.PlayerX, session.Turn)
	})

	t.Run("Serializes racing moves on one session", func(t *testing.T) {
		// Given: a registry with one session and many racing writers
		reg := newTestRegistry(nil)
		created := reg.Create(false)

		var wg sync.WaitGroup
		accepted := make([]bool, 9)

		// When: nine goroutines move to distinct cells at once
		for cell := 0; cell < 9; cell++ {
			wg.Add(1)
			go func(cell int) {
				defer wg.Done()
				if _, _, err := reg.Move(created.ID, cell); err == nil {
					accepted[cell] = true
				} else if !errors.Is(err, apperror.ErrGameFinished) {
					t.Errorf("unexpected move error: %v", err)
				}
			}(cell)
		}
		wg.Wait()

		// Then: no update is lost, every accepted move is on the board
		session, err := reg.View(created.ID)
		require.NoError(t, err)

		taken := 0
		for cell := range session.Board {
			if session.Board[cell] != game.EmptyCell {
				taken++
				assert.True(t, accepted[cell], "cell %d is taken but its move was rejected", cell)
			} else {
				assert.False(t, accepted[cell], "cell %d was accepted but is empty", cell)
			}
		}

		acceptedCount := 0
		for _, ok := range accepted {
			if ok {
				acceptedCount++
			}
		}
		assert.Equal(t, acceptedCount, taken)
	})
}

func TestRegistry_Reset(t *testing.T) {
	t.Run("Resets board and outcome, keeps ID and mode", func(t *testing.T) {
		// Given: a bot-mode session with a move applied
		mover := game.MoverFunc(func(board game.Board, _ string) int {
			for i := range board {
				if board[i] == game.EmptyCell {
					return i
				}
			}
			return game.NoBotMove
		})
		reg := newTestRegistry(mover)
		created := reg.Create(true)
		_, _, err := reg.Move(created.ID, 4)
		require.NoError(t, err)

		// When: resetting the session
		session, err := reg.Reset(created.ID)

		// Then: the board is empty, X opens, the ID and mode survive
		require.NoError(t, err)
		assert.Equal(t, game.NewBoard(), session.Board)
		assert.Equal(t, game.PlayerX, session.Turn)
		assert.Equal(t, created.ID, session.ID)
		assert.True(t, session.BotMode)
	})

	t.Run("Returns ErrSessionNotFound for an unknown ID", func(t *testing.T) {
		// Given: an empty registry
		reg := newTestRegistry(nil)

		// When: resetting an unknown session
		_, err := reg.Reset("missing")

		// Then: the lookup fails
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
