package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/game"
)

// handle pairs a session with its own lock so that racing moves on one
// session ID serialize without blocking other sessions.
type handle struct {
	mu      sync.Mutex
	session *game.Session
}

// Registry owns all live sessions for the lifetime of the process. Sessions
// are never persisted and are lost on restart.
type Registry struct {
	logger *slog.Logger
	mover  game.Mover

	mu      sync.RWMutex
	handles map[string]*handle
}

// New builds a registry. The mover is the optional bot capability, resolved
// once at startup; pass nil when no bot is available and sessions will be
// created with bot mode forced off.
func New(logger *slog.Logger, mover game.Mover) *Registry {
	return &Registry{
		logger:  logger.With("component", "registry"),
		mover:   mover,
		handles: make(map[string]*handle),
	}
}

// Create allocates a session with a fresh ID and returns a copy of it.
func (that *Registry) Create(botMode bool) game.Session {
	if botMode && that.mover == nil {
		botMode = false
	}

	session := game.NewSession(uuid.NewString(), botMode)

	that.mu.Lock()
	that.handles[session.ID] = &handle{session: session}
	that.mu.Unlock()

	that.logger.Info("session created", "id", session.ID, "bot_mode", botMode)

	return *session
}

// View returns a copy of the session state.
func (that *Registry) View(id string) (game.Session, error) {
	h, err := that.handle(id)
	if err != nil {
		return game.Session{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return *h.session, nil
}

// Update runs fn under the per-session lock and returns a copy of the
// resulting state. The state after a failed fn is returned as well, since a
// rejected move mutates nothing.
func (that *Registry) Update(id string, fn func(session *game.Session) error) (game.Session, error) {
	h, err := that.handle(id)
	if err != nil {
		return game.Session{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err = fn(h.session); err != nil {
		return *h.session, err
	}

	return *h.session, nil
}

// Move applies a move to the session, letting the bot answer when the
// session runs in bot mode. The bot's cell is game.NoBotMove when no bot
// move happened.
func (that *Registry) Move(id string, cell int) (game.Session, int, error) {
	botCell := game.NoBotMove

	session, err := that.Update(id, func(session *game.Session) error {
		var applyErr error
		botCell, applyErr = session.ApplyMove(cell, that.mover)
		return applyErr
	})
	if err != nil {
		return session, game.NoBotMove, fmt.Errorf("failed to apply move: %w", err)
	}

	return session, botCell, nil
}

// Reset puts the session back to its starting state, keeping its ID and
// mode configuration.
func (that *Registry) Reset(id string) (game.Session, error) {
	session, err := that.Update(id, func(session *game.Session) error {
		session.Reset()
		return nil
	})
	if err != nil {
		return game.Session{}, err
	}

	that.logger.Info("session reset", "id", id)

	return session, nil
}

func (that *Registry) handle(id string) (*handle, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	h, ok := that.handles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return h, nil
}
