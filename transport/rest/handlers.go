package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/game"
)

type sessionRegistry interface {
	Create(botMode bool) game.Session
	View(id string) (game.Session, error)
	Move(id string, cell int) (game.Session, int, error)
	Reset(id string) (game.Session, error)
}

type Handlers struct {
	logger   *slog.Logger
	registry sessionRegistry
}

func NewHandlers(logger *slog.Logger, registry sessionRegistry) *Handlers {
	return &Handlers{
		logger:   logger.With("component", "rest"),
		registry: registry,
	}
}

func (that *Handlers) RegisterRoutes(e *echo.Echo) {
	e.POST("/game/new", that.NewGame)
	e.GET("/game/:id", that.GetGame)
	e.POST("/game/:id/move", that.MakeMove)
	e.POST("/game/:id/reset", that.ResetGame)

	e.GET("/health", that.Health)
}

// NewGame creates a session.
// POST /game/new
func (that *Handlers) NewGame(c echo.Context) error {
	var req newGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	session := that.registry.Create(req.AIMode)

	return c.JSON(http.StatusOK, newGameResponse{
		GameID:        session.ID,
		Board:         session.Board,
		CurrentPlayer: session.Turn,
		AIMode:        session.BotMode,
	})
}

// GetGame returns the current session state.
// GET /game/:id
func (that *Handlers) GetGame(c echo.Context) error {
	session, err := that.registry.View(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
	}

	return c.JSON(http.StatusOK, gameStateResponse{
		GameID:        session.ID,
		Board:         session.Board,
		CurrentPlayer: session.Turn,
		Winner:        optionalWinner(session),
		IsDraw:        session.Draw,
		GameOver:      session.GameOver,
	})
}

// MakeMove applies a move, and the bot's answer when the session runs in
// bot mode.
// POST /game/:id/move
func (that *Handlers) MakeMove(c echo.Context) error {
	var req moveRequest
	if err := c.Bind(&req); err != nil || req.Position == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid position"})
	}

	session, botCell, err := that.registry.Move(c.Param("id"), *req.Position)

	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
	case errors.Is(err, apperror.ErrGameFinished):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "game is already over"})
	case errors.Is(err, apperror.ErrInvalidCell):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "position out of range"})
	case errors.Is(err, apperror.ErrCellOccupied):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "cell already taken"})
	default:
		that.logger.Error("failed to apply move", "id", c.Param("id"), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to apply move"})
	}

	resp := moveResponse{
		Board:         session.Board,
		CurrentPlayer: session.Turn,
		Winner:        optionalWinner(session),
		IsDraw:        session.Draw,
		GameOver:      session.GameOver,
	}
	if botCell != game.NoBotMove {
		resp.AIMove = &botCell
	}

	return c.JSON(http.StatusOK, resp)
}

// ResetGame starts the session over, keeping its ID and mode.
// POST /game/:id/reset
func (that *Handlers) ResetGame(c echo.Context) error {
	session, err := that.registry.Reset(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
	}

	return c.JSON(http.StatusOK, newGameResponse{
		GameID:        session.ID,
		Board:         session.Board,
		CurrentPlayer: session.Turn,
		AIMode:        session.BotMode,
	})
}

// Health reports liveness.
// GET /health
func (that *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
