package rest

import "github.com/rocketscienceinc/tictactoe/internal/game"

type newGameRequest struct {
	AIMode bool `json:"ai_mode"`
}

// moveRequest keeps Position a pointer so a missing field is told apart
// from a legitimate move to cell 0.
type moveRequest struct {
	Position *int `json:"position"`
}

type newGameResponse struct {
	GameID        string     `json:"game_id"`
	Board         game.Board `json:"board"`
	CurrentPlayer string     `json:"current_player"`
	AIMode        bool       `json:"ai_mode"`
}

type gameStateResponse struct {
	GameID        string     `json:"game_id"`
	Board         game.Board `json:"board"`
	CurrentPlayer string     `json:"current_player"`
	Winner        *string    `json:"winner"`
	IsDraw        bool       `json:"is_draw"`
	GameOver      bool       `json:"game_over"`
}

type moveResponse struct {
	Board         game.Board `json:"board"`
	CurrentPlayer string     `json:"current_player"`
	Winner        *string    `json:"winner"`
	IsDraw        bool       `json:"is_draw"`
	GameOver      bool       `json:"game_over"`
	AIMove        *int       `json:"ai_move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func optionalWinner(session game.Session) *string {
	if session.Winner == "" {
		return nil
	}
	return &session.Winner
}
