package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/reversi"
)

// AnalysisRequest represents the payload for a move analysis request.
type AnalysisRequest struct {
	State string `json:"state"`
}

// Validate checks the request and returns the parsed game state.
func (r *AnalysisRequest) Validate() (*reversi.GameState, error) {
	state, err := ParseState(r.State)
	if err != nil {
		return nil, fmt.Errorf("invalid state: %w", err)
	}

	if state.GameOver {
		return nil, errors.New("game is already over")
	}

	return state, nil
}

// AnalysisResponse represents the result of a move analysis.
type AnalysisResponse struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
	Nodes int    `json:"nodes"`
	Depth int    `json:"depth"`
}

// NewAnalysisResponse converts a search result to a response payload.
func NewAnalysisResponse(result reversi.SearchResult) AnalysisResponse {
	return AnalysisResponse{
		Move:  result.Move.String(),
		Score: result.Value,
		Nodes: result.Nodes,
		Depth: result.Depth,
	}
}

// SaveGameRequest represents the payload for archiving a finished game.
type SaveGameRequest struct {
	Moves      []string `json:"moves"`
	Winner     string   `json:"winner"`
	BlackScore int      `json:"black_score"`
	WhiteScore int      `json:"white_score"`
}

// Validate replays the game from the starting position and checks that every
// move is legal and the reported result matches the final board.
func (r *SaveGameRequest) Validate() error {
	if r.Winner != "black" && r.Winner != "white" && r.Winner != "draw" {
		return fmt.Errorf("invalid winner: %q", r.Winner)
	}

	state := reversi.NewGameState()
	state.Start()

	for i, field := range r.Moves {
		move, err := reversi.ParseSquare(field)
		if err != nil {
			return fmt.Errorf("invalid move %d: %w", i, err)
		}

		if state.GameOver {
			return fmt.Errorf("move %d (%s) played after game end", i, field)
		}

		legal := false
		for _, candidate := range state.ValidMoves() {
			if candidate == move {
				legal = true
				break
			}
		}
		if !legal {
			return fmt.Errorf("illegal move %d: %s", i, field)
		}

		state.PlayMove(move)
	}

	if !state.GameOver {
		return errors.New("game is not finished")
	}

	blackScore := state.Score(reversi.PlayerBlack)
	whiteScore := state.Score(reversi.PlayerWhite)

	if blackScore != r.BlackScore || whiteScore != r.WhiteScore {
		return fmt.Errorf("score mismatch: board says %d-%d, payload says %d-%d",
			blackScore, whiteScore, r.BlackScore, r.WhiteScore)
	}

	var winner string
	switch {
	case blackScore > whiteScore:
		winner = "black"
	case whiteScore > blackScore:
		winner = "white"
	default:
		winner = "draw"
	}

	if winner != r.Winner {
		return fmt.Errorf("winner mismatch: board says %s, payload says %s", winner, r.Winner)
	}

	return nil
}

// Game represents an archived game.
type Game struct {
	ID         string         `json:"id"          db:"id"`
	Moves      pq.StringArray `json:"moves"       db:"moves"`
	Winner     string         `json:"winner"      db:"winner"`
	BlackScore int            `json:"black_score" db:"black_score"`
	WhiteScore int            `json:"white_score" db:"white_score"`
	CreatedAt  time.Time      `json:"created_at"  db:"created_at"`
}

// GameStats represents aggregate statistics over the game archive.
type GameStats struct {
	TotalGames int     `json:"total_games" db:"total_games"`
	BlackWins  int     `json:"black_wins"  db:"black_wins"`
	WhiteWins  int     `json:"white_wins"  db:"white_wins"`
	Draws      int     `json:"draws"       db:"draws"`
	AvgMargin  float64 `json:"avg_margin"  db:"avg_margin"`
}
