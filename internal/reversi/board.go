package reversi

import (
	"fmt"
	"strings"
	"time"
)

// BoardSize is the width and height of the board.
const BoardSize = 8

// Piece is the content of a single board cell.
type Piece uint8

const (
	Empty Piece = iota
	White
	Black
)

// Player identifies a side.
type Player uint8

const (
	PlayerWhite Player = 0
	PlayerBlack Player = 1
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	return PlayerWhite + PlayerBlack - p
}

// Piece returns the piece color the side plays with.
func (p Player) Piece() Piece {
	if p == PlayerWhite {
		return White
	}
	return Black
}

// String returns the lowercase name of the side.
func (p Player) String() string {
	if p == PlayerWhite {
		return "white"
	}
	return "black"
}

// Square is an (x, y) board coordinate. (0, 0) is the top-left corner.
type Square struct {
	X int
	Y int
}

// InvalidSquare is the sentinel returned when no move is available.
var InvalidSquare = Square{X: -1, Y: -1}

// IsValid checks whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.X >= 0 && s.X < BoardSize && s.Y >= 0 && s.Y < BoardSize
}

// String returns the field notation of the square, like "d3".
// Off-board squares render as "--".
func (s Square) String() string {
	if !s.IsValid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+s.X, s.Y+1)
}

// ParseSquare converts field notation (like "d3") to a Square.
// "--" parses to InvalidSquare.
func ParseSquare(field string) (Square, error) {
	if len(field) != 2 {
		return InvalidSquare, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if field == "--" {
		return InvalidSquare, nil
	}

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return InvalidSquare, fmt.Errorf("invalid field: %q", field)
	}

	return Square{X: int(field[0] - 'a'), Y: int(field[1] - '1')}, nil
}

// GameState holds a board, the side to move and whether the game is over.
// The board is indexed Board[y][x].
type GameState struct {
	Board         [BoardSize][BoardSize]Piece
	CurrentPlayer Player
	GameOver      bool

	playerTime [2]time.Duration
	turnTimer  time.Time
}

// NewGameState creates an empty game state. The game is over until Start is called.
func NewGameState() *GameState {
	state := &GameState{}
	state.Init()
	return state
}

// Init resets the state to an empty, finished board.
func (s *GameState) Init() {
	*s = GameState{GameOver: true}
}

// Start resets the state to the standard starting position with Black to move.
func (s *GameState) Start() {
	*s = GameState{
		CurrentPlayer: PlayerBlack,
		turnTimer:     time.Now(),
	}

	half := BoardSize / 2
	s.Board[half-1][half-1] = White
	s.Board[half-1][half] = Black
	s.Board[half][half] = White
	s.Board[half][half-1] = Black
}

// Clone returns an independent copy of the state.
func (s *GameState) Clone() *GameState {
	clone := *s
	return &clone
}

// Piece returns the piece at the given square.
// The square must be on the board.
func (s *GameState) Piece(square Square) Piece {
	return s.Board[square.Y][square.X]
}

// SetPiece places a piece at the given square.
// The square must be on the board.
func (s *GameState) SetPiece(square Square, piece Piece) {
	s.Board[square.Y][square.X] = piece
}

// Score returns the number of discs the given side has on the board.
func (s *GameState) Score(player Player) int {
	piece := player.Piece()

	score := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if s.Board[y][x] == piece {
				score++
			}
		}
	}
	return score
}

// CountDiscs returns the total number of discs on the board.
func (s *GameState) CountDiscs() int {
	count := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if s.Board[y][x] != Empty {
				count++
			}
		}
	}
	return count
}

// Timer returns the total time the given side has spent on its moves.
func (s *GameState) Timer(player Player) time.Duration {
	total := s.playerTime[player]
	if !s.GameOver && player == s.CurrentPlayer && !s.turnTimer.IsZero() {
		total += time.Since(s.turnTimer)
	}
	return total
}

// ASCIIArtLines returns the ascii art lines for the board.
func (s *GameState) ASCIIArtLines() []string {
	moves := make(map[Square]bool)
	for _, move := range s.ValidMoves() {
		moves[move] = true
	}

	lines := make([]string, BoardSize+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := 0; y < BoardSize; y++ {
		line := fmt.Sprintf("%d ", y+1)

		for x := 0; x < BoardSize; x++ {
			switch {
			case s.Board[y][x] == White:
				line += "○ "
			case s.Board[y][x] == Black:
				line += "● "
			case moves[Square{X: x, Y: y}]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[BoardSize+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (s *GameState) Print() {
	for _, line := range s.ASCIIArtLines() {
		fmt.Println(line)
	}
}
