package models

import (
	"fmt"
	"strings"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/reversi"
)

// stateStringLength is 64 board characters plus a two character turn suffix.
const stateStringLength = 66

// FormatState serializes a game state as 64 board characters ('.', 'b', 'w')
// in row-major order followed by a "-b" or "-w" turn suffix.
func FormatState(state *reversi.GameState) string {
	var sb strings.Builder
	sb.Grow(stateStringLength)

	for y := 0; y < reversi.BoardSize; y++ {
		for x := 0; x < reversi.BoardSize; x++ {
			switch state.Board[y][x] {
			case reversi.Black:
				sb.WriteByte('b')
			case reversi.White:
				sb.WriteByte('w')
			default:
				sb.WriteByte('.')
			}
		}
	}

	if state.CurrentPlayer == reversi.PlayerWhite {
		sb.WriteString("-w")
	} else {
		sb.WriteString("-b")
	}

	return sb.String()
}

// ParseState parses a state string produced by FormatState.
func ParseState(s string) (*reversi.GameState, error) {
	if len(s) != stateStringLength {
		return nil, fmt.Errorf("state string must be %d characters long, got %d", stateStringLength, len(s))
	}

	state := reversi.NewGameState()

	for i, c := range []byte(s[:reversi.BoardSize*reversi.BoardSize]) {
		square := reversi.Square{X: i % reversi.BoardSize, Y: i / reversi.BoardSize}

		switch c {
		case 'b':
			state.SetPiece(square, reversi.Black)
		case 'w':
			state.SetPiece(square, reversi.White)
		case '.':
		default:
			return nil, fmt.Errorf("invalid board character %q at offset %d", c, i)
		}
	}

	switch s[64:] {
	case "-b":
		state.CurrentPlayer = reversi.PlayerBlack
	case "-w":
		state.CurrentPlayer = reversi.PlayerWhite
	default:
		return nil, fmt.Errorf("invalid turn suffix: %q", s[64:])
	}

	// The state is over only when neither side can move.
	if len(state.ValidMoves()) > 0 {
		state.GameOver = false
	} else {
		passed := state.Clone()
		passed.CurrentPlayer = passed.CurrentPlayer.Opponent()
		state.GameOver = len(passed.ValidMoves()) == 0
	}

	return state, nil
}
