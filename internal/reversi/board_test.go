package reversi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	state := NewGameState()

	require.True(t, state.GameOver)

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			require.Equal(t, Empty, state.Board[y][x])
		}
	}
}

func TestGameState_Start(t *testing.T) {
	state := NewGameState()
	state.Start()

	require.False(t, state.GameOver)
	require.Equal(t, PlayerBlack, state.CurrentPlayer)

	require.Equal(t, White, state.Piece(Square{X: 3, Y: 3}))
	require.Equal(t, Black, state.Piece(Square{X: 4, Y: 3}))
	require.Equal(t, Black, state.Piece(Square{X: 3, Y: 4}))
	require.Equal(t, White, state.Piece(Square{X: 4, Y: 4}))

	require.Equal(t, 4, state.CountDiscs())
	require.Equal(t, 2, state.Score(PlayerBlack))
	require.Equal(t, 2, state.Score(PlayerWhite))
}

func TestGameState_PieceSetPiece(t *testing.T) {
	state := NewGameState()

	square := Square{X: 5, Y: 2}
	require.Equal(t, Empty, state.Piece(square))

	state.SetPiece(square, Black)
	require.Equal(t, Black, state.Piece(square))

	state.SetPiece(square, White)
	require.Equal(t, White, state.Piece(square))
}

func TestGameState_Clone(t *testing.T) {
	state := NewGameState()
	state.Start()

	clone := state.Clone()
	require.Equal(t, state.Board, clone.Board)
	require.Equal(t, state.CurrentPlayer, clone.CurrentPlayer)

	// Mutating the clone must not affect the original.
	clone.SetPiece(Square{X: 0, Y: 0}, Black)
	clone.CurrentPlayer = PlayerWhite

	require.Equal(t, Empty, state.Piece(Square{X: 0, Y: 0}))
	require.Equal(t, PlayerBlack, state.CurrentPlayer)
}

func TestGameState_Timer(t *testing.T) {
	state := NewGameState()
	state.Start()

	time.Sleep(time.Millisecond)

	// The running turn is charged to the side to move.
	require.Positive(t, state.Timer(PlayerBlack))
	require.Zero(t, state.Timer(PlayerWhite))

	state.PlayMove(Square{X: 2, Y: 3})

	// After moving, Black's time is accumulated.
	require.Positive(t, state.Timer(PlayerBlack))
}

func TestPlayer_Opponent(t *testing.T) {
	require.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	require.Equal(t, PlayerBlack, PlayerWhite.Opponent())
}

func TestPlayer_Piece(t *testing.T) {
	require.Equal(t, Black, PlayerBlack.Piece())
	require.Equal(t, White, PlayerWhite.Piece())
}

func TestSquare_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		square Square
		want   bool
	}{
		{name: "top left", square: Square{X: 0, Y: 0}, want: true},
		{name: "bottom right", square: Square{X: 7, Y: 7}, want: true},
		{name: "center", square: Square{X: 3, Y: 4}, want: true},
		{name: "negative x", square: Square{X: -1, Y: 0}, want: false},
		{name: "negative y", square: Square{X: 0, Y: -1}, want: false},
		{name: "x too large", square: Square{X: 8, Y: 0}, want: false},
		{name: "y too large", square: Square{X: 0, Y: 8}, want: false},
		{name: "invalid sentinel", square: InvalidSquare, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, test.square.IsValid())
		})
	}
}

func TestSquare_String(t *testing.T) {
	require.Equal(t, "a1", Square{X: 0, Y: 0}.String())
	require.Equal(t, "h8", Square{X: 7, Y: 7}.String())
	require.Equal(t, "c4", Square{X: 2, Y: 3}.String())
	require.Equal(t, "--", InvalidSquare.String())
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		field   string
		want    Square
		wantErr bool
	}{
		{field: "a1", want: Square{X: 0, Y: 0}},
		{field: "h8", want: Square{X: 7, Y: 7}},
		{field: "D3", want: Square{X: 3, Y: 2}},
		{field: "--", want: InvalidSquare},
		{field: "", wantErr: true},
		{field: "a", wantErr: true},
		{field: "i1", wantErr: true},
		{field: "a9", wantErr: true},
		{field: "a10", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			square, err := ParseSquare(test.field)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, square)
		})
	}
}

func TestGameState_ASCIIArtLines(t *testing.T) {
	state := NewGameState()
	state.Start()

	lines := state.ASCIIArtLines()

	require.Len(t, lines, BoardSize+2)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-+", lines[0])
	require.Equal(t, "+-----------------+", lines[BoardSize+1])
}
