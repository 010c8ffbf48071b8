package reversi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// plainMinimax is an unpruned, unordered reference search used to check that
// alpha-beta pruning changes efficiency but never the computed value.
func plainMinimax(s *GameState, aiPlayer Player, depth int, maximizing bool) int {
	if depth == 0 || s.GameOver {
		return Evaluate(s, aiPlayer)
	}

	moves := s.ValidMoves()

	if len(moves) == 0 {
		passed := s.Clone()
		passed.CurrentPlayer = passed.CurrentPlayer.Opponent()
		return plainMinimax(passed, aiPlayer, depth-1, !maximizing)
	}

	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}

	for _, move := range moves {
		child := s.Clone()
		child.PlayMove(move)

		value := plainMinimax(child, aiPlayer, depth-1, !maximizing)

		if maximizing && value > best {
			best = value
		}
		if !maximizing && value < best {
			best = value
		}
	}

	return best
}

func TestSelectBestMove_NoMoves(t *testing.T) {
	// Black cannot capture anything, White can: Black must get the sentinel.
	state := NewGameState()
	state.SetPiece(Square{X: 0, Y: 0}, White)
	state.SetPiece(Square{X: 1, Y: 0}, Black)
	state.CurrentPlayer = PlayerBlack
	state.GameOver = false

	require.Empty(t, state.ValidMoves())
	require.NotEmpty(t, state.Clone().validMovesFor(PlayerWhite))

	require.Equal(t, InvalidSquare, SelectBestMove(state))
}

func TestSearch_ForcedMove(t *testing.T) {
	// White's only move is c1. It must be returned without searching.
	state := NewGameState()
	state.SetPiece(Square{X: 0, Y: 0}, White)
	state.SetPiece(Square{X: 1, Y: 0}, Black)
	state.CurrentPlayer = PlayerWhite
	state.GameOver = false

	require.Len(t, state.ValidMoves(), 1)

	result := Search(state)

	require.Equal(t, Square{X: 2, Y: 0}, result.Move)
	require.Equal(t, 0, result.Nodes)
	require.Equal(t, 0, result.Value)
	require.Equal(t, 0, result.Depth)
}

func TestMinimax_NodeBudgetShortCircuits(t *testing.T) {
	state := NewGameState()
	state.Start()

	// With the budget already spent, any further node becomes a leaf.
	sr := &searcher{aiPlayer: PlayerBlack, nodes: maxNodes}
	value := sr.minimax(state, 5, math.MinInt, math.MaxInt, true)

	require.Equal(t, Evaluate(state, PlayerBlack), value)
	require.Equal(t, maxNodes+1, sr.nodes)
}

func TestSearch_ReturnsLegalMove(t *testing.T) {
	state := NewGameState()
	state.Start()

	result := Search(state)

	require.Contains(t, state.ValidMoves(), result.Move)
	require.Positive(t, result.Nodes)
	require.Equal(t, openingDepth, result.Depth)
}

func TestSearch_DoesNotMutateState(t *testing.T) {
	state := NewGameState()
	state.Start()

	before := state.Clone()
	Search(state)

	require.Equal(t, before.Board, state.Board)
	require.Equal(t, before.CurrentPlayer, state.CurrentPlayer)
	require.Equal(t, before.GameOver, state.GameOver)
}

func TestSearch_MatchesPlainMinimax(t *testing.T) {
	// With the node budget out of reach, pruning and move ordering must not
	// change the root value computed by a full minimax at the same depth.
	states := []*GameState{}

	start := NewGameState()
	start.Start()
	states = append(states, start)

	after := start.Clone()
	after.PlayMove(Square{X: 2, Y: 3})
	after.PlayMove(Square{X: 2, Y: 2})
	states = append(states, after)

	for _, state := range states {
		result := Search(state)

		moves := state.ValidMoves()
		require.Greater(t, len(moves), 1)

		want := math.MinInt
		for _, move := range moves {
			child := state.Clone()
			child.PlayMove(move)

			value := plainMinimax(child, state.CurrentPlayer, result.Depth-1, false)
			if value > want {
				want = value
			}
		}

		require.Equal(t, want, result.Value)
	}
}

func TestMinimax_PassConsumesPly(t *testing.T) {
	// Black has no move but the game is not over: the search must pass and
	// keep going instead of treating the position as terminal.
	state := NewGameState()
	state.SetPiece(Square{X: 0, Y: 0}, White)
	state.SetPiece(Square{X: 1, Y: 0}, Black)
	state.CurrentPlayer = PlayerBlack
	state.GameOver = false

	sr := &searcher{aiPlayer: PlayerBlack}
	value := sr.minimax(state, 3, math.MinInt, math.MaxInt, true)

	// The pass node and White's reply are both visited.
	require.Greater(t, sr.nodes, 1)

	// White's forced reply captures the lone black disc and ends the game.
	final := state.Clone()
	final.CurrentPlayer = PlayerWhite
	final.PlayMove(Square{X: 2, Y: 0})
	require.True(t, final.GameOver)
	require.Equal(t, Evaluate(final, PlayerBlack), value)
}

func TestSearchDepth(t *testing.T) {
	tests := []struct {
		name  string
		discs int
		want  int
	}{
		{name: "opening", discs: 4, want: openingDepth},
		{name: "opening boundary", discs: 20, want: openingDepth},
		{name: "midgame", discs: 21, want: midgameDepth},
		{name: "midgame upper bound", discs: 44, want: midgameDepth},
		{name: "endgame", discs: 45, want: endgameDepth},
		{name: "full board", discs: 64, want: endgameDepth},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, searchDepth(test.discs))
		})
	}
}

func TestSearch_PrefersCorner(t *testing.T) {
	// Taking the corner is the standout move: it flips a full white run and
	// can never be flipped back.
	state := NewGameState()
	state.SetPiece(Square{X: 1, Y: 0}, White)
	state.SetPiece(Square{X: 2, Y: 0}, White)
	state.SetPiece(Square{X: 3, Y: 0}, Black)
	state.SetPiece(Square{X: 3, Y: 2}, White)
	state.SetPiece(Square{X: 3, Y: 3}, Black)
	state.SetPiece(Square{X: 5, Y: 5}, White)
	state.SetPiece(Square{X: 6, Y: 6}, Black)
	state.CurrentPlayer = PlayerBlack
	state.GameOver = false

	require.Contains(t, state.ValidMoves(), Square{X: 0, Y: 0})

	require.Equal(t, Square{X: 0, Y: 0}, SelectBestMove(state))
}
