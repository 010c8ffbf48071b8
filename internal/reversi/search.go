package reversi

import (
	"math"
	"sort"
)

const (
	// Disc-count boundaries of the root depth policy.
	openingDiscs      = 20
	endgameStartDiscs = 45

	openingDepth = 4
	midgameDepth = 6
	endgameDepth = 12

	// maxNodes bounds the work of a single search. Once crossed, every
	// further node short-circuits to a leaf evaluation.
	maxNodes = 200000
)

// SearchResult carries the chosen move along with search statistics. When no
// tree is searched at all, because there is no legal move or a single forced
// one, Value, Nodes and Depth stay zero.
type SearchResult struct {
	Move  Square
	Value int
	Nodes int
	Depth int
}

// searcher holds per-search state, so repeated or concurrent searches cannot
// interfere with each other.
type searcher struct {
	aiPlayer Player
	nodes    int
}

// SelectBestMove picks the best move for the side to move.
// It returns InvalidSquare when no legal move exists.
func SelectBestMove(s *GameState) Square {
	return Search(s).Move
}

// Search picks the best move for the side to move and reports how hard it had
// to work for it. The caller's state is never modified.
func Search(s *GameState) SearchResult {
	moves := s.ValidMoves()

	if len(moves) == 0 {
		return SearchResult{Move: InvalidSquare}
	}

	// A forced move needs no search.
	if len(moves) == 1 {
		return SearchResult{Move: moves[0]}
	}

	sr := &searcher{aiPlayer: s.CurrentPlayer}
	depth := searchDepth(s.CountDiscs())

	sr.orderMoves(s, moves, true)

	bestMove := moves[0]
	bestValue := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt

	for _, move := range moves {
		child := s.Clone()
		child.PlayMove(move)

		// The root move consumes one ply; the opponent replies as minimizer.
		value := sr.minimax(child, depth-1, alpha, beta, false)

		if value > bestValue {
			bestValue = value
			bestMove = move
		}
		if value > alpha {
			alpha = value
		}
	}

	return SearchResult{
		Move:  bestMove,
		Value: bestValue,
		Nodes: sr.nodes,
		Depth: depth,
	}
}

// searchDepth adapts search effort to the game phase. Early positions branch
// widely and matter little; late positions have a small remaining tree that is
// worth searching deep.
func searchDepth(discs int) int {
	switch {
	case discs <= openingDiscs:
		return openingDepth
	case discs >= endgameStartDiscs:
		return endgameDepth
	default:
		return midgameDepth
	}
}

func (sr *searcher) minimax(s *GameState, depth int, alpha, beta int, maximizing bool) int {
	sr.nodes++

	if depth == 0 || s.GameOver || sr.nodes >= maxNodes {
		return Evaluate(s, sr.aiPlayer)
	}

	moves := s.ValidMoves()

	// No moves but not game over: pass. The pass consumes a ply like a real turn.
	if len(moves) == 0 {
		passed := s.Clone()
		passed.CurrentPlayer = passed.CurrentPlayer.Opponent()
		return sr.minimax(passed, depth-1, alpha, beta, !maximizing)
	}

	if len(moves) > 1 {
		sr.orderMoves(s, moves, maximizing)
	}

	if maximizing {
		best := math.MinInt

		for _, move := range moves {
			child := s.Clone()
			child.PlayMove(move)

			value := sr.minimax(child, depth-1, alpha, beta, false)

			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt

	for _, move := range moves {
		child := s.Clone()
		child.PlayMove(move)

		value := sr.minimax(child, depth-1, alpha, beta, true)

		if value < best {
			best = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}

	return best
}

// orderMoves sorts moves by a one-ply lookahead so the most promising move is
// searched first, which is what makes alpha-beta cutoffs effective. Ties keep
// their scan order.
func (sr *searcher) orderMoves(s *GameState, moves []Square, maximizing bool) {
	scores := make(map[Square]int, len(moves))

	for _, move := range moves {
		child := s.Clone()
		child.PlayMove(move)
		scores[move] = Evaluate(child, sr.aiPlayer)
	}

	sort.SliceStable(moves, func(i, j int) bool {
		if maximizing {
			return scores[moves[i]] > scores[moves[j]]
		}
		return scores[moves[i]] < scores[moves[j]]
	})
}
