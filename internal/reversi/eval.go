package reversi

// Game phase boundaries in total discs on the board.
const (
	lateMidgameDiscs = 40
	endgameDiscs     = 50
)

// positionalWeights values every square, indexed [y][x]. Corners are
// unflippable and worth the most; squares next to an empty corner hand the
// corner to the opponent and score heavily negative.
var positionalWeights = [BoardSize][BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// scaleMaterial weighs a disc difference by game phase. Raw disc count means
// little while flips are still volatile and everything once the board fills up.
func scaleMaterial(diff, totalDiscs int) int {
	switch {
	case totalDiscs < lateMidgameDiscs:
		return diff / 2
	case totalDiscs < endgameDiscs:
		return diff * 2
	default:
		return diff * 5
	}
}

// Evaluate statically scores the position from the given side's perspective.
// Positive is good for player. Pure function of the state.
func Evaluate(s *GameState, player Player) int {
	opponent := player.Opponent()

	ownScore := s.Score(player)
	opponentScore := s.Score(opponent)
	totalDiscs := ownScore + opponentScore

	value := 0

	// Material. A weak signal early, decisive late.
	value += scaleMaterial(ownScore-opponentScore, totalDiscs)

	// Positional weights.
	ownPiece := player.Piece()
	opponentPiece := opponent.Piece()

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			switch s.Board[y][x] {
			case ownPiece:
				value += positionalWeights[y][x]
			case opponentPiece:
				value -= positionalWeights[y][x]
			}
		}
	}

	// Mobility. Restricting the opponent's options matters until the endgame.
	if totalDiscs < endgameDiscs {
		ownMoves := len(s.validMovesFor(player))
		opponentMoves := len(s.validMovesFor(opponent))

		value += 3 * (ownMoves - opponentMoves)

		if opponentMoves == 0 && ownMoves > 0 {
			value += 50
		}
		if ownMoves > 2*opponentMoves {
			value += 20
		}
	}

	// Edge stability. A cheap proxy: edge discs are hard to flip.
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if x != 0 && x != BoardSize-1 && y != 0 && y != BoardSize-1 {
				continue
			}
			switch s.Board[y][x] {
			case ownPiece:
				value += 5
			case opponentPiece:
				value -= 5
			}
		}
	}

	// Parity. With an odd number of empties left, the side to move plays last.
	if totalDiscs >= endgameDiscs {
		empties := BoardSize*BoardSize - totalDiscs
		if empties%2 == 1 {
			if s.CurrentPlayer == player {
				value += 10
			} else {
				value -= 10
			}
		}
	}

	return value
}
