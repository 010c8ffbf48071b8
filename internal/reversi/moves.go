package reversi

import "time"

// directions are the 8 compass directions as (dx, dy) steps.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// ValidMoves returns all legal squares for the side to move, in row-major scan order.
func (s *GameState) ValidMoves() []Square {
	return s.validMovesFor(s.CurrentPlayer)
}

func (s *GameState) validMovesFor(player Player) []Square {
	own := player.Piece()
	opponent := player.Opponent().Piece()

	moves := make([]Square, 0)

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			move := Square{X: x, Y: y}

			if s.Piece(move) != Empty {
				continue
			}

			if s.captures(move, own, opponent) {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// captures checks whether placing own on the given empty square flips at least
// one opponent disc in any direction.
func (s *GameState) captures(move Square, own, opponent Piece) bool {
	for _, dir := range directions {
		current := Square{X: move.X + dir[0], Y: move.Y + dir[1]}
		foundOpponent := false

		for current.IsValid() {
			piece := s.Piece(current)

			if piece == Empty {
				break
			}

			if piece == opponent {
				foundOpponent = true
				current.X += dir[0]
				current.Y += dir[1]
				continue
			}

			// Own disc closes the line.
			if foundOpponent {
				return true
			}
			break
		}
	}

	return false
}

// PlayMove places a disc for the side to move, flips every captured line and
// advances the turn. If the opponent has no reply the mover keeps the turn; if
// neither side can move the game is over.
//
// The move must come from ValidMoves; an illegal move has undefined effect.
func (s *GameState) PlayMove(move Square) bool {
	own := s.CurrentPlayer.Piece()
	opponent := s.CurrentPlayer.Opponent().Piece()

	s.SetPiece(move, own)

	for _, dir := range directions {
		current := Square{X: move.X + dir[0], Y: move.Y + dir[1]}
		line := make([]Square, 0, BoardSize-1)

		for current.IsValid() && s.Piece(current) == opponent {
			line = append(line, current)
			current.X += dir[0]
			current.Y += dir[1]
		}

		// Only a line closed by an own disc flips. A run ending on an empty
		// square or the board edge is discarded.
		if len(line) > 0 && current.IsValid() && s.Piece(current) == own {
			for _, square := range line {
				s.SetPiece(square, own)
			}
		}
	}

	s.updateTimer()

	s.CurrentPlayer = s.CurrentPlayer.Opponent()

	if len(s.ValidMoves()) == 0 {
		// Opponent passes, the mover goes again.
		s.CurrentPlayer = s.CurrentPlayer.Opponent()

		if len(s.ValidMoves()) == 0 {
			s.GameOver = true
		}
	}

	return true
}

// updateTimer charges the elapsed turn time to the side that just moved.
func (s *GameState) updateTimer() {
	now := time.Now()
	if !s.turnTimer.IsZero() {
		s.playerTime[s.CurrentPlayer] += now.Sub(s.turnTimer)
	}
	s.turnTimer = now
}
