package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/reversi"
)

// randomState plays random moves from the starting position until the board
// holds at least the wanted number of discs. Restarts if the game ends early.
func randomState(rng *rand.Rand, discs int) *reversi.GameState {
	for {
		state := reversi.NewGameState()
		state.Start()

		for !state.GameOver && state.CountDiscs() < discs {
			moves := state.ValidMoves()
			state.PlayMove(moves[rng.Intn(len(moves))])
		}

		if state.CountDiscs() >= discs && !state.GameOver {
			return state
		}
	}
}

func main() {
	seed := flag.Int64("seed", 1, "random seed")
	samples := flag.Int("samples", 5, "positions per disc count")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	for _, discs := range []int{10, 20, 30, 40, 50, 55} {
		var totalNodes int
		var totalDuration time.Duration

		for i := 0; i < *samples; i++ {
			state := randomState(rng, discs)

			start := time.Now()
			result := reversi.Search(state)
			totalDuration += time.Since(start)
			totalNodes += result.Nodes
		}

		nodesPerSecond := int64(0)
		if seconds := totalDuration.Seconds(); seconds > 0.000001 {
			nodesPerSecond = int64(float64(totalNodes) / seconds)
		}

		fmt.Printf("%2d discs: %8d nodes in %8.4fs (%d nodes/s)\n",
			discs, totalNodes, totalDuration.Seconds(), nodesPerSecond)
	}
}
