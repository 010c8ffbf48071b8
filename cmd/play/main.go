package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Chiusaroli/TP3-EDA-EDAversi/internal/reversi"
)

func humanMove(scanner *bufio.Scanner, state *reversi.GameState) reversi.Square {
	for {
		fmt.Print("your move: ")

		if !scanner.Scan() {
			fmt.Println()
			os.Exit(0)
		}

		field := strings.TrimSpace(scanner.Text())

		move, err := reversi.ParseSquare(field)
		if err != nil {
			fmt.Println("enter a square like d3")
			continue
		}

		for _, candidate := range state.ValidMoves() {
			if candidate == move {
				return move
			}
		}

		fmt.Printf("%s is not a legal move\n", move)
	}
}

func main() {
	colorFlag := flag.String("color", "black", "color of the human player: black or white")
	flag.Parse()

	var human reversi.Player
	switch *colorFlag {
	case "black":
		human = reversi.PlayerBlack
	case "white":
		human = reversi.PlayerWhite
	default:
		fmt.Println("color must be black or white")
		os.Exit(1)
	}

	state := reversi.NewGameState()
	state.Start()

	scanner := bufio.NewScanner(os.Stdin)

	for !state.GameOver {
		fmt.Println()
		state.Print()
		fmt.Printf("%s to move\n", state.CurrentPlayer)

		var move reversi.Square
		if state.CurrentPlayer == human {
			move = humanMove(scanner, state)
		} else {
			move = reversi.SelectBestMove(state)
			fmt.Printf("engine plays %s\n", move)
		}

		state.PlayMove(move)
	}

	fmt.Println()
	state.Print()

	blackScore := state.Score(reversi.PlayerBlack)
	whiteScore := state.Score(reversi.PlayerWhite)

	fmt.Printf("game over: black %d - white %d\n", blackScore, whiteScore)
	fmt.Printf("time used: black %s, white %s\n",
		state.Timer(reversi.PlayerBlack).Round(time.Millisecond),
		state.Timer(reversi.PlayerWhite).Round(time.Millisecond))

	switch {
	case blackScore > whiteScore:
		fmt.Println("black wins")
	case whiteScore > blackScore:
		fmt.Println("white wins")
	default:
		fmt.Println("draw")
	}
}
