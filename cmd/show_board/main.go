package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, 64 characters of B, W and .")
	sideString := flag.String("side", "", "mark the legal moves of this side")
	flag.Parse()

	board := othello.NewBoardStart()
	if *boardString != "" {
		var err error
		board, err = othello.NewBoardFromString(*boardString)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	var marked []othello.Move
	if *sideString != "" {
		side, err := othello.ParseSide(*sideString)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		marked = board.LegalMoves(side)
		fmt.Printf("%s score: %d\n", side, board.Score(side))
	}

	board.Print(marked)
}
