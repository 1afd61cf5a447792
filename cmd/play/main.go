package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/search"
)

func main() {
	color := flag.String("color", "", "side played by the human: B or W, asks when empty")
	depth := flag.Int("depth", 4, "search depth of the computer player")
	workers := flag.Int("workers", 1, "number of goroutines searching root moves")
	opponent := flag.String("opponent", "bot", "computer player: bot or random")
	watch := flag.Bool("watch", false, "let two computer players play each other")
	flag.Parse()

	config.SetLogLevel()

	if *depth < 0 {
		fmt.Println("depth must not be negative")
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)

	computer := func(seed uint64) (game.Player, error) {
		switch *opponent {
		case "bot":
			return game.NewBotPlayer(search.NewBot(search.WithWorkers(*workers)), *depth), nil
		case "random":
			return game.NewRandomPlayer(seed), nil
		default:
			return nil, fmt.Errorf("unknown opponent %q", *opponent)
		}
	}

	seed := uint64(time.Now().UnixNano())

	black, err := computer(seed)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	white, err := computer(seed + 1)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if !*watch {
		human, err := humanSide(scanner, *color)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		player := game.NewHumanPlayer(scanner, os.Stdout)
		if human == othello.Black {
			black = player
		} else {
			white = player
		}
	}

	controller := game.NewController(game.NewGame(), black, white, os.Stdout)

	err = controller.Run(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, game.ErrQuit), errors.Is(err, game.ErrInputClosed):
		fmt.Println("Goodbye!")
	default:
		slog.Error("Game stopped", "error", err)
		os.Exit(1)
	}
}

func humanSide(scanner *bufio.Scanner, color string) (othello.Side, error) {
	if color == "" {
		return game.ChooseColor(scanner, os.Stdout)
	}
	return othello.ParseSide(color)
}
