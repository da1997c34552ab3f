package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fadedpez/gamefairy/internal/config"
	"github.com/fadedpez/gamefairy/internal/logging"
	"github.com/fadedpez/gamefairy/internal/types"
	"github.com/fadedpez/gamefairy/pkg/game"
	"github.com/fadedpez/gamefairy/pkg/gateway"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	g := game.New(gateway.New(cfg.Visions), game.WithLogger(logger))

	done, err := g.IsDone()
	if err != nil {
		logger.LogError(err)
		if types.IsGameError(err, types.ErrIndeterminateOracle) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	if done {
		fmt.Println("The fairy proclaims a winner. The game is done.")
	} else {
		fmt.Println("The fairy proclaims a stalemate. Play on.")
	}
}
