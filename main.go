package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"riskserver/config"
	"riskserver/conquest"
	"riskserver/game"
	"riskserver/server"
)

func main() {
	var (
		addr       = flag.String("addr", ":8000", "listen address")
		configPath = flag.String("config", "", "game configuration file; empty for randomized setup")
		probsPath  = flag.String("probs", "conquer_probabilities.bin", "precomputed conquest probability table")
		numPlayers = flag.Int("players", 6, "player count for randomized setup")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// The table is precomputed offline by cmd/precompute. Starting
	// without it would make large attacks recurse from cold, so a
	// missing or corrupt file is fatal.
	table, err := conquest.LoadFile(*probsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load conquest probability table")
	}
	log.Info().Int("cells", table.Len()).Msg("conquest probability table loaded")

	var g *game.Game
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load game configuration")
		}
		board, players, err := cfg.BoardAndPlayers()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid game configuration")
		}
		g = game.New(board, players, table, nil)
	} else {
		board, err := config.Default().Board()
		if err != nil {
			log.Fatal().Err(err).Msg("embedded default board is invalid")
		}
		g = game.NewRandom(board, *numPlayers, table, nil)
	}

	if err := server.New(g, table).Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
