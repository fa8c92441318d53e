package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/history"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}

	hist, err := history.New(cfg.HistoryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("history store")
	}

	var picker game.Picker
	if seed, ok, _ := cfg.Seed(); ok {
		picker = game.SeededPicker(seed)
		log.Info().Uint64("seed", seed).Msg("deterministic word selection")
	}

	srv := httpserver.New(httpserver.Deps{
		Sessions:     store.NewSessions(),
		History:      hist,
		Words:        list,
		Picker:       picker,
		ClientOrigin: cfg.ClientOrigin,
		Timeout:      cfg.RequestTimeout,
	})
	log.Info().
		Str("port", cfg.Port).
		Int("words", len(list)).
		Str("history", hist.Path()).
		Msg("starting hangman server")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
