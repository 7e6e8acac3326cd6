package main

import (
	"os"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/kluro/internal/config"
	"github.com/robalobadob/kluro/internal/daily"
	"github.com/robalobadob/kluro/internal/httpserver"
	"github.com/robalobadob/kluro/internal/store"
	"github.com/robalobadob/kluro/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.Production() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile, cfg.PlainWords)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := list.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("bad timezone")
	}
	epoch, err := daily.ParseEpoch(cfg.Epoch, loc)
	if err != nil {
		log.Fatal().Err(err).Msg("bad epoch")
	}
	sel := daily.Selector{Epoch: epoch, Words: list.Words(), Location: loc}

	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	srv := httpserver.New(db, daily.NewStore(db.DB()), list, sel, httpserver.Options{
		TokenSecret:  cfg.TokenSecret,
		CookieName:   cfg.CookieName,
		ClientOrigin: cfg.ClientOrigin,
		Secure:       cfg.Production(),
	})

	if rec, err := sel.TodaysWord(); err == nil {
		log.Info().Int("dayIndex", rec.DayIndex).Str("date", sel.TodayKey()).Msg("daily puzzle ready")
	} else {
		log.Warn().Err(err).Msg("no puzzle today")
	}

	log.Info().Str("port", cfg.Port).Msg("starting kluro server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
