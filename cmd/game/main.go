package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Gunfeel/internal/profiles"
	"github.com/Garsondee/Gunfeel/internal/rangeview"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "weapon profile config file (default: ./gunfeel.{toml,yaml,json} when present)")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "feel RNG seed")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ps, err := profiles.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load weapon profiles")
	}
	log.Info().Int("weapons", len(ps)).Msg("profiles loaded")

	rv, err := rangeview.New(ps, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("build firing range")
	}

	ebiten.SetWindowTitle("Gunfeel Range")
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(rv); err != nil {
		log.Fatal().Err(err).Msg("range exited")
	}
}
