package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/rsavkin/minesweeper-agent/internal/config"
	"github.com/rsavkin/minesweeper-agent/internal/knowledge"
	"github.com/rsavkin/minesweeper-agent/internal/mines"
	"github.com/rsavkin/minesweeper-agent/internal/player"
)

var (
	log = logrus.New()

	configPath string
	presetName string
	height     int
	width      int
	mineCount  int
	games      int
	workers    int
	seed       uint64
	logPath    string
	debug      bool
	showBoards bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "presets file path (YAML)")
	flag.StringVar(&presetName, "preset", "beginner", "board preset name")
	flag.IntVar(&height, "height", 0, "board height (overrides preset)")
	flag.IntVar(&width, "width", 0, "board width (overrides preset)")
	flag.IntVar(&mineCount, "mines", 0, "mine count (overrides preset)")
	flag.IntVar(&games, "games", 1, "number of games to play")
	flag.IntVar(&workers, "workers", 4, "games played concurrently")
	flag.Uint64Var(&seed, "seed", 0, "rng seed, 0 picks a random one")
	flag.StringVar(&logPath, "log-file", "", "also write JSON logs to this file (rotated)")
	flag.BoolVar(&debug, "debug", false, "log every move and deduction")
	flag.BoolVar(&showBoards, "show-boards", false, "print the final view of each game")
}

func setupLogging() {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	for _, l := range []*logrus.Logger{log, knowledge.Log, player.Log} {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up file logging: ", err)
	}
	for _, l := range []*logrus.Logger{log, knowledge.Log, player.Log} {
		l.AddHook(hook)
	}
}

func loadPreset() (config.Preset, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Preset{}, err
		}
	}
	preset, err := cfg.Preset(presetName)
	if err != nil {
		return config.Preset{}, err
	}
	if height > 0 {
		preset.Height = height
	}
	if width > 0 {
		preset.Width = width
	}
	if mineCount > 0 {
		preset.Mines = mineCount
	}
	if err := preset.Validate(); err != nil {
		return config.Preset{}, err
	}
	return preset, nil
}

func playOne(preset config.Preset, r *rand.Rand) (player.Summary, string, error) {
	board, err := mines.NewBoard(preset.Height, preset.Width, preset.Mines, r)
	if err != nil {
		return player.Summary{}, "", err
	}
	p := player.New(board, r)
	sum := p.Play()
	return sum, p.View(), nil
}

func main() {
	flag.Parse()
	setupLogging()

	preset, err := loadPreset()
	if err != nil {
		log.Fatal(err)
	}

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}

	log.WithFields(logrus.Fields{
		"preset": preset.String(),
		"games":  games,
		"seed":   seed,
	}).Info("starting")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	var won, lost, guesses atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range games {
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}

			/*
			 * Each game owns its board, engine and rng; per-game seeds
			 * keep runs reproducible regardless of scheduling.
			 */
			r := rand.New(rand.NewPCG(seed, uint64(i)))
			sum, view, err := playOne(preset, r)
			if err != nil {
				return err
			}

			if sum.Outcome == player.Won {
				won.Add(1)
			} else {
				lost.Add(1)
			}
			guesses.Add(int64(sum.RandomMoves))

			log.WithFields(logrus.Fields{
				"game":    i,
				"outcome": sum.Outcome.String(),
				"moves":   sum.Moves,
				"flags":   sum.Flagged,
				"guesses": sum.RandomMoves,
			}).Info("game finished")

			if showBoards {
				fmt.Printf("game %d (%s):\n%s\n", i, sum.Outcome, view)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("exit reason: ", err)
	}

	total := won.Load() + lost.Load()
	log.WithFields(logrus.Fields{
		"games":   total,
		"won":     won.Load(),
		"lost":    lost.Load(),
		"winRate": fmt.Sprintf("%.1f%%", 100*float64(won.Load())/float64(total)),
		"guesses": guesses.Load(),
	}).Info("done")
}
