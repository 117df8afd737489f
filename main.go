package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sstandre/tuidle/internal/config"
	"github.com/sstandre/tuidle/internal/console"
	"github.com/sstandre/tuidle/internal/daily"
	"github.com/sstandre/tuidle/internal/game"
	"github.com/sstandre/tuidle/internal/httpserver"
	"github.com/sstandre/tuidle/internal/store"
	"github.com/sstandre/tuidle/internal/tui"
	"github.com/sstandre/tuidle/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err == nil && len(os.Args) > 1 {
		cfg.Mode = os.Args[1] // tui | console | serve
		err = cfg.Validate()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logFile := setupLogging(cfg)
	if logFile != nil {
		defer logFile.Close()
	}

	dict, err := words.Load(words.LoadOptions{
		Length:      cfg.WordLength,
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := dict.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	var picker words.Picker = words.RandomPicker{}
	if cfg.Daily {
		dp := daily.Picker{Salt: cfg.DailySalt}
		picker = dp
		log.Info().Str("date", dp.Today()).Msg("daily mode")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeServe:
		mem := store.NewMemoryStore()
		go mem.RunSweeper(ctx, time.Minute, cfg.SessionTTL)
		srv := httpserver.New(mem, dict, httpserver.Options{
			WordLength:       cfg.WordLength,
			MaxAttempts:      cfg.MaxAttempts,
			Picker:           picker,
			AllowFixedAnswer: cfg.AllowFixedAnswer,
			RateLimitRPS:     cfg.RateLimitRPS,
			RateLimitBurst:   cfg.RateLimitBurst,
			CORSOrigins:      cfg.CORSOrigins,
		})
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}

	default:
		sess, err := game.New(dict,
			game.WithWordLength(cfg.WordLength),
			game.WithMaxAttempts(cfg.MaxAttempts),
			game.WithPicker(picker),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start game")
		}
		if cfg.Mode == config.ModeConsole {
			err = console.Run(ctx, os.Stdin, os.Stdout, sess, dict)
		} else {
			err = tui.New(sess, dict).Run(ctx)
		}
		if err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("game exited")
		}
	}
}

// setupLogging applies LOG_LEVEL and picks an output.
// The TUI owns the terminal, so its logs go to TUIDLE_LOG_FILE or nowhere.
func setupLogging(cfg config.Config) *os.File {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var out io.Writer = os.Stderr
	var f *os.File
	switch {
	case cfg.LogFile != "":
		var err error
		f, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("open log file")
		}
		out = f
	case cfg.Mode == config.ModeTUI:
		out = io.Discard
	case isatty.IsTerminal(os.Stderr.Fd()):
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return f
}
