package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonseed"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Root flags (apply to every subcommand); they override the environment.
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	asJSON := flag.Bool("json", false, "ls prints JSON")
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(2)
	}

	ui.SetColorForcing(cfg.ForceColor, cfg.NoColor)
	ui.SetTheme(cfg.Theme)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		ui.Fail(os.Stderr, "logger: "+err.Error())
		os.Exit(1)
	}

	seed := model.Seed()
	if cfg.SeedFile != "" {
		if seed, err = jsonseed.Load(cfg.SeedFile); err != nil {
			ui.Fail(os.Stderr, "seed: "+err.Error())
			os.Exit(1)
		}
	}
	s, err := store.New(seed, store.WithLogger(logger))
	if err != nil {
		ui.Fail(os.Stderr, "seed: "+err.Error())
		os.Exit(1)
	}
	logger.Info("session started", zap.Int("items", s.Len()), zap.String("theme", cfg.Theme))

	r := &cli.Runner{
		Store:  s,
		Logger: logger,
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Interactive: func(s *store.TodoStore, l *zap.Logger) error {
			return tui.Run(s, l)
		},
		Options: cli.Options{
			Group: *groupPending,
			JSON:  *asJSON,
		},
	}
	code := r.Run(flag.Args())
	_ = logger.Sync()
	os.Exit(code)
}
