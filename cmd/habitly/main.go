package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"habitly/internal/auth"
	"habitly/internal/cli"
	"habitly/internal/config"
	"habitly/internal/constants"
	"habitly/internal/drive"
	"habitly/internal/errors"
	"habitly/internal/logger"
	"habitly/internal/registry"
	"habitly/internal/store"
	"habitly/internal/syncer"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitly config and storage."`
	Habit  cli.HabitCmd  `cmd:"" help:"Manage habits."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's entry for a day."`
	Status cli.StatusCmd `cmd:"" help:"Show daily habit status and progress." default:"1"`
	Cal    cli.CalCmd    `cmd:"" help:"Show a habit's calendar (week, month or year)."`
	Sync   cli.SyncCmd   `cmd:"" help:"Sync with the remote document."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitly"),
		kong.Description("Habit tracker with remote document sync"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfgPath := CLI.Config
	if cfgPath == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			errors.Fatal(err)
		}
		cfgPath = filepath.Join(dir, constants.ConfigFileName)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		errors.Fatal(err)
	}

	reg := registry.New()
	appCtx := &cli.Context{
		Config:     cfg,
		ConfigPath: cfgPath,
		Store:      store.NewFileStore(filepath.Join(cfg.DataDir, constants.DataFileName)),
		Registry:   reg,
	}

	if tokens, err := auth.FromConfig(cfg); err == nil {
		docs := drive.NewClient(cfg.RemoteFileName)
		appCtx.Syncer = syncer.New(tokens, docs, reg, cfg.RemoteFileName)
	}

	errors.Fatal(ctx.Run(appCtx))
}
