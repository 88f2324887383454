package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v3"

	"github.com/starford/qcd/internal"
	pkgconfig "github.com/starford/qcd/pkg/config"
)

var version = "dev"

// answered is set once internal.Run has taken over writing the output line.
var answered bool

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if configPath, err := homedir.Expand(cmd.String("config")); err != nil {
		slog.Warn("failed to locate config", slog.String("error", err.Error()))
	} else if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		// A broken rc file must not stop cd from working.
		slog.Warn("failed to parse config, using defaults", slog.String("error", err.Error()))
		cfg = internal.NewDefaultConfig()
	}

	if lvl := cmd.String("log-level"); lvl != "" {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			slog.Warn("invalid log level", slog.String("level", lvl))
		}
	}
	if db := cmd.String("db"); db != "" {
		cfg.Store.Path = db
	}

	req := internal.Request{
		Version: cmd.Bool("version"),
		Help:    cmd.Bool("help"),
		Purge:   cmd.Bool("purge"),
		Add:     cmd.Bool("add"),
		Delete:  cmd.Bool("del"),
		List:    cmd.Bool("list"),
		Args:    cmd.Args().Slice(),
	}

	answered = true
	if err := internal.Run(ctx,
		internal.WithConfig(cfg),
		internal.WithRequest(req),
		internal.WithVersion(version),
	); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:        "qcd",
		Usage:       "Change to a frequently visited directory by partial name",
		ArgsUsage:   "{directory}",
		HideHelp:    true,
		HideVersion: true,
		// stdout belongs to the calling shell's cd.
		Writer:    os.Stderr,
		ErrWriter: os.Stderr,
		Action:    run,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "help", Aliases: []string{"h"}, Usage: "Show usage"},
			&cli.BoolFlag{Name: "version", Aliases: []string{"v"}, Usage: "Show version"},
			&cli.BoolFlag{Name: "add", Aliases: []string{"a"}, Usage: "Add the current directory to the list"},
			&cli.BoolFlag{Name: "del", Aliases: []string{"d"}, Usage: "Delete the current directory from the list"},
			&cli.BoolFlag{Name: "list", Aliases: []string{"l"}, Usage: "Show/edit the complete directory list"},
			&cli.BoolFlag{Name: "purge", Usage: "Remove all stored directories"},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "Path to the directory store",
				Sources: cli.EnvVars("QCD_DB_FILE"),
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: internal.DefaultConfigPath,
				Value:       internal.DefaultConfigPath,
				Sources:     cli.EnvVars("QCD_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		if !answered {
			internal.ShowUsage(os.Stderr, cmd.Name)
			fmt.Println(internal.NoChange)
		}
	}
}
