package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/zenone/internal/cli"
	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/errors"
	"github.com/julianstephens/zenone/internal/logger"
	"github.com/julianstephens/zenone/internal/quote"
	"github.com/julianstephens/zenone/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/zenone/zenone.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize zenone storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login  cli.LoginCmd  `cmd:"" help:"Log in as a user (created on first use)."`
	Logout cli.LogoutCmd `cmd:"" help:"Log out the active user."`
	User   cli.UserCmd   `cmd:"" help:"Manage users."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a morning or evening session."`
	Today  cli.TodayCmd  `cmd:"" help:"Show today's practice and streak."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show practice statistics."`
	Quote  cli.QuoteCmd  `cmd:"" help:"Show the motivational quote."`
	Key    cli.KeyCmd    `cmd:"" help:"Manage the quote provider API key."`
	Backup cli.BackupCmd `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Twice-daily meditation practice tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Storage backend follows the config extension: .json files use the JSON
	// store, everything else SQLite.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		Quotes: quote.NewCache(store, quote.NewGeminiProvider()),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
