package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/joshify/joshify/internal/app"
	"github.com/joshify/joshify/internal/catalog"
	"github.com/joshify/joshify/internal/player"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cli.Command{
		Name:    "joshify",
		Usage:   "A portfolio that plays like a music client",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "Path to preferences file",
			},
			&cli.StringFlag{
				Name:  "analytics-db",
				Usage: "Path to the pageview database",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "no-analytics",
				Usage: "Disable pageview recording",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:   "catalog",
				Usage:  "Dump the track catalog as JSON",
				Action: dumpCatalog,
			},
			{
				Name:   "paths",
				Usage:  "Print the canonical route for every view",
				Action: dumpPaths,
			},
		},
	}

	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "joshify: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	return app.Run(ctx, app.Options{
		ConfigPath:  cmd.String("config"),
		PrefsPath:   cmd.String("prefs"),
		AnalyticsDB: cmd.String("analytics-db"),
		NoAnalytics: cmd.Bool("no-analytics"),
		LogLevel:    cmd.String("log-level"),
	})
}

// dumpCatalog prints every project and playlist, for scripting against
// the portfolio data.
func dumpCatalog(ctx context.Context, cmd *cli.Command) error {
	out := struct {
		Projects  []catalog.Project  `json:"projects"`
		Playlists []catalog.Playlist `json:"playlists"`
	}{
		Projects:  catalog.Projects(),
		Playlists: catalog.Playlists(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// dumpPaths prints the canonical path for every addressable entity.
func dumpPaths(ctx context.Context, cmd *cli.Command) error {
	fmt.Println(player.Path(player.ViewHome, player.NoSelection(), ""))
	fmt.Println(player.Path(player.ViewProfile, player.NoSelection(), ""))
	for _, pl := range catalog.Playlists() {
		p := pl
		fmt.Println(player.Path(player.ViewPlaylist, player.SelectPlaylist(&p), ""))
	}
	for _, proj := range catalog.Projects() {
		p := proj
		fmt.Println(player.Path(player.ViewProject, player.SelectProject(&p), ""))
	}
	for _, c := range catalog.Companies() {
		fmt.Println(player.Path(player.ViewCompany, player.SelectCompany(c), ""))
	}
	for _, d := range catalog.Domains() {
		fmt.Println(player.Path(player.ViewDomain, player.SelectDomain(d), ""))
	}
	return nil
}
