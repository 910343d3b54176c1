// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the config file, database and session.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the search-history database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "session",
				Usage: "Import the browser session cookie from a cURL command",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "curl",
						Usage: "cURL command from browser DevTools (Copy as cURL)",
					},
					&cli.StringFlag{
						Name:  "curl-file",
						Usage: "Path to .sh file containing cURL command",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Where to store the session (default: config's cookie_path)",
					},
				},
				Action: r.SetupSession,
			},
		},
	}
}

// profileCommand selects the active profile on the server session.
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Profile operations",
		Commands: []*cli.Command{
			{
				Name:  "select",
				Usage: "Select the active profile for this session",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.ProfileSelect,
			},
		},
	}
}

// searchCommand runs one combined catalog and OMDB lookup.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog and OMDB for movies",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Export results to a file (csv, markdown, text, json)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Export file path",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Skip recording the query in local history",
			},
		},
		Action: r.Search,
	}
}

// categoriesCommand lists the server's category options.
func categoriesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List available categories",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Categories,
	}
}

// addCommand adds a movie to the collection without the interactive wizard.
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a movie to your collection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Movie title",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "year",
				Usage: "Release year",
			},
			&cli.StringFlag{
				Name:  "imdb-id",
				Usage: "IMDb identifier",
			},
			&cli.StringFlag{
				Name:  "plot",
				Usage: "Plot summary",
			},
			&cli.StringFlag{
				Name:  "poster",
				Usage: "Poster URL",
			},
			&cli.StringFlag{
				Name:  "director",
				Usage: "Director",
			},
			&cli.StringFlag{
				Name:  "actors",
				Usage: "Lead actors",
			},
			&cli.BoolFlag{
				Name:  "watched",
				Usage: "Mark as watched",
			},
			&cli.BoolFlag{
				Name:  "watchlist",
				Usage: "Add to watchlist",
			},
			&cli.BoolFlag{
				Name:  "favorite",
				Usage: "Mark as favorite",
			},
			&cli.IntFlag{
				Name:  "rating",
				Usage: "Rating (1-10)",
			},
			&cli.StringFlag{
				Name:  "comment",
				Usage: "Rating comment",
			},
			&cli.IntSliceFlag{
				Name:  "category",
				Usage: "Category id (repeatable, max 5)",
			},
		},
		Action: r.Add,
	}
}

// toggleCommand flips a per-movie flag.
func toggleCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "toggle",
		Usage: "Toggle a movie flag (watched, watchlist, favorite)",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "action"},
			&cli.StringArg{Name: "id"},
		},
		Action: r.Toggle,
	}
}

// rateCommand stores a movie rating.
func rateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "rate",
		Usage: "Rate a movie",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
			&cli.StringArg{Name: "rating"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "comment",
				Usage: "Optional comment",
			},
		},
		Action: r.Rate,
	}
}

// ratingCommand shows the stored rating for a movie.
func ratingCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "rating",
		Usage: "Show the stored rating for a movie",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.RatingShow,
	}
}

// historyCommand lists recent searches from the local database.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recent searches",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries to show",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.History,
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Re-run recent searches and export the result sets",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (json, csv, markdown, txt)",
						Value: "json",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Output directory (default: senflix_export_{epoch})",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of recent queries to export",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers",
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Requests per second against the server",
					},
				},
				Action: r.HistoryExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive terminal UI",
		Action:  r.TUI,
	}
}
