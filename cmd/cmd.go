// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Sign in with Google OAuth (opens a browser)",
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show session state and stored credential",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "End the session and delete the stored credential",
				Action: r.AuthLogout,
			},
		},
	}
}

// playlistsCommand lists the signed-in user's playlists
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "List your playlists",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Playlists,
	}
}

// videosCommand lists the videos in a playlist
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"vids"},
		Usage:   "List videos in a playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "playlist",
				Aliases:  []string{"p"},
				Usage:    "Playlist ID",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Videos,
	}
}

// addCommand adds a video to a playlist
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a video to a playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "playlist",
				Aliases:  []string{"p"},
				Usage:    "Playlist ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "video",
				Aliases:  []string{"v"},
				Usage:    "Video ID to add",
				Required: true,
			},
		},
		Action: r.Add,
	}
}

// removeCommand removes a playlist item
func removeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Aliases: []string{"rm"},
		Usage:   "Remove an item from a playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "item",
				Aliases:  []string{"i"},
				Usage:    "Playlist item ID to remove",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Playlist ID, recorded in the local history log",
			},
		},
		Action: r.Remove,
	}
}

// moveCommand moves a single video between playlists
func moveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "move",
		Usage: "Move a video from one playlist to another",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "item",
				Aliases:  []string{"i"},
				Usage:    "Playlist item ID in the source playlist",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "video",
				Aliases:  []string{"v"},
				Usage:    "Video ID of the item",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "from",
				Usage:    "Source playlist ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Target playlist ID",
				Required: true,
			},
		},
		Action: r.Move,
	}
}

// copyCommand copies a playlist's contents into another playlist
func copyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "copy",
		Usage: "Copy videos from one playlist to another",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "Source playlist ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Target playlist ID",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Also remove copied videos from the source (move everything)",
			},
		},
		Action: r.Copy,
	}
}

// searchCommand searches YouTube for videos
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search YouTube for videos (costs 100 quota units)",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// quotaCommand reports the session's quota usage estimate
func quotaCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "quota",
		Usage:  "Show the session's estimated quota usage",
		Action: r.Quota,
	}
}

// historyCommand reads the local mutation log
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show locally recorded playlist mutations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Filter by playlist ID",
			},
			&cli.StringFlag{
				Name:  "action",
				Usage: "Filter by action (insert, delete, move, copy)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries",
				Value: 20,
			},
		},
		Action: r.History,
	}
}

// exportCommand writes a playlist's contents to disk
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a playlist to CSV, Markdown or plain text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "playlist",
				Aliases:  []string{"p"},
				Usage:    "Playlist ID to export",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format: csv, markdown or text",
				Value: "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path (base filename or directory)",
			},
		},
		Action: r.Export,
	}
}

// apiCommand handles direct API calls for debugging
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET against the YouTube Data API, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Action: r.APIGet,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the history database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the history database and run migrations",
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
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for playlist management",
		Action:  r.TUI,
	}
}
