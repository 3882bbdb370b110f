package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytpl/internal/history"
	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/desertthunder/ytpl/internal/tasks"
	"github.com/desertthunder/ytpl/internal/youtube"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	client *youtube.Client
	engine *tasks.CopyEngine
	logger *log.Logger
	output io.Writer

	// openDB is replaced in tests to point the history log at a scratch database.
	openDB func(path string) (*sql.DB, error)
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client *youtube.Client
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		client: opts.Client,
		engine: tasks.NewCopyEngine(opts.Client),
		logger: opts.Logger,
		output: opts.Output,
		openDB: shared.NewDatabase,
	}
}

// SetLogger swaps the runner's logger, used when the TUI takes over the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		authCommand, playlistsCommand, videosCommand, addCommand, removeCommand,
		moveCommand, copyCommand, searchCommand, quotaCommand, historyCommand,
		exportCommand, apiCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// ensureSession authenticates the client when no session is active yet.
func (r *Runner) ensureSession(ctx context.Context) error {
	if r.client.State() == youtube.Authenticated {
		return nil
	}
	return r.client.Authenticate(ctx)
}

// recordHistory appends an entry to the local mutation log.
//
// The log is best-effort: a missing or broken database produces a warning,
// never a command failure.
func (r *Runner) recordHistory(entry *history.Entry) {
	path := shared.ExpandPath(r.config.Database.Path)

	db, err := r.openDB(path)
	if err != nil {
		r.logger.Warn("history log unavailable", "error", err)
		return
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		r.logger.Warn("history log unavailable", "error", err)
		return
	}

	if err := history.NewRepository(db).Create(entry); err != nil {
		r.logger.Warn("failed to record history entry", "error", err)
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
