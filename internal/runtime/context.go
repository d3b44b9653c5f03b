package runtime

import (
	"context"
	"fmt"
	"os"

	"trail.dev/trail/internal/config"
	"trail.dev/trail/internal/git"
	"trail.dev/trail/internal/output"
)

// Context provides access to the repository, configuration and output for commands
type Context struct {
	Repo     *git.Repository
	Splog    *output.Splog
	Settings *config.Settings
	GitDir   string
}

// Options control how a Context is created
type Options struct {
	// Dir is the directory to discover the repository from; empty means the working directory
	Dir   string
	Debug bool
}

// NewContext creates a context around an already opened repository
func NewContext(repo *git.Repository, splog *output.Splog, settings *config.Settings) *Context {
	if settings == nil {
		settings = &config.Settings{}
	}
	if settings.CommandTimeout > 0 {
		repo.SetCommandTimeout(settings.CommandTimeout)
	}
	return &Context{Repo: repo, Splog: splog, Settings: settings}
}

// GetContext opens the repository containing the working directory, loads its
// configuration and sets up logging.
func GetContext(ctx context.Context, opts Options) (*Context, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := git.OpenRepository(dir)
	if err != nil {
		return nil, err
	}

	gitDir, err := repo.GitDir(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(gitDir)
	if err != nil {
		return nil, err
	}

	debug := opts.Debug || os.Getenv("TRAIL_DEBUG") != ""
	logFile := settings.LogFile
	if logFile == "" {
		logFile = output.GetLogFilePath()
	}
	splog, err := output.NewSplogWithConfig(logFile, debug)
	if err != nil {
		// file logging is best effort; keep console output working
		splog = output.NewSplogWithWriter(os.Stderr, debug)
		splog.Warn("File logging disabled: %v", err)
	}

	runtimeCtx := NewContext(repo, splog, settings)
	runtimeCtx.GitDir = gitDir
	return runtimeCtx, nil
}

// Close releases resources held by the context
func (c *Context) Close() error {
	if c.Splog != nil {
		return c.Splog.Close()
	}
	return nil
}
