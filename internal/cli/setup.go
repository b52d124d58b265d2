// Package cli provides the command-line interface layer for dirmanager: the
// session context shared by every command, the interactive menu loop, and
// rendering of operation results. It bridges user input to the operations
// package.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zoro11031/dirmanager/internal/config"
	"github.com/zoro11031/dirmanager/internal/logging"
	"github.com/zoro11031/dirmanager/internal/operations"
	"github.com/zoro11031/dirmanager/internal/system"
	"github.com/zoro11031/dirmanager/internal/ui"
)

// ErrReported marks an error whose message has already been shown to the user
var ErrReported = errors.New("error already reported")

// Options holds command-line overrides for a session
type Options struct {
	ConfigPath string
	LogFile    string
	Debug      bool
	IgnoreCase bool
}

// SessionContext holds all dependencies needed for a dirmanager session
type SessionContext struct {
	Config *config.Config
	UI     *ui.UI
	Logger *logging.Logger
	FS     system.FileSystemManager
	// Session is nil until a working directory has been opened
	Session *operations.Session
	opts    Options
}

// NewSessionContext creates a SessionContext on the process terminal
func NewSessionContext(opts Options) (*SessionContext, error) {
	return NewSessionContextWithUI(opts, ui.New())
}

// NewSessionContextWithUI creates a SessionContext with a custom UI
func NewSessionContextWithUI(opts Options, u *ui.UI) (*SessionContext, error) {
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return &SessionContext{
		Config: cfg,
		UI:     u,
		Logger: logger,
		FS:     system.NewFileSystem(),
		opts:   opts,
	}, nil
}

func newLogger(cfg *config.Config, opts Options) (*logging.Logger, error) {
	path := opts.LogFile
	if path == "" {
		path = cfg.GetOrDefault(config.KeyLogFile, "")
	}
	if path == "" {
		return logging.NewNop(), nil
	}

	logCfg := logging.DefaultConfig(path)
	logCfg.Level = cfg.GetOrDefault(config.KeyLogLevel, "info")
	if opts.Debug {
		logCfg.Level = "debug"
		logCfg.Development = true
	}
	return logging.New(logCfg)
}

// OpenDirectory validates path and starts the session on it
func (ctx *SessionContext) OpenDirectory(path string) error {
	session, err := operations.OpenSession(path, ctx.FS, ctx.Logger, operations.Options{
		IgnoreCase: ctx.opts.IgnoreCase || ctx.Config.GetBool(config.KeySearchIgnoreCase),
	})
	if err != nil {
		ctx.Logger.Warn("invalid working directory", zap.String("path", path), zap.Error(err))
		return err
	}
	ctx.Session = session
	return nil
}

// RememberDirectory stores the open working directory as LAST_DIRECTORY.
// Nothing is written when the value is unchanged or when the config file
// lives inside the working directory, since the session must not touch it.
func (ctx *SessionContext) RememberDirectory() {
	if ctx.Session == nil {
		return
	}
	dir := ctx.Session.Dir()
	if ctx.Config.GetOrDefault(config.KeyLastDirectory, "") == dir {
		return
	}
	if isWithin(dir, ctx.Config.FilePath()) {
		ctx.Logger.Debug("config file is inside the working directory, not remembering it",
			zap.String("dir", dir), zap.String("config", ctx.Config.FilePath()))
		return
	}

	if err := ctx.Config.Set(config.KeyLastDirectory, dir); err != nil {
		ctx.Logger.Warn("failed to remember working directory", zap.Error(err))
	}
}

// isWithin reports whether path is dir itself or lies below it
func isWithin(dir, path string) bool {
	dir = canonicalPath(dir)
	path = filepath.Join(canonicalPath(filepath.Dir(path)), filepath.Base(path))

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func canonicalPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return path
}

// Close flushes the log
func (ctx *SessionContext) Close() {
	ctx.Logger.Close()
}

// Render prints an operation outcome
func Render(u *ui.UI, res *operations.Result, err error) {
	if err != nil {
		u.Error(err.Error())
		return
	}
	if res == nil {
		return
	}

	if res.Header != "" {
		u.Print("")
		u.Print(res.Header)
		for _, line := range res.Lines {
			u.Print(line)
		}
	}
	if res.Message != "" {
		u.Success(res.Message)
	}
}

// Report renders err and returns it marked as reported
func Report(u *ui.UI, err error) error {
	Render(u, nil, err)
	return fmt.Errorf("%w: %w", ErrReported, err)
}
