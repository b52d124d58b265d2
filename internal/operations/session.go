// Package operations implements the file maintenance actions available in a
// dirmanager session. Every action works on names relative to the session's
// working directory, performs a single filesystem call and returns either a
// Result to display or an *Error carrying the failed verb.
package operations

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"

	"github.com/zoro11031/dirmanager/internal/common"
	"github.com/zoro11031/dirmanager/internal/logging"
	"github.com/zoro11031/dirmanager/internal/system"
)

// ErrInvalidDirectory is returned when the session root is not an existing directory
var ErrInvalidDirectory = errors.New("invalid directory path")

// Options tune operation behaviour
type Options struct {
	// IgnoreCase makes Search match names case-insensitively
	IgnoreCase bool
}

// Session is the context every operation runs in. The working directory is
// fixed once the session is opened.
type Session struct {
	dir    string
	fs     system.FileSystemManager
	logger *logging.Logger
	opts   Options
}

// OpenSession validates path and returns a session rooted at it. A leading
// "~" is expanded to the home directory. fs and logger may be nil.
func OpenSession(path string, fs system.FileSystemManager, logger *logging.Logger, opts Options) (*Session, error) {
	if fs == nil {
		fs = system.NewFileSystem()
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := common.ValidateNotEmpty(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}

	dir, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}

	ok, err := fs.DirectoryExists(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirectory, path)
	}

	logger.Info("session opened", zap.String("dir", dir))

	return &Session{
		dir:    dir,
		fs:     fs,
		logger: logger,
		opts:   opts,
	}, nil
}

// Dir returns the absolute working directory
func (s *Session) Dir() string {
	return s.dir
}

// resolve joins name onto the working directory after validating it
func (s *Session) resolve(name string) (string, error) {
	if err := common.ValidateEntryName(s.dir, name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// fail logs a failed operation and wraps err for display
func (s *Session) fail(verb string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", verb), zap.Error(err))
	s.logger.Warn("operation failed", fields...)
	return &Error{Verb: verb, Err: err}
}
