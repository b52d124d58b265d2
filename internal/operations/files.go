package operations

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/zoro11031/dirmanager/internal/common"
	"github.com/zoro11031/dirmanager/internal/system"
)

// TimestampLayout renders modification times in listings (always UTC)
const TimestampLayout = "2006-01-02 15:04:05"

// FormatEntry renders one listing line: kind, size, timestamp, name
func FormatEntry(e system.Entry) string {
	return fmt.Sprintf("%-10s %-10d %-20s %s", e.Kind(), e.Size, e.ModTime.UTC().Format(TimestampLayout), e.Name)
}

// List describes every immediate entry of the working directory
func (s *Session) List() (*Result, error) {
	entries, err := s.fs.ReadEntries(s.dir)
	if err != nil {
		return nil, s.fail(VerbList, err, zap.String("path", s.dir))
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}

	s.logger.Debug("directory listed", zap.Int("entries", len(entries)))
	return &Result{Header: "Directory contents:", Lines: lines}, nil
}

// Copy copies the file src to dst, replacing dst if present
func (s *Session) Copy(src, dst string) (*Result, error) {
	return s.transfer(VerbCopy, MsgCopied, s.fs.CopyFile, src, dst)
}

// Move renames src to dst, replacing dst if present
func (s *Session) Move(src, dst string) (*Result, error) {
	return s.transfer(VerbMove, MsgMoved, s.fs.MoveFile, src, dst)
}

func (s *Session) transfer(verb, msg string, fn func(src, dst string) error, src, dst string) (*Result, error) {
	fields := []zap.Field{zap.String("path", src), zap.String("target", dst)}

	srcPath, err := s.resolve(src)
	if err != nil {
		return nil, s.fail(verb, err, fields...)
	}
	dstPath, err := s.resolve(dst)
	if err != nil {
		return nil, s.fail(verb, err, fields...)
	}

	if err := fn(srcPath, dstPath); err != nil {
		return nil, s.fail(verb, err, fields...)
	}

	s.logger.Info(msg, append(fields, zap.String("op", verb))...)
	return &Result{Message: msg}, nil
}

// DeleteFile removes a file (or an empty directory)
func (s *Session) DeleteFile(name string) (*Result, error) {
	return s.single(VerbDeleteFile, MsgFileDeleted, s.fs.RemoveFile, name)
}

// CreateDirectory creates one directory; its parent must exist
func (s *Session) CreateDirectory(name string) (*Result, error) {
	return s.single(VerbCreateDirectory, MsgDirectoryCreated, s.fs.MakeDirectory, name)
}

// DeleteDirectory removes an empty directory
func (s *Session) DeleteDirectory(name string) (*Result, error) {
	return s.single(VerbDeleteDirectory, MsgDirectoryDeleted, s.fs.RemoveDirectory, name)
}

func (s *Session) single(verb, msg string, fn func(path string) error, name string) (*Result, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, s.fail(verb, err, zap.String("path", name))
	}

	if err := fn(path); err != nil {
		return nil, s.fail(verb, err, zap.String("path", name))
	}

	s.logger.Info(msg, zap.String("op", verb), zap.String("path", name))
	return &Result{Message: msg}, nil
}

// Search lists the names of immediate entries matching a glob pattern.
// Patterns use doublestar syntax: * ? [class] {alt,...} and \ escapes.
func (s *Session) Search(pattern string) (*Result, error) {
	if err := common.ValidateGlobPattern(pattern); err != nil {
		return nil, s.fail(VerbSearch, err, zap.String("pattern", pattern))
	}

	names, err := s.fs.ListDirectory(s.dir)
	if err != nil {
		return nil, s.fail(VerbSearch, err, zap.String("pattern", pattern))
	}

	if s.opts.IgnoreCase {
		pattern = strings.ToLower(pattern)
	}

	matches := []string{}
	for _, name := range names {
		candidate := name
		if s.opts.IgnoreCase {
			candidate = strings.ToLower(name)
		}

		ok, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return nil, s.fail(VerbSearch, err, zap.String("pattern", pattern))
		}
		if ok {
			matches = append(matches, name)
		}
	}

	s.logger.Debug("search finished", zap.String("pattern", pattern), zap.Int("matches", len(matches)))
	return &Result{Header: "Search results:", Lines: matches}, nil
}
