package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// ErrIsDirectory is returned when a file-only operation is given a directory
var ErrIsDirectory = errors.New("is a directory")

// rename is replaced in tests to simulate cross-device moves
var rename = os.Rename

// Entry describes one immediate child of a directory
type Entry struct {
	Name    string
	IsDir   bool
	Size    int64 // Always 0 for directories
	ModTime time.Time
}

// Kind returns the listing tag for the entry
func (e Entry) Kind() string {
	if e.IsDir {
		return "DIR"
	}
	return "FILE"
}

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// ReadEntries returns the immediate entries of a directory, sorted by name.
// Symbolic links are followed; a dangling link is described by the link itself.
func (fs *FileSystem) ReadEntries(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		path := filepath.Join(dir, de.Name())

		info, err := os.Stat(path)
		if err != nil {
			// Dangling symlink: fall back to the link's own metadata
			info, err = os.Lstat(path)
			if err != nil {
				return nil, err
			}
		}

		entry := Entry{
			Name:    de.Name(),
			IsDir:   info.IsDir(),
			ModTime: info.ModTime(),
		}
		if !entry.IsDir {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ListDirectory lists the names of all entries in a directory
func (fs *FileSystem) ListDirectory(path string) ([]string, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// CopyFile copies src to dst byte for byte, replacing dst if it exists.
// The data is written to a temp file next to dst and renamed into place, so
// dst is either the old content or the complete new content.
func (fs *FileSystem) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &os.PathError{Op: "copy", Path: src, Err: ErrIsDirectory}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return copyError(dst, err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmpFile, in); err != nil {
		tmpFile.Close()
		return err
	}

	if err := tmpFile.Chmod(info.Mode().Perm()); err != nil {
		tmpFile.Close()
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		return copyError(dst, err)
	}
	return nil
}

// copyError reports a failure on the temp file against the target name
func copyError(dst string, err error) error {
	var pathErr *os.PathError
	var linkErr *os.LinkError
	switch {
	case errors.As(err, &pathErr):
		err = pathErr.Err
	case errors.As(err, &linkErr):
		err = linkErr.Err
	}
	return &os.PathError{Op: "copy", Path: dst, Err: err}
}

// MoveFile renames src to dst, replacing dst if it exists. A rename across
// devices falls back to copy and remove.
func (fs *FileSystem) MoveFile(src, dst string) error {
	err := rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := fs.CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// RemoveFile removes a file or an empty directory
func (fs *FileSystem) RemoveFile(path string) error {
	return os.Remove(path)
}

// MakeDirectory creates a single directory; the parent must already exist
func (fs *FileSystem) MakeDirectory(path string) error {
	return os.Mkdir(path, 0755)
}

// RemoveDirectory removes path only if it is an empty directory
func (fs *FileSystem) RemoveDirectory(path string) error {
	if err := syscall.Rmdir(path); err != nil {
		return &os.PathError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}
