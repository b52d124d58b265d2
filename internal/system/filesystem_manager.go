package system

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	FileExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
	ReadEntries(dir string) ([]Entry, error)
	ListDirectory(path string) ([]string, error)
	CopyFile(src, dst string) error
	MoveFile(src, dst string) error
	RemoveFile(path string) error
	MakeDirectory(path string) error
	RemoveDirectory(path string) error
}

var _ FileSystemManager = (*FileSystem)(nil)
