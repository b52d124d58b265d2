package system

import (
	"sync"
)

// MockFileSystem is a mock of the FileSystem for testing purposes.
// Calls are delegated to the real FileSystem unless an error has been
// injected for the method, and every call is recorded.
type MockFileSystem struct {
	FileSystem
	mu     sync.Mutex
	Errors map[string]error // method name -> error to return
	Calls  []string
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Errors: make(map[string]error),
	}
}

// FailWith makes every later call to method return err.
func (m *MockFileSystem) FailWith(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[method] = err
}

func (m *MockFileSystem) record(method string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, method)
	return m.Errors[method]
}

// FileExists is a mock implementation of FileSystemManager.FileExists.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	if err := m.record("FileExists"); err != nil {
		return false, err
	}
	return m.FileSystem.FileExists(path)
}

// ReadEntries is a mock implementation of FileSystemManager.ReadEntries.
func (m *MockFileSystem) ReadEntries(dir string) ([]Entry, error) {
	if err := m.record("ReadEntries"); err != nil {
		return nil, err
	}
	return m.FileSystem.ReadEntries(dir)
}

// ListDirectory is a mock implementation of FileSystemManager.ListDirectory.
func (m *MockFileSystem) ListDirectory(path string) ([]string, error) {
	if err := m.record("ListDirectory"); err != nil {
		return nil, err
	}
	return m.FileSystem.ListDirectory(path)
}

// CopyFile is a mock implementation of FileSystemManager.CopyFile.
func (m *MockFileSystem) CopyFile(src, dst string) error {
	if err := m.record("CopyFile"); err != nil {
		return err
	}
	return m.FileSystem.CopyFile(src, dst)
}

// MoveFile is a mock implementation of FileSystemManager.MoveFile.
func (m *MockFileSystem) MoveFile(src, dst string) error {
	if err := m.record("MoveFile"); err != nil {
		return err
	}
	return m.FileSystem.MoveFile(src, dst)
}

// RemoveFile is a mock implementation of FileSystemManager.RemoveFile.
func (m *MockFileSystem) RemoveFile(path string) error {
	if err := m.record("RemoveFile"); err != nil {
		return err
	}
	return m.FileSystem.RemoveFile(path)
}

// MakeDirectory is a mock implementation of FileSystemManager.MakeDirectory.
func (m *MockFileSystem) MakeDirectory(path string) error {
	if err := m.record("MakeDirectory"); err != nil {
		return err
	}
	return m.FileSystem.MakeDirectory(path)
}

// RemoveDirectory is a mock implementation of FileSystemManager.RemoveDirectory.
func (m *MockFileSystem) RemoveDirectory(path string) error {
	if err := m.record("RemoveDirectory"); err != nil {
		return err
	}
	return m.FileSystem.RemoveDirectory(path)
}
