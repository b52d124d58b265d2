package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro11031/dirmanager/internal/config"
	"github.com/zoro11031/dirmanager/internal/operations"
	"github.com/zoro11031/dirmanager/internal/ui"
)

func init() {
	color.NoColor = true
}

// runSession drives a full menu session with scripted input lines
func runSession(t *testing.T, configPath string, lines ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	u := ui.NewWithIO(strings.NewReader(input), &out)

	ctx, err := NewSessionContextWithUI(Options{ConfigPath: configPath}, u)
	require.NoError(t, err)
	defer ctx.Close()

	err = NewMenu(ctx).Show()
	return out.String(), err
}

func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	state := make(map[string]string, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		require.NoError(t, err)
		state[e.Name()] = info.ModTime().String() + "/" + info.Mode().String()
	}
	return state
}

func TestStartAndExitMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	before := snapshot(t, dir)

	out, err := runSession(t, filepath.Join(t.TempDir(), "dm.conf"), dir, "8")
	require.NoError(t, err)

	assert.Equal(t, before, snapshot(t, dir))
	assert.Contains(t, out, "Enter the path of the directory:\n")
	assert.Contains(t, out, "\nSelect an option:\n1. Display directory contents\n")
	assert.Contains(t, out, "8. Exit\n")
	assert.Equal(t, 1, strings.Count(out, "Select an option:"))
}

func TestStartAndExitInHomeMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	t.Setenv("HOME", dir)
	before := snapshot(t, dir)

	_, err := runSession(t, "", dir, "8")
	require.NoError(t, err)

	assert.Equal(t, before, snapshot(t, dir))
}

func TestInvalidStartupDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	for _, path := range []string{filepath.Join(dir, "missing"), file, ""} {
		out, err := runSession(t, filepath.Join(t.TempDir(), "dm.conf"), path, "8")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReported)
		assert.ErrorIs(t, err, operations.ErrInvalidDirectory)
		assert.Contains(t, out, MsgInvalidDirectory)
		assert.NotContains(t, out, "Select an option:")
	}
}

func TestInvalidOptionsReloop(t *testing.T) {
	dir := t.TempDir()

	out, err := runSession(t, filepath.Join(t.TempDir(), "dm.conf"), dir, "abc", "9", "0", "", "8")
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, MsgInvalidOption+"\n"))
	assert.Equal(t, 5, strings.Count(out, "Select an option:"))
}

func TestEndOfInputEndsSession(t *testing.T) {
	dir := t.TempDir()

	// Input ends while the copy operation waits for its target name
	out, err := runSession(t, filepath.Join(t.TempDir(), "dm.conf"), dir, "2", "a.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the target file name:")
	assert.NotContains(t, out, "Error")
}

func TestFullSession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte(strings.Repeat("z", 42)), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.log"), nil, 0644))

	out, err := runSession(t, filepath.Join(t.TempDir(), "dm.conf"),
		dir,
		"5", "docs",
		"2", "a.txt", "c.txt",
		"3", "c.txt", filepath.Join("docs", "c.txt"),
		"7", "*.txt",
		"1",
		"4", "b.log",
		"6", "docs",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, operations.MsgDirectoryCreated)
	assert.Contains(t, out, operations.MsgCopied)
	assert.Contains(t, out, operations.MsgMoved)
	assert.Contains(t, out, operations.MsgFileDeleted)
	assert.Contains(t, out, "\nSearch results:\na.txt\n")
	assert.Contains(t, out, "\nDirectory contents:\n")
	assert.Regexp(t, `FILE\s+42\s+\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\s+a.txt`, out)
	assert.Regexp(t, `DIR\s+0\s+\S+ \S+\s+docs`, out)

	// docs still holds c.txt, so deleting it fails and the loop continues
	assert.Contains(t, out, "Error deleting directory: ")
	assert.Equal(t, 8, strings.Count(out, "Select an option:"))

	got, err := os.ReadFile(filepath.Join(dir, "docs", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("z", 42), string(got))
	assert.NoFileExists(t, filepath.Join(dir, "b.log"))
}

func TestOperationErrorsAreReported(t *testing.T) {
	dir := t.TempDir()

	out, err := runSession(t, filepath.Join(t.TempDir(), "dm.conf"),
		dir,
		"4", "missing.txt",
		"5", filepath.Join("..", "escape"),
		"7", "[",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Error deleting file: ")
	assert.Contains(t, out, "Error creating directory: ")
	assert.Contains(t, out, "Error searching for files: syntax error in pattern")
	assert.NoDirExists(t, filepath.Join(filepath.Dir(dir), "escape"))
}

func TestConfirmDelete(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	configPath := filepath.Join(t.TempDir(), "dm.conf")
	require.NoError(t, config.New(configPath).Set(config.KeyConfirmDelete, "true"))

	out, err := runSession(t, configPath, dir, "4", "keep.txt", "n", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete keep.txt? [y/N]")
	assert.Contains(t, out, MsgDeleteCancelled)
	assert.FileExists(t, target)

	out, err = runSession(t, configPath, dir, "4", "keep.txt", "y", "8")
	require.NoError(t, err)
	assert.Contains(t, out, operations.MsgFileDeleted)
	assert.NoFileExists(t, target)
}

func TestLastDirectoryRemembered(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "dm.conf")

	_, err := runSession(t, configPath, dir, "8")
	require.NoError(t, err)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, config.New(configPath).GetOrDefault(config.KeyLastDirectory, ""))
}

func TestLastDirectoryUnchangedIsNotRewritten(t *testing.T) {
	dir := t.TempDir()
	configDir := t.TempDir()
	configPath := filepath.Join(configDir, "dm.conf")

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	require.NoError(t, config.New(configPath).Set(config.KeyLastDirectory, abs))
	require.NoError(t, os.Remove(configPath+".lock"))
	before := snapshot(t, configDir)

	_, err = runSession(t, configPath, dir, "8")
	require.NoError(t, err)

	assert.Equal(t, before, snapshot(t, configDir))
	assert.NoFileExists(t, configPath+".lock")
}

func TestIsWithin(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"file in dir", filepath.Join(dir, "dm.conf"), true},
		{"nested file", filepath.Join(dir, "sub", "dm.conf"), true},
		{"dir itself", dir, true},
		{"sibling", filepath.Join(filepath.Dir(dir), "other", "dm.conf"), false},
		{"prefix sibling", dir + "-x", false},
		{"parent", filepath.Join(filepath.Dir(dir), "dm.conf"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWithin(dir, tt.path))
		})
	}
}

func TestSearchIgnoreCaseFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "UPPER.TXT"), nil, 0644))

	configPath := filepath.Join(t.TempDir(), "dm.conf")
	require.NoError(t, config.New(configPath).Set(config.KeySearchIgnoreCase, "true"))

	out, err := runSession(t, configPath, dir, "7", "*.txt", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Search results:\nUPPER.TXT\n")
}

func TestGetAllActions(t *testing.T) {
	actions := GetAllActions()
	require.Len(t, actions, 8)

	for i, a := range actions {
		assert.Equal(t, i+1, a.Choice)
		assert.NotEmpty(t, a.Label)
		if a.Choice == exitChoice {
			assert.Nil(t, a.run)
		} else {
			assert.NotNil(t, a.run)
		}
	}
}
