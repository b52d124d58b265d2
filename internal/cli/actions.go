package cli

import (
	"fmt"

	"github.com/zoro11031/dirmanager/internal/config"
	"github.com/zoro11031/dirmanager/internal/operations"
)

// MsgDeleteCancelled is shown when a delete confirmation is declined
const MsgDeleteCancelled = "Delete cancelled."

// ActionInfo describes one menu entry
type ActionInfo struct {
	Choice int
	Label  string
	run    func(m *Menu) (*operations.Result, error)
}

// exitChoice ends the session
const exitChoice = 8

// GetAllActions returns the menu entries in display order
func GetAllActions() []ActionInfo {
	return []ActionInfo{
		{Choice: 1, Label: "Display directory contents", run: (*Menu).listContents},
		{Choice: 2, Label: "Copy a file", run: (*Menu).copyFile},
		{Choice: 3, Label: "Move a file", run: (*Menu).moveFile},
		{Choice: 4, Label: "Delete a file", run: (*Menu).deleteFile},
		{Choice: 5, Label: "Create a directory", run: (*Menu).createDirectory},
		{Choice: 6, Label: "Delete a directory", run: (*Menu).deleteDirectory},
		{Choice: 7, Label: "Search for a file", run: (*Menu).searchFiles},
		{Choice: exitChoice, Label: "Exit"},
	}
}

func (m *Menu) listContents() (*operations.Result, error) {
	return m.ctx.Session.List()
}

// promptPair asks for a source and a target name
func (m *Menu) promptPair() (string, string, error) {
	src, err := m.ctx.UI.PromptInput("Enter the source file name:", "")
	if err != nil {
		return "", "", err
	}
	dst, err := m.ctx.UI.PromptInput("Enter the target file name:", "")
	if err != nil {
		return "", "", err
	}
	return src, dst, nil
}

func (m *Menu) copyFile() (*operations.Result, error) {
	src, dst, err := m.promptPair()
	if err != nil {
		return nil, err
	}
	return m.ctx.Session.Copy(src, dst)
}

func (m *Menu) moveFile() (*operations.Result, error) {
	src, dst, err := m.promptPair()
	if err != nil {
		return nil, err
	}
	return m.ctx.Session.Move(src, dst)
}

// confirmDelete asks before a delete when CONFIRM_DELETE is enabled
func (m *Menu) confirmDelete(name string) (bool, error) {
	if !m.ctx.Config.GetBool(config.KeyConfirmDelete) {
		return true, nil
	}
	return m.ctx.UI.PromptYesNo(fmt.Sprintf("Delete %s?", name), false)
}

func (m *Menu) deleteFile() (*operations.Result, error) {
	name, err := m.ctx.UI.PromptInput("Enter the file name to delete:", "")
	if err != nil {
		return nil, err
	}
	ok, err := m.confirmDelete(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &operations.Result{Message: MsgDeleteCancelled}, nil
	}
	return m.ctx.Session.DeleteFile(name)
}

func (m *Menu) createDirectory() (*operations.Result, error) {
	name, err := m.ctx.UI.PromptInput("Enter the name of the new directory:", "")
	if err != nil {
		return nil, err
	}
	return m.ctx.Session.CreateDirectory(name)
}

func (m *Menu) deleteDirectory() (*operations.Result, error) {
	name, err := m.ctx.UI.PromptInput("Enter the name of the directory to delete:", "")
	if err != nil {
		return nil, err
	}
	ok, err := m.confirmDelete(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &operations.Result{Message: MsgDeleteCancelled}, nil
	}
	return m.ctx.Session.DeleteDirectory(name)
}

func (m *Menu) searchFiles() (*operations.Result, error) {
	pattern, err := m.ctx.UI.PromptInput("Enter the file name or extension to search for:", "")
	if err != nil {
		return nil, err
	}
	return m.ctx.Session.Search(pattern)
}
