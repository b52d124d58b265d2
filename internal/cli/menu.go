package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zoro11031/dirmanager/internal/common"
	"github.com/zoro11031/dirmanager/internal/config"
	"github.com/zoro11031/dirmanager/internal/ui"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Console messages of the session loop
const (
	MsgInvalidDirectory = "Invalid directory path."
	MsgInvalidOption    = "Invalid option."
)

// Menu provides an interactive menu interface
type Menu struct {
	ctx *SessionContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *SessionContext) *Menu {
	return &Menu{ctx: ctx}
}

// Show runs the session: it opens the working directory (prompting for it
// unless one is already open), then displays the menu and handles choices
// until the user exits or input ends.
func (m *Menu) Show() error {
	if m.ctx.Session == nil {
		if err := m.promptDirectory(); err != nil {
			return err
		}
	}
	m.ctx.RememberDirectory()

	for {
		m.displayMenu()

		choice, err := m.ctx.UI.PromptInput("Enter your choice:", "")
		if err != nil {
			if errors.Is(err, ui.ErrInputClosed) {
				return nil
			}
			return err
		}

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) || errors.Is(err, ui.ErrInputClosed) {
				return nil
			}
			m.ctx.UI.Error(err.Error())
		}
	}
}

// promptDirectory asks for and opens the working directory
func (m *Menu) promptDirectory() error {
	defaultDir := ""
	if m.ctx.UI.IsInteractive() {
		defaultDir = m.ctx.Config.GetOrDefault(config.KeyLastDirectory, "")
	}

	path, err := m.ctx.UI.PromptInput("Enter the path of the directory:", defaultDir)
	if err == nil {
		err = m.ctx.OpenDirectory(path)
	}
	if err != nil {
		m.ctx.UI.Error(MsgInvalidDirectory)
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	return nil
}

// displayMenu displays the main menu
func (m *Menu) displayMenu() {
	m.ctx.UI.Print("")
	m.ctx.UI.Print("Select an option:")
	for _, action := range GetAllActions() {
		m.ctx.UI.MenuItem(action.Choice, action.Label)
	}
}

// handleChoice processes the user's menu choice. Operation failures are
// returned for display; unknown choices are reported here.
func (m *Menu) handleChoice(choice string) error {
	n, err := common.ValidateMenuChoice(choice)
	if err != nil {
		m.ctx.Logger.Debug("rejected menu choice", zap.String("choice", choice), zap.Error(err))
		m.ctx.UI.Error(MsgInvalidOption)
		return nil
	}

	if n == exitChoice {
		return ErrExit
	}

	action := GetAllActions()[n-1]
	res, err := action.run(m)
	if err != nil {
		return err
	}

	Render(m.ctx.UI, res, nil)
	return nil
}
