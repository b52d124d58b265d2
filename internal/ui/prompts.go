package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInputClosed is returned by prompts when input ends (EOF or Ctrl-C)
var ErrInputClosed = errors.New("input closed")

func translatePromptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	return err
}

// readLine prints the prompt on its own line and reads one answer line.
// A final line without a newline is still returned.
func (u *UI) readLine(prompt string) (string, error) {
	fmt.Fprintln(u.output, prompt)

	line, err := u.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", translatePromptErr(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.reader != nil {
		suffix := " [y/N]"
		if defaultYes {
			suffix = " [Y/n]"
		}
		answer, err := u.readLine(prompt + suffix)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, translatePromptErr(err)
}

// PromptInput prompts the user for text input. An empty answer yields
// defaultValue.
func (u *UI) PromptInput(prompt, defaultValue string) (string, error) {
	if u.reader != nil {
		answer, err := u.readLine(prompt)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return defaultValue, nil
		}
		return answer, nil
	}

	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result)
	return result, translatePromptErr(err)
}
