package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// UI provides user interface methods
type UI struct {
	output io.Writer
	// reader is set when prompts read plain lines instead of driving a
	// terminal widget (piped input, tests)
	reader *bufio.Reader
	// Color functions
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorBold    *color.Color
	colorCyan    *color.Color
}

func newUI(w io.Writer) *UI {
	return &UI{
		output:       w,
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorBold:    color.New(color.Bold),
		colorCyan:    color.New(color.FgCyan, color.Bold),
	}
}

// New creates a UI on stdin/stdout. Interactive terminal prompts are used
// only when both ends are terminals.
func New() *UI {
	u := newUI(os.Stdout)
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		u.reader = bufio.NewReader(os.Stdin)
	}
	return u
}

// NewWithIO creates a UI that reads answers line by line from r and writes
// to w (useful for testing and scripted input)
func NewWithIO(r io.Reader, w io.Writer) *UI {
	u := newUI(w)
	u.reader = bufio.NewReader(r)
	return u
}

// NewWithWriter creates a UI with custom output writer and no input
func NewWithWriter(w io.Writer) *UI {
	return NewWithIO(strings.NewReader(""), w)
}

// IsInteractive reports whether prompts drive terminal widgets
func (u *UI) IsInteractive() bool {
	return u.reader == nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints an operation result message verbatim
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintln(u.output, msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message verbatim
func (u *UI) Error(msg string) {
	u.colorError.Fprintln(u.output, msg)
}

// Header prints a header with a box
func (u *UI) Header(title string) {
	width := 70
	border := strings.Repeat("=", width)

	u.colorCyan.Fprintln(u.output, border)
	u.colorCyan.Fprintf(u.output, "  %s\n", title)
	u.colorCyan.Fprintln(u.output, border)
}

// Separator prints a separator line
func (u *UI) Separator() {
	u.colorCyan.Fprintln(u.output, strings.Repeat("-", 70))
}

// Print prints a plain message without formatting
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}

// Printf prints a formatted plain message
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.output, format+"\n", args...)
}

// MenuItem prints a numbered menu line with a bold number
func (u *UI) MenuItem(number int, label string) {
	u.colorBold.Fprintf(u.output, "%d.", number)
	fmt.Fprintf(u.output, " %s\n", label)
}
