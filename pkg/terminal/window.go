// Package terminal implements the page's blocking dialogs on a terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Window prints alerts and reads confirmation answers line by line.
type Window struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// New creates a Window reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Window {
	return &Window{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Alert prints message on its own line.
func (w *Window) Alert(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, message)
}

// Confirm prints message and waits for an answer. Only an explicit yes
// (s, sim, y, yes) accepts; anything else, including end of input, declines.
func (w *Window) Confirm(message string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintf(w.out, "%s [s/N] ", message)

	line, err := w.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(w.out)
		return false
	}

	return isYes(line)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}

// AutoConfirm accepts every confirmation without asking and prints alerts.
type AutoConfirm struct {
	Out io.Writer
}

// Alert prints message on its own line.
func (a AutoConfirm) Alert(message string) {
	fmt.Fprintln(a.Out, message)
}

// Confirm always accepts.
func (a AutoConfirm) Confirm(string) bool {
	return true
}
