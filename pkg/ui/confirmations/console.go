// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsoleDialog asks yes/no questions on the console. The input side is
// injectable so tests can script answers.
type ConsoleDialog struct {
	in  io.Reader
	out io.Writer
}

// NewConsoleDialog creates a console dialog reading stdin and writing stdout
func NewConsoleDialog() *ConsoleDialog {
	return &ConsoleDialog{in: os.Stdin, out: os.Stdout}
}

// NewDialog creates a dialog over explicit reader and writer
func NewDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: in, out: out}
}

// Confirm shows prompt and reads one answer. Only "y" and "yes" (any case)
// count as approval; anything else, including EOF, declines.
func (d *ConsoleDialog) Confirm(prompt string) (bool, error) {
	fmt.Fprint(d.out, prompt)

	reader := bufio.NewReader(d.in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
