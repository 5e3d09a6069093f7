package console

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// PasswordReader prompts for a secret. A nil reader makes the console read
// the secret as a plain input line.
type PasswordReader func(prompt string) (string, error)

// TerminalPasswordReader reads masked input from the terminal behind fd.
func TerminalPasswordReader(fd int, out io.Writer) PasswordReader {
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		bytePassword, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(bytePassword)), nil
	}
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
