// Package prompt resolves the password used by the securevar CLI.
//
// A Resolver tries, in order: an explicit password (usually from
// SECUREVAR_PASSWORD), the OS keyring, and an interactive terminal prompt.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoPassword indicates no source produced a password.
var ErrNoPassword = errors.New("no password available")

// ReadFunc reads a password after printing prompt.
type ReadFunc func(prompt string) (string, error)

// Terminal returns a ReadFunc that prompts on out and reads from the terminal
// on fd without echoing.
func Terminal(fd int, out io.Writer) ReadFunc {
	return func(prompt string) (string, error) {
		if !term.IsTerminal(fd) {
			return "", ErrNoPassword
		}

		fmt.Fprint(out, prompt)
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}
}

// Stdin returns a terminal ReadFunc for the process's standard input.
func Stdin() ReadFunc {
	return Terminal(int(os.Stdin.Fd()), os.Stderr)
}

// Resolver looks up a password.
type Resolver struct {
	// Password is returned as-is when not empty.
	Password string

	// Account is the keyring account, usually the vault path.
	// An empty Account skips the keyring.
	Account string

	// Read prompts for a password. Nil skips prompting.
	Read ReadFunc
}

// Resolve returns the first password any source yields.
func (r Resolver) Resolve(prompt string) (string, error) {
	if r.Password != "" {
		return r.Password, nil
	}

	if r.Account != "" {
		if password, err := GetPassword(r.Account); err == nil && password != "" {
			return password, nil
		}
	}

	if r.Read == nil {
		return "", ErrNoPassword
	}

	password, err := r.Read(prompt)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrNoPassword
	}
	return password, nil
}

// Confirm reads a password twice and fails if the entries differ.
func (r Resolver) Confirm() (string, error) {
	if r.Password != "" {
		return r.Password, nil
	}
	if r.Read == nil {
		return "", ErrNoPassword
	}

	first, err := r.Read("Enter password: ")
	if err != nil {
		return "", err
	}
	second, err := r.Read("Confirm password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}
	if first == "" {
		return "", ErrNoPassword
	}
	return first, nil
}
