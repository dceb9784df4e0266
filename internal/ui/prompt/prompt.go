package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Defines the interface for prompting the user for input
type Prompter interface {
	// Asks the user for confirmation by requiring them to type a specific expected value
	Confirm(message string, expectedValue string) (bool, error)

	// Reads a single line of input after printing the label
	ReadLine(label string) (string, error)

	// Reads a line of input without echoing it back (secrets)
	ReadSecret(label string) (string, error)
}

// Provides a standard implementation of the Prompter interface using specified input/output streams
type StandardPrompter struct {
	raw    io.Reader
	reader *bufio.Reader
	writer io.Writer
}

// Creates a new StandardPrompter with the given input and output streams
func NewStandardPrompter(in io.Reader, out io.Writer) *StandardPrompter {
	return &StandardPrompter{
		raw:    in,
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Asks the user for confirmation by requiring them to type a specific expected value
func (p *StandardPrompter) Confirm(message string, expectedValue string) (bool, error) {
	if expectedValue == "" {
		return false, fmt.Errorf("expected confirmation value cannot be empty")
	}

	fmt.Fprintln(p.writer, message)
	fmt.Fprintf(p.writer, "To confirm, please type the name '%s': ", expectedValue)

	input, err := p.readLine()
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("error reading user input: %w", err)
	}

	return strings.TrimSpace(input) == expectedValue, nil
}

func (p *StandardPrompter) ReadLine(label string) (string, error) {
	fmt.Fprintf(p.writer, "%s: ", label)
	input, err := p.readLine()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading user input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// ReadSecret suppresses terminal echo when stdin is a terminal and falls back
// to a plain line read otherwise (pipes, tests).
func (p *StandardPrompter) ReadSecret(label string) (string, error) {
	fmt.Fprintf(p.writer, "%s: ", label)

	if f, ok := p.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.writer)
		if err != nil {
			return "", fmt.Errorf("error reading secret input: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	input, err := p.readLine()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading user input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func (p *StandardPrompter) readLine() (string, error) {
	return p.reader.ReadString('\n')
}
