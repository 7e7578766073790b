package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword reads a password from a TTY without echo.
var readPassword = term.ReadPassword

// terminalFd reports whether a file descriptor is a TTY.
var terminalFd = term.IsTerminal

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptString asks for a non-empty string value.
func promptString(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// promptPassword asks for a password, suppressing echo when stdin is a
// TTY and falling back to a plain line read otherwise.
func promptPassword(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	fd := int(os.Stdin.Fd())
	if terminalFd(fd) {
		data, err := readPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		if len(data) == 0 {
			return "", fmt.Errorf("missing input for %s", label)
		}
		return string(data), nil
	}
	line, err := readLine(reader)
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("missing input for %s", label)
	}
	return line, nil
}

// promptYesNo prompts for a yes/no response, defaulting to no.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string) (bool, error) {
	for {
		fmt.Fprintf(out, "%s [y/N]: ", label)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid response %q", line)
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}
