package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// openInput opens path, or stdin when path is empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("opening input file", err)
	}
	return f, nil
}

// readFirstLine returns the first non-blank, non-comment ("#"-prefixed)
// line of path (or stdin): the single-phrase input convention shared by
// the create and validate subcommands.
func readFirstLine(path string) (string, error) {
	f, err := openInput(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", ioError("reading input", err)
	}
	return "", ioError("reading input", io.EOF)
}

// readLines returns every non-blank, non-comment line of path. When path is
// empty (interactive stdin mode), reading stops at the first blank line
// instead of at EOF, so a user pasting shares one at a time can signal
// "done" without sending EOF on the terminal.
func readLines(path string) ([]string, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	interactive := path == ""
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			if interactive {
				break
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError("reading input", err)
	}
	return lines, nil
}
