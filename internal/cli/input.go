package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads the nonblank lines of a file.
func ReadLines(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// forEachInput applies fn to each line of input: the arguments joined
// into one line when present, otherwise the lines of --file, otherwise
// standard input.
func forEachInput(args []string, flags *Flags, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}

	if flags.File != "" {
		lines, err := ReadLines(flags.File)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := fn(line); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
