package extproc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// processPipe is the exec-backed Pipe. Stderr is inherited so the wrapped
// tool's own diagnostics stay visible.
type processPipe struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

func startCommand(command []string) (Pipe, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("no command given")
	}
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("couldn't start %q: %w", strings.Join(command, " "), err)
	}
	return &processPipe{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}, nil
}

func (p *processPipe) Send(line string) error {
	_, err := io.WriteString(p.stdin, line+"\n")
	return err
}

func (p *processPipe) ReadLine() (string, error) {
	line, err := p.stdout.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", errEndOfOutput
		}
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// Close ends the process by closing its stdin; the wrapped tools exit when
// their input does. Wait reaps the process and releases the pipes.
func (p *processPipe) Close() error {
	err := p.stdin.Close()
	if waitErr := p.cmd.Wait(); err == nil {
		err = waitErr
	}
	return err
}

// Available reports whether program can be found on the PATH, so callers
// can fail early with a useful message instead of at first analysis.
func Available(program string) error {
	if _, err := exec.LookPath(program); err != nil {
		return fmt.Errorf("%s is not installed or not in PATH: %w", program, err)
	}
	return nil
}
