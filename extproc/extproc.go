// Package extproc keeps an external program open as an NLP pipe. Analyzers
// such as MeCab and FreeLing read one line of input and answer with a block
// of output lines; this package owns the process lifecycle (lazy start,
// restart on a broken pipe) and the line-oriented request/response cycle,
// leaving the record formats to the language packages built on top of it.
package extproc

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// ProcessError reports that the external process could not be started or
// stopped responding.
type ProcessError struct {
	Command string
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("external process %s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

var errEndOfOutput = errors.New("reached end of output")

const (
	// maxStartFailures consecutive failed spawns open the circuit
	// breaker, after which starts fail fast until restartCooldown has
	// passed.
	maxStartFailures = 3
	restartCooldown  = 30 * time.Second
)

// Pipe is one running external process, reduced to the operations the line
// protocol needs. Tests substitute fakes for the real exec-backed pipe.
type Pipe interface {
	// Send writes one line of input, appending the newline itself.
	Send(line string) error
	// ReadLine reads one output line without its trailing newline.
	// End of output is an error: these processes answer every line.
	ReadLine() (string, error)
	Close() error
}

// Wrapper keeps an external process open so text can be piped through it
// for NLP results. The process is not started when the Wrapper is created;
// it starts the first time it is needed. If the pipe breaks mid-exchange
// the process is restarted and the exchange retried once, with restarts
// gated by a circuit breaker so a persistently broken command fails fast
// instead of being respawned forever.
//
// A Wrapper serializes exchanges, so it is safe for concurrent use.
type Wrapper struct {
	name    string
	start   func() (Pipe, error)
	breaker *gobreaker.CircuitBreaker

	mu   sync.Mutex
	pipe Pipe
}

// New returns a Wrapper that runs command (a program name followed by its
// arguments) when first needed.
func New(command ...string) *Wrapper {
	return NewWithStarter(strings.Join(command, " "), func() (Pipe, error) {
		return startCommand(command)
	})
}

// NewWithStarter returns a Wrapper whose process is created by start. The
// name only appears in errors.
func NewWithStarter(name string, start func() (Pipe, error)) *Wrapper {
	return &Wrapper{
		name:  name,
		start: start,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    name,
			Timeout: restartCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxStartFailures
			},
		}),
	}
}

// Exchange sends one line of input and collects output lines until done
// reports that a line is the end-of-response sentinel. The sentinel line is
// not included in the result.
func (w *Wrapper) Exchange(line string, done func(string) bool) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	lines, err := w.exchange(line, done)
	if err == nil {
		return lines, nil
	}
	var perr *ProcessError
	if !errors.As(err, &perr) {
		return nil, err
	}
	// The pipe broke. Restart and run the exchange once more; a second
	// failure is final.
	w.shutdown()
	return w.exchange(line, done)
}

// Close shuts the external process down. The Wrapper remains usable: the
// next exchange starts a fresh process.
func (w *Wrapper) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shutdown()
}

func (w *Wrapper) exchange(line string, done func(string) bool) ([]string, error) {
	pipe, err := w.ensureStarted()
	if err != nil {
		return nil, err
	}
	if err := pipe.Send(line); err != nil {
		return nil, &ProcessError{Command: w.name, Err: err}
	}
	var lines []string
	for {
		out, err := pipe.ReadLine()
		if err != nil {
			return nil, &ProcessError{Command: w.name, Err: err}
		}
		if done(out) {
			return lines, nil
		}
		lines = append(lines, out)
	}
}

func (w *Wrapper) ensureStarted() (Pipe, error) {
	if w.pipe != nil {
		return w.pipe, nil
	}
	started, err := w.breaker.Execute(func() (interface{}, error) {
		return w.start()
	})
	if err != nil {
		return nil, &ProcessError{Command: w.name, Err: err}
	}
	w.pipe = started.(Pipe)
	return w.pipe, nil
}

func (w *Wrapper) shutdown() error {
	if w.pipe == nil {
		return nil
	}
	err := w.pipe.Close()
	w.pipe = nil
	return err
}
