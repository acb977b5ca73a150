package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// DefaultPrompt is printed before each line in interactive sessions.
const DefaultPrompt = "citekit> "

// Shell reads command lines and dispatches them to registered commands.
type Shell struct {
	ctx      *Context
	registry *Registry
	prompt   string
}

// New creates a shell with the built-in commands registered.
func New(ctx *Context) *Shell {
	s := &Shell{
		ctx:      ctx,
		registry: NewRegistry(),
	}

	s.registry.Register(getLocaleCommand{})
	s.registry.Register(setLocaleCommand{})
	s.registry.Register(getStyleCommand{})
	s.registry.Register(setStyleCommand{})
	s.registry.Register(pagesCommand{})
	s.registry.Register(helpCommand{registry: s.registry})
	s.registry.Register(exitCommand{name: "exit"})
	s.registry.Register(exitCommand{name: "quit"})

	return s
}

// Context returns the session settings.
func (s *Shell) Context() *Context {
	return s.ctx
}

// Registry returns the command registry, for adding commands.
func (s *Shell) Registry() *Registry {
	return s.registry
}

// SetPrompt sets the prompt printed before each line. Empty disables it.
func (s *Shell) SetPrompt(prompt string) {
	s.prompt = prompt
}

// Exec runs a single command line. Blank lines are ignored.
func (s *Shell) Exec(line string, out io.Writer) error {
	words, err := shell.Fields(line, func(string) string { return "" })
	if err != nil {
		return fmt.Errorf("parse command line: %w", err)
	}
	if len(words) == 0 {
		return nil
	}

	cmd, args, ok := s.registry.Lookup(words)
	if !ok {
		return fmt.Errorf("%w: %s (try \"help\")", ErrUnknownCommand, strings.Join(words, " "))
	}
	return cmd.Run(s.ctx, args, out)
}

// Run executes lines from in until EOF, an exit command or ctx is
// cancelled. Command failures are printed and the session continues.
//
// When ctx is cancelled and in is an io.Closer, in is closed so the
// pending read returns. Other readers keep the reading goroutine blocked
// until they yield data or EOF.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if c, ok := in.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { c.Close() })
		defer stop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if s.prompt != "" {
			fmt.Fprint(out, s.prompt)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}

			err := s.Exec(line, out)
			if errors.Is(err, ErrExit) {
				return nil
			}
			if err != nil {
				slog.Debug("shell command failed", slog.String("line", line), slog.Any("error", err))
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}
