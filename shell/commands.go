package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/randalmurphal/citekit/bibtex"
)

// Sentinel errors for shell commands.
var (
	// ErrExit is returned by the exit command to end the session.
	ErrExit = errors.New("exit")

	// ErrUnknownCommand indicates no registered command matches the input.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage indicates a command was called with the wrong arguments.
	ErrUsage = errors.New("usage")
)

// usageError reports the expected form of a command.
func usageError(form string) error {
	return fmt.Errorf("%w: %s", ErrUsage, form)
}

type getLocaleCommand struct{}

func (getLocaleCommand) Name() string        { return "get locale" }
func (getLocaleCommand) Description() string { return "Get the current citation locale" }

func (getLocaleCommand) Run(ctx *Context, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageError("get locale")
	}
	_, err := fmt.Fprintln(out, ctx.Locale())
	return err
}

type setLocaleCommand struct{}

func (setLocaleCommand) Name() string        { return "set locale" }
func (setLocaleCommand) Description() string { return "Set the citation locale (e.g. de-DE)" }

func (setLocaleCommand) Run(ctx *Context, args []string, _ io.Writer) error {
	if len(args) != 1 {
		return usageError("set locale <lang>")
	}
	return ctx.SetLocale(args[0])
}

type getStyleCommand struct{}

func (getStyleCommand) Name() string        { return "get style" }
func (getStyleCommand) Description() string { return "Get the current citation style" }

func (getStyleCommand) Run(ctx *Context, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageError("get style")
	}
	_, err := fmt.Fprintln(out, ctx.Style())
	return err
}

type setStyleCommand struct{}

func (setStyleCommand) Name() string        { return "set style" }
func (setStyleCommand) Description() string { return "Set the citation style (e.g. ieee)" }

func (setStyleCommand) Run(ctx *Context, args []string, _ io.Writer) error {
	if len(args) != 1 {
		return usageError("set style <name>")
	}
	ctx.SetStyle(args[0])
	return nil
}

type pagesCommand struct{}

func (pagesCommand) Name() string        { return "pages" }
func (pagesCommand) Description() string { return "Normalise page field values" }

func (pagesCommand) Run(_ *Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError("pages <value>...")
	}
	for _, raw := range args {
		pr, err := bibtex.ParsePage(raw)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, FormatPageRange(pr)); err != nil {
			return err
		}
	}
	return nil
}

// FormatPageRange renders a PageRange as a single human-readable line.
func FormatPageRange(pr bibtex.PageRange) string {
	count := "unknown"
	if n, ok := pr.Pages(); ok {
		count = strconv.Itoa(n)
	}
	return fmt.Sprintf("literal=%s page-first=%s number-of-pages=%s", pr.Literal, pr.PageFirst, count)
}

type helpCommand struct {
	registry *Registry
}

func (helpCommand) Name() string        { return "help" }
func (helpCommand) Description() string { return "List available commands" }

func (h helpCommand) Run(_ *Context, _ []string, out io.Writer) error {
	cmds := h.registry.Commands()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}

	var b strings.Builder
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
	_, err := io.WriteString(out, b.String())
	return err
}

type exitCommand struct {
	name string
}

func (c exitCommand) Name() string      { return c.name }
func (exitCommand) Description() string { return "Leave the shell" }

func (exitCommand) Run(_ *Context, _ []string, _ io.Writer) error {
	return ErrExit
}
