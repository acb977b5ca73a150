package shell

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Command is a shell command.
type Command interface {
	// Name is the command's words, e.g. "get locale".
	Name() string

	// Description is a one-line summary for help output.
	Description() string

	// Run executes the command with the words following its name.
	Run(ctx *Context, args []string, out io.Writer) error
}

// Registry maps command names to commands.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Panics if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := normalizeName(cmd.Name())
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("shell command %q already registered", name))
	}
	r.commands[name] = cmd
}

// Lookup finds the command whose name is the longest prefix of words and
// returns it with the remaining words.
func (r *Registry) Lookup(words []string) (Command, []string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for n := len(words); n > 0; n-- {
		if cmd, ok := r.commands[strings.Join(words[:n], " ")]; ok {
			return cmd, words[n:], true
		}
	}
	return nil, nil, false
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	cmds := make([]Command, len(names))
	for i, name := range names {
		cmds[i] = r.commands[name]
	}
	return cmds
}

// normalizeName collapses blanks between command words.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
