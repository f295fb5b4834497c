package engine

import (
	"context"
	"fmt"
)

// Command is one entry of the dispatch table.
type Command struct {
	Names      []string // first name is the canonical one
	Usage      string
	Summary    string
	NeedsIndex bool
	Run        func(ctx context.Context, arg string) error
}

type registry struct {
	byName  map[string]*Command
	ordered []*Command
}

func newRegistry() *registry {
	return &registry{byName: make(map[string]*Command)}
}

// register adds cmd under all of its names. A name collision is a
// programming error.
func (r *registry) register(cmd *Command) {
	for _, name := range cmd.Names {
		if _, exists := r.byName[name]; exists {
			panic(fmt.Sprintf("command with name '%s' already registered", name))
		}
		r.byName[name] = cmd
	}
	r.ordered = append(r.ordered, cmd)
}

func (r *registry) lookup(name string) (*Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// names returns every command name in registration order.
func (r *registry) names() []string {
	var out []string
	for _, cmd := range r.ordered {
		out = append(out, cmd.Names...)
	}
	return out
}
