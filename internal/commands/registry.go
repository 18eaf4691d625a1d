package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[int]Command // menu key -> command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[int]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.Key()
	if key < 0 {
		return fmt.Errorf("invalid command key: %d", key)
	}
	if _, exists := r.cmds[key]; exists {
		return fmt.Errorf("command already registered: %d", key)
	}

	r.cmds[key] = c
	return nil
}

// Find looks up a command by menu key.
func (r *Registry) Find(key int) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[key]
	return cmd, ok
}

// All returns all commands in menu order: ascending keys, with 0 (exit)
// listed last.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]int, 0, len(r.cmds))
	for key := range r.cmds {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a == 0 || b == 0 {
			return b == 0 && a != 0
		}
		return a < b
	})

	result := make([]Command, len(keys))
	for i, key := range keys {
		result[i] = r.cmds[key]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
