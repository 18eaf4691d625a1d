package commands

import (
	"fmt"
	"strings"
)

// menuSeparator joins menu entries on one line.
const menuSeparator = " | "

// Menu returns the one-line menu for the registry.
// Format: "1. Add task | 2. Advance task | 3. Show board | 0. Exit"
func Menu(r *Registry) string {
	cmds := r.All()
	entries := make([]string, len(cmds))
	for i, cmd := range cmds {
		entries[i] = fmt.Sprintf("%d. %s", cmd.Key(), cmd.Synopsis())
	}
	return strings.Join(entries, menuSeparator)
}
