// Package envtable reads the host process's environment variable table.
package envtable

import (
	"os"
	"strings"
)

// Snapshot copies the current process environment into a plain map. The
// copy is detached: later changes to the environment do not affect it, so a
// resolve pass sees one consistent input.
func Snapshot() map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		if i := strings.IndexByte(entry, '='); i > 0 {
			env[entry[:i]] = entry[i+1:]
		}
	}
	return env
}
