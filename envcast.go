// Package envcast validates and type-converts a flat set of named string
// inputs, typically environment variables, against a declared key list with
// optional typed defaults.
//
// Each declared default doubles as a type declaration: its runtime type
// selects the conversion rule for the key (number, boolean, array, JSON
// object, or plain string). Keys without a default are required raw strings.
// A successful resolve yields an immutable Record; the first failing key
// aborts the pass with a single descriptive error.
//
// The engine is pure and synchronous: it performs no I/O of its own and
// shares no state across invocations. Validate is the only function that
// touches ambient process state, and it merely snapshots the environment
// table before delegating to Resolve.
package envcast

import "github.com/specialistvlad/envcast/internal/envtable"

// Validate resolves the declared keys against the current process
// environment.
func Validate(keys []string, opts *Options) (*Record, error) {
	return Resolve(keys, envtable.Snapshot(), opts)
}
