package envcast

import "fmt"

// Issue describes a single validation failure surfaced by a Schema.
type Issue struct {
	Message string
}

// SchemaResult is the outcome of a Schema.Validate call. Exactly one of
// Value or Issues is set; Issues carries at most one element because the
// engine stops at the first failing key.
type SchemaResult struct {
	Value  *Record
	Issues []Issue
}

// Schema binds a key list and options into a reusable validate function
// over untyped input, decoupled from the process environment.
type Schema struct {
	keys []string
	opts *Options
}

// NewSchema builds a Schema for the given key list and options.
func NewSchema(keys []string, opts *Options) *Schema {
	ks := make([]string, len(keys))
	copy(ks, keys)
	return &Schema{keys: ks, opts: opts}
}

// Validate runs the engine against an arbitrary input object. The input
// must be a map of string keys to string (or stringifiable) values; any
// other shape is itself reported as an issue. Validation completes
// synchronously, there is no deferred or asynchronous outcome.
func (s *Schema) Validate(input any) SchemaResult {
	in, err := coerceInput(input)
	if err != nil {
		return SchemaResult{Issues: []Issue{{Message: err.Error()}}}
	}
	rec, err := Resolve(s.keys, in, s.opts)
	if err != nil {
		return SchemaResult{Issues: []Issue{{Message: err.Error()}}}
	}
	return SchemaResult{Value: rec}
}

func coerceInput(input any) (map[string]string, error) {
	switch v := input.(type) {
	case nil:
		return map[string]string{}, nil
	case map[string]string:
		return v, nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			if val == nil {
				continue // treated as absent
			}
			out[k] = stringify(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("schema input must be a map of strings, got %T", input)
	}
}
