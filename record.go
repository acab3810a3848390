package envcast

// Record is the immutable result of a successful resolve. It maps every
// declared key to its converted value and exposes read access only; the
// backing map is never handed out.
type Record struct {
	keys   []string
	values map[string]any
	frozen bool
}

func newRecord(keys []string) *Record {
	ks := make([]string, len(keys))
	copy(ks, keys)
	return &Record{
		keys:   ks,
		values: make(map[string]any, len(keys)),
	}
}

func (r *Record) set(key string, value any) {
	if r.frozen {
		panic("envcast: write to frozen record")
	}
	r.values[key] = value
}

func (r *Record) freeze() { r.frozen = true }

// Get returns the converted value for key and whether the key was resolved.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Value returns the converted value for key, or nil for unknown keys.
func (r *Record) Value(key string) any {
	return r.values[key]
}

// Keys returns the declared keys in declaration order.
func (r *Record) Keys() []string {
	ks := make([]string, len(r.keys))
	copy(ks, r.keys)
	return ks
}

// Len returns the number of resolved keys.
func (r *Record) Len() int { return len(r.values) }

// AsMap returns a fresh copy of the record's key/value pairs. Mutating the
// copy does not affect the record.
func (r *Record) AsMap() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
