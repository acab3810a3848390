package envcast

// defaultKind discriminates the compiled form of a declared default.
type defaultKind int

const (
	kindNone defaultKind = iota
	kindString
	kindNumber
	kindBool
	kindArray
	kindObject
	kindOpaque  // unrecognized type, string coercion fallback
	kindInvalid // nil default, rejected when its key is processed
)

// defaultSpec is the compiled form of one key's declared default. Defaults
// are inspected once, when the resolve starts, so the per-key loop dispatches
// on a tag instead of re-probing runtime types.
type defaultSpec struct {
	kind defaultKind

	str string
	num float64
	b   bool

	elem ElemKind // array element conversion rule
	arr  []any    // declared array elements, normalized

	obj map[string]any

	raw any // kindOpaque only
}

// compileDefaults builds the per-key dispatch table from the options.
func compileDefaults(opts *Options) map[string]defaultSpec {
	if opts == nil || len(opts.Defaults) == 0 {
		return nil
	}
	specs := make(map[string]defaultSpec, len(opts.Defaults))
	for key, value := range opts.Defaults {
		specs[key] = compileDefault(value, opts.ArrayTypes[key])
	}
	return specs
}

func compileDefault(value any, hint ElemKind) defaultSpec {
	if value == nil {
		return defaultSpec{kind: kindInvalid}
	}
	switch v := value.(type) {
	case string:
		return defaultSpec{kind: kindString, str: v}
	case bool:
		return defaultSpec{kind: kindBool, b: v}
	case map[string]any:
		return defaultSpec{kind: kindObject, obj: v}
	case map[string]string:
		obj := make(map[string]any, len(v))
		for k, s := range v {
			obj[k] = s
		}
		return defaultSpec{kind: kindObject, obj: obj}
	}
	if f, ok := toFloat(value); ok {
		return defaultSpec{kind: kindNumber, num: f}
	}
	if arr, ok := toSlice(value); ok {
		return defaultSpec{kind: kindArray, elem: elemRule(arr, hint), arr: arr}
	}
	return defaultSpec{kind: kindOpaque, raw: value}
}

// elemRule resolves the element conversion rule for an array default: an
// explicit hint wins, then the runtime type of the first declared element,
// then identity (string).
func elemRule(arr []any, hint ElemKind) ElemKind {
	if hint != "" {
		return hint
	}
	if len(arr) == 0 {
		return ElemString
	}
	switch first := arr[0]; first.(type) {
	case string:
		return ElemString
	case bool:
		return ElemBoolean
	default:
		if _, ok := toFloat(first); ok {
			return ElemNumber
		}
		return ElemString
	}
}

// toFloat reports whether v is a numeric value and returns it as float64,
// the engine's canonical number type.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// toSlice normalizes the supported slice shapes to []any.
func toSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []bool:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []int64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}
