package envcast

// ElemKind names the scalar conversion rule applied to array elements.
type ElemKind string

const (
	ElemString  ElemKind = "string"
	ElemNumber  ElemKind = "number"
	ElemBoolean ElemKind = "boolean"
)

// ValidatorFunc is invoked once per key, after type conversion, with the
// key name and the converted value. Returning a non-nil error rejects the
// key and aborts the whole resolve.
type ValidatorFunc func(key string, value any) error

// Options configures a resolve pass. The zero value (or a nil *Options) is
// valid: every declared key is then a required raw string.
type Options struct {
	// Defaults maps keys to fallback values. The runtime type of each
	// default also fixes the target type for its key. A nil default value
	// is invalid and fails the resolve as soon as its key is processed.
	Defaults map[string]any

	// Validator, when set, runs after conversion for every key.
	Validator ValidatorFunc

	// Delimiter splits raw array values. Empty means ",".
	Delimiter string

	// ArrayTypes overrides the element conversion rule for keys whose
	// default is an array. It is the only way to get typed elements out of
	// an empty default array.
	ArrayTypes map[string]ElemKind
}

func (o *Options) delimiter() string {
	if o == nil || o.Delimiter == "" {
		return ","
	}
	return o.Delimiter
}

func (o *Options) validator() ValidatorFunc {
	if o == nil {
		return nil
	}
	return o.Validator
}
