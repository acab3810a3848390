package envcast

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resolve validates and converts the declared keys against an arbitrary
// input map. Keys are processed in declaration order and the first failure
// aborts the pass; the returned record is frozen only after every key
// succeeded, so no partial result is ever observable.
//
// The input map and options are never mutated.
func Resolve(keys []string, input map[string]string, opts *Options) (*Record, error) {
	specs := compileDefaults(opts)
	delim := opts.delimiter()
	validate := opts.validator()

	rec := newRecord(keys)
	for _, key := range keys {
		spec := specs[key] // zero value is kindNone
		if spec.kind == kindInvalid {
			return nil, errInvalidDefault(key)
		}

		raw, present := input[key]
		blank := strings.TrimSpace(raw) == ""
		if !present || blank {
			if spec.kind == kindNone {
				return nil, errMissingVariable(key)
			}
			value, err := spec.defaultValue(key)
			if err != nil {
				return nil, err
			}
			if err := runValidator(validate, key, value); err != nil {
				return nil, err
			}
			rec.set(key, value)
			continue
		}

		value, err := spec.convert(key, raw, delim)
		if err != nil {
			return nil, err
		}
		if err := runValidator(validate, key, value); err != nil {
			return nil, err
		}
		rec.set(key, value)
	}
	rec.freeze()
	return rec, nil
}

func runValidator(validate ValidatorFunc, key string, value any) error {
	if validate == nil {
		return nil
	}
	if err := validate(key, value); err != nil {
		return errCustomValidation(key, err)
	}
	return nil
}

// convert applies the key's conversion rule to a non-blank raw value.
func (s defaultSpec) convert(key, raw, delim string) (any, error) {
	switch s.kind {
	case kindNone, kindString:
		return raw, nil

	case kindNumber:
		f, ok := parseNumber(raw)
		if !ok {
			return nil, errNumberParse(key, raw)
		}
		return f, nil

	case kindBool:
		b, ok := parseBoolean(raw)
		if !ok {
			return nil, errBooleanParse(key, raw)
		}
		return b, nil

	case kindArray:
		return convertElements(key, splitList(raw, delim), s.elem)

	case kindObject:
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, errJSONParse(key, err)
		}
		if err := validateShape(key, parsed, s.obj, ""); err != nil {
			return nil, err
		}
		return parsed, nil

	default: // kindOpaque
		return raw, nil
	}
}

// defaultValue converts the declared default itself, used when the raw value
// is absent or blank. Scalars pass through in canonical form; array elements
// still go through the element rule so a typed slice comes out either way.
func (s defaultSpec) defaultValue(key string) (any, error) {
	switch s.kind {
	case kindString:
		return s.str, nil
	case kindNumber:
		return s.num, nil
	case kindBool:
		return s.b, nil
	case kindArray:
		elems := make([]string, 0, len(s.arr))
		for _, e := range s.arr {
			elems = append(elems, stringify(e))
		}
		return convertElements(key, elems, s.elem)
	case kindObject:
		return s.obj, nil
	default: // kindOpaque
		return stringify(s.raw), nil
	}
}

// splitList splits a raw array value on the delimiter, trims each element,
// and drops elements that end up empty.
func splitList(raw, delim string) []string {
	var out []string
	for _, part := range strings.Split(raw, delim) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// convertElements applies the scalar element rule to every element,
// producing a typed slice. A failed element names itself, not the whole
// array.
func convertElements(key string, elems []string, rule ElemKind) (any, error) {
	switch rule {
	case ElemNumber:
		out := make([]float64, 0, len(elems))
		for _, e := range elems {
			f, ok := parseNumber(e)
			if !ok {
				return nil, errArrayElementParse(key, ElemNumber, e)
			}
			out = append(out, f)
		}
		return out, nil

	case ElemBoolean:
		out := make([]bool, 0, len(elems))
		for _, e := range elems {
			b, ok := parseBoolean(e)
			if !ok {
				return nil, errArrayElementParse(key, ElemBoolean, e)
			}
			out = append(out, b)
		}
		return out, nil

	default:
		out := make([]string, len(elems))
		copy(out, elems)
		return out, nil
	}
}

// parseNumber parses a numeric string. Surrounding whitespace is tolerated;
// NaN is rejected.
func parseNumber(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseBoolean maps the lower-cased raw value through the boolean table.
func parseBoolean(raw string) (value, ok bool) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		return false, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
