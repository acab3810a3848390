package envcast

import "fmt"

// ErrorKind identifies which validation rule a key failed.
type ErrorKind int

const (
	// KindMissingVariable: the key has no usable raw value and no default.
	KindMissingVariable ErrorKind = iota
	// KindInvalidDefault: the key was declared with a nil default value.
	KindInvalidDefault
	// KindNumberParse: the raw value is not a valid number.
	KindNumberParse
	// KindBooleanParse: the raw value is not in the boolean table.
	KindBooleanParse
	// KindArrayElementParse: one array element failed scalar conversion.
	KindArrayElementParse
	// KindJSONParse: the raw value is not a valid JSON document.
	KindJSONParse
	// KindMissingProperty: the parsed object lacks a property of the default.
	KindMissingProperty
	// KindTypeMismatch: a property's type differs from the default's.
	KindTypeMismatch
	// KindCustomValidation: the user-supplied validator rejected the value.
	KindCustomValidation
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingVariable:
		return "MissingVariable"
	case KindInvalidDefault:
		return "InvalidDefault"
	case KindNumberParse:
		return "NumberParse"
	case KindBooleanParse:
		return "BooleanParse"
	case KindArrayElementParse:
		return "ArrayElementParse"
	case KindJSONParse:
		return "JsonParse"
	case KindMissingProperty:
		return "MissingProperty"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindCustomValidation:
		return "CustomValidationFailure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single failure a Resolve call reports. Resolution is
// fail-fast: the first failing key, in declaration order, determines the
// error and no later keys are checked.
type Error struct {
	Kind ErrorKind
	Key  string
	msg  string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.msg }

func errMissingVariable(key string) *Error {
	return &Error{
		Kind: KindMissingVariable,
		Key:  key,
		msg:  fmt.Sprintf("Missing environment variable: %s", key),
	}
}

func errInvalidDefault(key string) *Error {
	return &Error{
		Kind: KindInvalidDefault,
		Key:  key,
		msg:  fmt.Sprintf("Invalid default value for key %s: undefined is not allowed", key),
	}
}

func errNumberParse(key, raw string) *Error {
	return &Error{
		Kind: KindNumberParse,
		Key:  key,
		msg:  fmt.Sprintf("Failed to parse %s as number: %s", key, raw),
	}
}

func errBooleanParse(key, raw string) *Error {
	return &Error{
		Kind: KindBooleanParse,
		Key:  key,
		msg:  fmt.Sprintf("Failed to parse %s as boolean: %s", key, raw),
	}
}

func errArrayElementParse(key string, elem ElemKind, raw string) *Error {
	return &Error{
		Kind: KindArrayElementParse,
		Key:  key,
		msg:  fmt.Sprintf("Failed to parse %s array element as %s: %s", key, elem, raw),
	}
}

func errJSONParse(key string, cause error) *Error {
	return &Error{
		Kind: KindJSONParse,
		Key:  key,
		msg:  fmt.Sprintf("Failed to parse %s as JSON: %s", key, cause.Error()),
	}
}

func errMissingProperty(key, path string) *Error {
	return &Error{
		Kind: KindMissingProperty,
		Key:  key,
		msg:  fmt.Sprintf("Missing required property %s.%s", key, path),
	}
}

func errTypeMismatch(key, path, expected, actual string) *Error {
	loc := key
	if path != "" {
		loc = key + "." + path
	}
	return &Error{
		Kind: KindTypeMismatch,
		Key:  key,
		msg:  fmt.Sprintf("Invalid type for %s: expected %s, got %s", loc, expected, actual),
	}
}

func errCustomValidation(key string, cause error) *Error {
	msg := cause.Error()
	if msg == "" {
		msg = fmt.Sprintf("validation failed for key %s", key)
	}
	return &Error{
		Kind: KindCustomValidation,
		Key:  key,
		msg:  msg,
	}
}
