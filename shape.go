package envcast

import "sort"

// validateShape checks that a parsed JSON value contains at least the
// properties of the default object, with matching type tags, recursing
// through nested objects. The default's shape is a minimum, not an exact
// schema: properties present only in the parsed value are ignored, and
// arrays inside the tree are compared by tag only.
//
// path is the dotted property trail below the record key, empty at the root.
func validateShape(key string, parsed, def any, path string) *Error {
	expected, actual := typeTag(def), typeTag(parsed)
	if expected != actual {
		return errTypeMismatch(key, path, expected, actual)
	}

	defObj, ok := def.(map[string]any)
	if !ok {
		return nil
	}
	parsedObj, ok := parsed.(map[string]any)
	if !ok {
		// Same tag but not a plain object on both sides (array, null);
		// tag equality is as deep as the check goes here.
		return nil
	}

	// Deterministic first-error selection: properties in sorted order.
	names := make([]string, 0, len(defObj))
	for name := range defObj {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		childPath := name
		if path != "" {
			childPath = path + "." + name
		}
		child, present := parsedObj[name]
		if !present {
			return errMissingProperty(key, childPath)
		}
		if err := validateShape(key, child, defObj[name], childPath); err != nil {
			return err
		}
	}
	return nil
}

// typeTag returns the dynamic type label used in shape diagnostics. The
// labels follow JSON value categories; arrays and null both tag as "object".
func typeTag(v any) string {
	switch v.(type) {
	case nil:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		if _, ok := toFloat(v); ok {
			return "number"
		}
		return "object"
	}
}
