package cardpointe

// Result is a parsed response payload, returned to the caller verbatim
// after the per-resource success check. The set of fields depends on
// the endpoint and the merchant configuration, so no schema is imposed.
type Result map[string]any

// Str returns the named field as a string, or "" if it is absent or
// not a string.
func (r Result) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int returns the named field as an int. JSON numbers decode as
// float64, so the value is truncated toward zero.
func (r Result) Int(key string) (int, bool) {
	f, ok := r[key].(float64)
	return int(f), ok
}

// Has reports whether the named field is present.
func (r Result) Has(key string) bool {
	_, ok := r[key]
	return ok
}
