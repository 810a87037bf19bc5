package dispatch

import (
	"encoding/json"
	"fmt"
	"sort"
)

// NextTokenParam is the parameter that, when bound, disables automatic
// page following.
const NextTokenParam = "next-token"

// Values is the bag of bound parameter values keyed by parameter name.
// Unbound optional parameters are absent rather than zero.
//
// Stored value types per kind: string (KindString, KindJSON), int (KindInt),
// bool (KindBool), []string (KindStringList), map[string]string
// (KindStringMap).
type Values map[string]any

// Has reports whether name is bound.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Names returns the bound parameter names in sorted order.
func (v Values) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text returns the string value of name, or "" when unbound.
func (v Values) Text(name string) string {
	s, _ := v[name].(string)
	return s
}

// StringPtr returns a pointer to the string value of name, or nil when unbound.
func (v Values) StringPtr(name string) *string {
	s, ok := v[name].(string)
	if !ok {
		return nil
	}
	return &s
}

// IntValue returns the integer value of name.
func (v Values) IntValue(name string) (int, bool) {
	switch n := v[name].(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// Int32Ptr returns a pointer to the int32 value of name, or nil when unbound.
// Int parameters are range-checked before the request is built.
func (v Values) Int32Ptr(name string) *int32 {
	n, ok := v.IntValue(name)
	if !ok {
		return nil
	}
	i := int32(n)
	return &i
}

// BoolPtr returns a pointer to the bool value of name, or nil when unbound.
func (v Values) BoolPtr(name string) *bool {
	b, ok := v[name].(bool)
	if !ok {
		return nil
	}
	return &b
}

// List returns the list value of name, or nil when unbound.
func (v Values) List(name string) []string {
	l, _ := v[name].([]string)
	return l
}

// Map returns the map value of name, or nil when unbound.
func (v Values) Map(name string) map[string]string {
	m, _ := v[name].(map[string]string)
	return m
}

// DecodeJSON unmarshals the JSON document bound to name into dst. It
// reports false without touching dst when name is unbound.
func (v Values) DecodeJSON(name string, dst any) (bool, error) {
	raw, ok := v[name]
	if !ok {
		return false, nil
	}

	var data []byte
	switch doc := raw.(type) {
	case string:
		data = []byte(doc)
	case []byte:
		data = doc
	default:
		// Already decoded by the caller (programmatic use); round-trip it.
		b, err := json.Marshal(doc)
		if err != nil {
			return true, &InvalidParameterValueError{Parameter: name, Err: err}
		}
		data = b
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return true, &InvalidParameterValueError{Parameter: name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return true, nil
}

// clone returns a shallow copy so an invocation never mutates the caller's bag.
func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
