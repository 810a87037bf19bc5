package dispatch

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	// SelectAll projects the entire response unchanged
	SelectAll = "*"

	// echoPrefix marks a selector echoing an input parameter, e.g. "^name"
	echoPrefix = "^"
)

// checkSelector validates a selector against the operation before any
// remote call is made. Field paths are checked as far as the static
// response type allows; interface and map values are resolved at runtime,
// where a path the value does not have projects to nil.
func checkSelector(spec *Spec, out reflect.Type, selector string) error {
	switch {
	case selector == "" || selector == SelectAll:
		return nil
	case strings.HasPrefix(selector, echoPrefix):
		if _, ok := lookupParam(spec, strings.TrimPrefix(selector, echoPrefix)); !ok {
			return &InvalidProjectionSelectorError{
				Operation: spec.Name,
				Selector:  selector,
				Reason:    "no such input parameter",
			}
		}
		return nil
	}

	t := out
	for _, part := range strings.Split(selector, ".") {
		if part == "" {
			return &InvalidProjectionSelectorError{Operation: spec.Name, Selector: selector, Reason: "empty path segment"}
		}
		t = elemType(t)
		switch t.Kind() {
		case reflect.Interface, reflect.Map:
			return nil
		case reflect.Struct:
			f, ok := fieldByName(t, part)
			if !ok {
				return &InvalidProjectionSelectorError{
					Operation: spec.Name,
					Selector:  selector,
					Reason:    fmt.Sprintf("%s has no field %q", t.Name(), part),
				}
			}
			t = f.Type
		default:
			return &InvalidProjectionSelectorError{
				Operation: spec.Name,
				Selector:  selector,
				Reason:    fmt.Sprintf("cannot select %q from a %s value", part, t.Kind()),
			}
		}
	}
	return nil
}

// project applies a validated selector to a response.
func project(spec *Spec, selector string, out any, in Values) (any, error) {
	switch {
	case selector == "" || selector == SelectAll:
		return out, nil
	case strings.HasPrefix(selector, echoPrefix):
		p, _ := lookupParam(spec, strings.TrimPrefix(selector, echoPrefix))
		return in[p.Name], nil
	}

	v, err := resolve(reflect.ValueOf(out), strings.Split(selector, "."), false)
	if err != nil {
		return nil, &InvalidProjectionSelectorError{Operation: spec.Name, Selector: selector, Reason: err.Error()}
	}
	return v, nil
}

// resolve walks path through v. Pointers and interfaces are dereferenced,
// slices are enumerated member-wise, and a nil along the way yields nil.
// Once the walk has passed an interface or map, a missing field yields nil.
func resolve(v reflect.Value, path []string, dynamic bool) (any, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		if v.Kind() == reflect.Interface {
			dynamic = true
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, nil
	}
	if len(path) == 0 {
		return v.Interface(), nil
	}

	switch v.Kind() {
	case reflect.Struct:
		if f, ok := fieldByName(v.Type(), path[0]); ok {
			return resolve(v.FieldByIndex(f.Index), path[1:], dynamic)
		}
		if variant, ok := UnionVariant(v.Type()); ok {
			if normalizeName(variant) != normalizeName(path[0]) {
				return nil, nil
			}
			return resolve(v.FieldByName(unionValueField), path[1:], dynamic)
		}
		if dynamic {
			return nil, nil
		}
		return nil, fmt.Errorf("%s has no field %q", v.Type().Name(), path[0])
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			item, err := resolve(v.Index(i), path, dynamic)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot select %q from a map keyed by %s", path[0], v.Type().Key())
		}
		for _, key := range v.MapKeys() {
			if key.String() == path[0] {
				return resolve(v.MapIndex(key), path[1:], true)
			}
		}
		return nil, nil
	default:
		if dynamic {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot select %q from a %s value", path[0], v.Kind())
	}
}

const (
	unionMemberInfix = "Member"
	unionValueField  = "Value"
)

// UnionVariant reports the variant name of an SDK union member type such
// as RuleActionMemberForward ("Forward").
func UnionVariant(t reflect.Type) (string, bool) {
	if t.Kind() != reflect.Struct {
		return "", false
	}
	i := strings.LastIndex(t.Name(), unionMemberInfix)
	if i <= 0 || i+len(unionMemberInfix) == len(t.Name()) {
		return "", false
	}
	f, ok := t.FieldByName(unionValueField)
	if !ok || !f.IsExported() {
		return "", false
	}
	return t.Name()[i+len(unionMemberInfix):], true
}

func elemType(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}
}

// fieldByName finds an exported field, ignoring case and dashes so that
// "service-network-identifier" matches ServiceNetworkIdentifier.
func fieldByName(t reflect.Type, name string) (reflect.StructField, bool) {
	want := normalizeName(name)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() && normalizeName(f.Name) == want {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func lookupParam(spec *Spec, name string) (Param, bool) {
	want := normalizeName(name)
	for _, p := range spec.Params {
		if normalizeName(p.Name) == want {
			return p, true
		}
	}
	return Param{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", ""))
}
