// Package dispatch maps named remote operations onto typed client calls.
//
// An Operation is declared once with Define: a parameter schema, a build
// function turning a parameter bag into the typed request, and the client
// method to call. The Dispatcher then runs every invocation through the same
// steps: validation, projection check, request build, confirmation, the
// client call (following pages where declared), error translation and
// output projection.
package dispatch

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Impact is the confirmation severity declared by an operation.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh
)

func (i Impact) String() string {
	switch i {
	case ImpactNone:
		return "none"
	case ImpactLow:
		return "low"
	case ImpactMedium:
		return "medium"
	case ImpactHigh:
		return "high"
	default:
		return fmt.Sprintf("Impact(%d)", int(i))
	}
}

// ParseImpact parses a case-insensitive impact name
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "never":
		return ImpactNone, nil
	case "low":
		return ImpactLow, nil
	case "medium":
		return ImpactMedium, nil
	case "high", "":
		return ImpactHigh, nil
	default:
		return ImpactNone, fmt.Errorf("invalid confirmation impact: %q (supported: none, low, medium, high)", s)
	}
}

// ParamKind is the value type of a parameter
type ParamKind int

const (
	KindString ParamKind = iota
	KindInt
	KindBool
	KindStringList
	KindStringMap
	KindJSON
)

func (k ParamKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindStringList:
		return "list"
	case KindStringMap:
		return "map"
	case KindJSON:
		return "json"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Param describes one input parameter of an operation
type Param struct {
	// Name is the kebab-case parameter name, e.g. "service-identifier"
	Name string

	// Kind is the value type
	Kind ParamKind

	// Required marks parameters that must be bound before any remote call
	Required bool

	// Usage is the one-line help text
	Usage string

	// Enum restricts string values to a fixed set (optional)
	Enum []string
}

// Mandatory returns a copy of p marked as required.
func (p Param) Mandatory() Param {
	p.Required = true
	return p
}

// OneOf returns a copy of p restricted to values.
func (p Param) OneOf(values ...string) Param {
	p.Enum = values
	return p
}

// Str declares a string parameter.
func Str(name, usage string) Param { return Param{Name: name, Kind: KindString, Usage: usage} }

// Int declares an integer parameter.
func Int(name, usage string) Param { return Param{Name: name, Kind: KindInt, Usage: usage} }

// Bool declares a boolean parameter.
func Bool(name, usage string) Param { return Param{Name: name, Kind: KindBool, Usage: usage} }

// List declares a string list parameter.
func List(name, usage string) Param { return Param{Name: name, Kind: KindStringList, Usage: usage} }

// Map declares a key=value map parameter.
func Map(name, usage string) Param { return Param{Name: name, Kind: KindStringMap, Usage: usage} }

// JSON declares a parameter carrying a JSON document.
func JSON(name, usage string) Param { return Param{Name: name, Kind: KindJSON, Usage: usage} }

// Spec is the non-generic part of an operation descriptor.
type Spec struct {
	// Name is the remote operation name, e.g. "CreateService"
	Name string

	// Command is the CLI command name, e.g. "create-service"
	Command string

	// Summary is a one-line description
	Summary string

	// Params is the input parameter schema
	Params []Param

	// Impact decides whether confirmation is required
	Impact Impact

	// DefaultSelect is the projection used when the caller selects nothing
	DefaultSelect string

	// Target names the parameter that identifies the affected resource
	Target string

	// Items names the list field merged across pages; empty when the
	// operation is not paginated
	Items string
}

// Param returns the declared parameter with the given name.
func (s *Spec) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Paginated reports whether the operation follows NextToken pages.
func (s *Spec) Paginated() bool {
	return s.Items != ""
}

// Option customizes a Spec
type Option func(*Spec)

// Summary sets the one-line description.
func Summary(text string) Option {
	return func(s *Spec) { s.Summary = text }
}

// Params appends parameters to the schema.
func Params(params ...Param) Option {
	return func(s *Spec) { s.Params = append(s.Params, params...) }
}

// WithImpact sets the confirmation impact.
func WithImpact(impact Impact) Option {
	return func(s *Spec) { s.Impact = impact }
}

// DefaultSelect sets the default projection.
func DefaultSelect(selector string) Option {
	return func(s *Spec) { s.DefaultSelect = selector }
}

// ConfirmTarget names the parameter shown in confirmation prompts.
func ConfirmTarget(param string) Option {
	return func(s *Spec) { s.Target = param }
}

// Paginated marks the operation as paginated over the given items field.
// The items field becomes the default projection unless one is set.
func Paginated(items string) Option {
	return func(s *Spec) {
		s.Items = items
		if s.DefaultSelect == "" || s.DefaultSelect == SelectAll {
			s.DefaultSelect = items
		}
	}
}

// Operation is an immutable descriptor binding a Spec to one client method.
type Operation[C any] struct {
	Spec

	outputType reflect.Type
	build      func(Values) (any, error)
	invoke     func(ctx context.Context, client C, req any) (any, error)
}

// Define declares an operation whose client method is call. The method
// expression of an SDK client interface fits directly:
//
//	dispatch.Define("GetService", API.GetService, buildGetService)
//
// Define panics when the declaration is inconsistent with the request or
// response types; descriptors are built once at startup.
func Define[C, In, Out, O any](
	name string,
	call func(C, context.Context, *In, ...O) (*Out, error),
	build func(Values) (*In, error),
	opts ...Option,
) *Operation[C] {
	op := &Operation[C]{
		Spec: Spec{
			Name:          name,
			Command:       CommandName(name),
			DefaultSelect: SelectAll,
		},
		outputType: reflect.TypeOf((*Out)(nil)).Elem(),
		build: func(v Values) (any, error) {
			return build(v)
		},
		invoke: func(ctx context.Context, client C, req any) (any, error) {
			return call(client, ctx, req.(*In))
		},
	}
	for _, opt := range opts {
		opt(&op.Spec)
	}

	seen := make(map[string]bool, len(op.Params))
	for _, p := range op.Params {
		if seen[p.Name] {
			panic(fmt.Sprintf("dispatch: %s declares parameter %q twice", name, p.Name))
		}
		seen[p.Name] = true
	}

	if op.Paginated() {
		inType := reflect.TypeOf((*In)(nil)).Elem()
		if !hasTokenField(inType) || !hasTokenField(op.outputType) {
			panic(fmt.Sprintf("dispatch: %s is paginated but lacks a NextToken field", name))
		}
		if f, ok := op.outputType.FieldByName(op.Items); !ok || f.Type.Kind() != reflect.Slice {
			panic(fmt.Sprintf("dispatch: %s is paginated but %s is not a list field", name, op.Items))
		}
	}
	if err := checkSelector(&op.Spec, op.outputType, op.DefaultSelect); err != nil {
		panic(fmt.Sprintf("dispatch: %s: %v", name, err))
	}

	return op
}

// CommandName converts an operation name to its kebab-case command name,
// e.g. "CreateServiceNetworkVpcAssociation" to
// "create-service-network-vpc-association".
func CommandName(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasTokenField(t reflect.Type) bool {
	f, ok := t.FieldByName("NextToken")
	return ok && f.Type == reflect.TypeOf((*string)(nil))
}
