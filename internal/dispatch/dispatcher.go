package dispatch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nandemo-ya/latticectl/internal/logging"
)

// Confirmer asks the user whether a mutating operation may proceed
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Registry holds operation descriptors by name and command name
type Registry[C any] struct {
	byName  map[string]*Operation[C]
	ordered []*Operation[C]
}

// NewRegistry creates a registry holding ops.
func NewRegistry[C any](ops ...*Operation[C]) *Registry[C] {
	r := &Registry[C]{byName: make(map[string]*Operation[C])}
	for _, op := range ops {
		r.Register(op)
	}
	return r
}

// Register adds op. Duplicate names are a programming error and panic.
func (r *Registry[C]) Register(op *Operation[C]) {
	for _, key := range []string{op.Name, op.Command} {
		if _, exists := r.byName[key]; exists {
			panic(fmt.Sprintf("dispatch: operation %q registered twice", key))
		}
	}
	r.byName[op.Name] = op
	r.byName[op.Command] = op
	r.ordered = append(r.ordered, op)
}

// Lookup finds an operation by name ("GetService") or command ("get-service").
func (r *Registry[C]) Lookup(name string) (*Operation[C], bool) {
	op, ok := r.byName[name]
	return op, ok
}

// Operations returns all operations sorted by command name.
func (r *Registry[C]) Operations() []*Operation[C] {
	ops := make([]*Operation[C], len(r.ordered))
	copy(ops, r.ordered)
	sort.Slice(ops, func(i, j int) bool { return ops[i].Command < ops[j].Command })
	return ops
}

// Config holds Dispatcher settings
type Config struct {
	// Confirmer is asked before operations at or above Threshold. When nil,
	// such operations are declined unless forced.
	Confirmer Confirmer

	// Threshold is the lowest impact that requires confirmation.
	// ImpactNone disables confirmation entirely.
	Threshold Impact

	// Endpoint is the configured service endpoint, used in error hints
	Endpoint string

	// Middleware wraps the remote call; DefaultMiddleware when nil
	Middleware []Middleware
}

// Dispatcher runs invocations against a client handle. The client is only
// read, so one Dispatcher may serve concurrent invocations.
type Dispatcher[C any] struct {
	client   C
	registry *Registry[C]
	config   Config
	handler  Handler
}

// New creates a Dispatcher for client.
func New[C any](client C, registry *Registry[C], config Config) *Dispatcher[C] {
	middleware := config.Middleware
	if middleware == nil {
		middleware = DefaultMiddleware()
	}

	return &Dispatcher[C]{
		client:   client,
		registry: registry,
		config:   config,
		handler: chain(func(ctx context.Context, inv *Invocation) (any, error) {
			return inv.exec(ctx)
		}, middleware...),
	}
}

// Request is a caller's request to run one operation
type Request struct {
	// Operation is the operation or command name
	Operation string

	// Params holds the bound parameter values
	Params Values

	// Select is the projection selector; empty uses the operation default
	Select string

	// Force skips confirmation
	Force bool

	// NoPaginate returns only the first page of paginated operations
	NoPaginate bool
}

// Invocation is the per-call context of one request
type Invocation struct {
	ID         string
	Operation  string
	Params     Values
	Select     string
	Force      bool
	NoPaginate bool
	StartedAt  time.Time

	exec func(ctx context.Context) (any, error)
}

// Envelope is the outcome of one invocation
type Envelope struct {
	Operation    string
	InvocationID string

	// Payload is the projected response
	Payload any

	// Err is set when the invocation failed
	Err error

	// Declined is set when the user refused confirmation; no call was made
	Declined bool
}

// Dispatch runs one request and returns its envelope. It never panics on
// caller input; every failure is reported through Envelope.Err.
func (d *Dispatcher[C]) Dispatch(ctx context.Context, req Request) *Envelope {
	op, ok := d.registry.Lookup(req.Operation)
	if !ok {
		return &Envelope{
			Operation: req.Operation,
			Err:       fmt.Errorf("%w: %s", ErrUnknownOperation, req.Operation),
		}
	}

	inv := &Invocation{
		ID:         uuid.NewString(),
		Operation:  op.Name,
		Params:     req.Params.clone(),
		Select:     req.Select,
		Force:      req.Force,
		NoPaginate: req.NoPaginate,
		StartedAt:  time.Now(),
	}
	if inv.Select == "" {
		inv.Select = op.DefaultSelect
	}

	env := &Envelope{Operation: op.Name, InvocationID: inv.ID}
	ctx = logging.WithRequestID(logging.WithOperation(ctx, op.Name), inv.ID)
	logger := logging.FromContext(ctx)

	if err := op.validate(inv.Params); err != nil {
		env.Err = err
		return env
	}
	if err := checkSelector(&op.Spec, op.outputType, inv.Select); err != nil {
		env.Err = err
		return env
	}

	input, err := op.build(inv.Params)
	if err != nil {
		env.Err = op.buildError(err)
		return env
	}

	if !inv.Force && d.requiresConfirmation(op) {
		confirmed, err := d.confirm(ctx, op, inv.Params)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				env.Err = &CancelledError{Operation: op.Name, Err: ctxErr}
				return env
			}
			env.Err = fmt.Errorf("%s: confirmation failed: %w", op.Name, err)
			return env
		}
		if !confirmed {
			logger.Info("Operation skipped, confirmation declined")
			env.Declined = true
			return env
		}
	}

	if err := ctx.Err(); err != nil {
		env.Err = &CancelledError{Operation: op.Name, Err: err}
		return env
	}

	paginate := op.Paginated() && !inv.NoPaginate && !inv.Params.Has(NextTokenParam)
	inv.exec = func(ctx context.Context) (any, error) {
		out, err := op.invoke(ctx, d.client, input)
		if err != nil || !paginate {
			return out, err
		}
		return followPages(ctx, out, op.Items, func(token *string) (any, error) {
			setNextToken(input, token)
			return op.invoke(ctx, d.client, input)
		})
	}

	out, err := d.handler(ctx, inv)

	// Nothing is processed after cancellation, even a successful response.
	if ctxErr := ctx.Err(); ctxErr != nil {
		env.Err = &CancelledError{Operation: op.Name, Err: ctxErr}
		return env
	}
	if err != nil {
		env.Err = translateError(ctx, op.Name, d.config.Endpoint, err)
		return env
	}

	payload, err := project(&op.Spec, inv.Select, out, inv.Params)
	if err != nil {
		env.Err = err
		return env
	}
	env.Payload = payload
	return env
}

func (d *Dispatcher[C]) requiresConfirmation(op *Operation[C]) bool {
	if d.config.Threshold == ImpactNone || op.Impact == ImpactNone {
		return false
	}
	return op.Impact >= d.config.Threshold
}

func (d *Dispatcher[C]) confirm(ctx context.Context, op *Operation[C], params Values) (bool, error) {
	if d.config.Confirmer == nil {
		return false, nil
	}
	return d.config.Confirmer.Confirm(ctx, confirmationPrompt(&op.Spec, params))
}

func confirmationPrompt(spec *Spec, params Values) string {
	if spec.Target != "" {
		if target := params.Text(spec.Target); target != "" {
			return fmt.Sprintf("Perform %s on %q (impact: %s)?", spec.Name, target, spec.Impact)
		}
	}
	return fmt.Sprintf("Perform %s (impact: %s)?", spec.Name, spec.Impact)
}

// validate checks required parameters, value kinds and enum membership.
// Enum values matching case-insensitively are rewritten to their canonical form.
func (op *Operation[C]) validate(params Values) error {
	for _, p := range op.Params {
		if _, ok := params[p.Name]; !ok {
			if p.Required {
				return &MissingRequiredParameterError{Operation: op.Name, Parameter: p.Name}
			}
			continue
		}
		if err := checkKind(p, params[p.Name]); err != nil {
			return &InvalidParameterValueError{Operation: op.Name, Parameter: p.Name, Err: err}
		}
		if len(p.Enum) > 0 {
			canonical, ok := matchEnum(p.Enum, params.Text(p.Name))
			if !ok {
				return &InvalidParameterValueError{
					Operation: op.Name,
					Parameter: p.Name,
					Err:       fmt.Errorf("%q is not one of %s", params.Text(p.Name), strings.Join(p.Enum, ", ")),
				}
			}
			params[p.Name] = canonical
		}
	}

	for _, name := range params.Names() {
		if _, ok := op.Param(name); !ok {
			return &InvalidParameterValueError{Operation: op.Name, Parameter: name, Err: errors.New("unknown parameter")}
		}
	}
	return nil
}

// buildError attributes a build failure to the operation.
func (op *Operation[C]) buildError(err error) error {
	var missing *MissingRequiredParameterError
	if errors.As(err, &missing) {
		if missing.Operation == "" {
			missing.Operation = op.Name
		}
		return missing
	}
	var invalid *InvalidParameterValueError
	if errors.As(err, &invalid) {
		if invalid.Operation == "" {
			invalid.Operation = op.Name
		}
		return invalid
	}
	return &InvalidParameterValueError{Operation: op.Name, Parameter: "", Err: err}
}

func checkKind(p Param, value any) error {
	var ok bool
	switch p.Kind {
	case KindString:
		_, ok = value.(string)
	case KindJSON:
		switch value.(type) {
		case string, []byte:
			ok = true
		default:
			ok = value != nil
		}
	case KindInt:
		switch value.(type) {
		case int, int32, int64:
			n, _ := Values{p.Name: value}.IntValue(p.Name)
			if n < math.MinInt32 || n > math.MaxInt32 {
				return fmt.Errorf("%d is out of range", n)
			}
			ok = true
		}
	case KindBool:
		_, ok = value.(bool)
	case KindStringList:
		_, ok = value.([]string)
	case KindStringMap:
		_, ok = value.(map[string]string)
	}
	if !ok {
		return fmt.Errorf("expected a %s value, got %T", p.Kind, value)
	}
	return nil
}

func matchEnum(values []string, s string) (string, bool) {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
