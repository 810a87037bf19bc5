package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// ErrUnknownOperation is returned for operation names missing from the registry
var ErrUnknownOperation = errors.New("unknown operation")

// ErrInternal marks failures raised inside the dispatcher rather than by the
// remote service
var ErrInternal = errors.New("internal error")

// MissingRequiredParameterError reports an unbound required parameter.
type MissingRequiredParameterError struct {
	Operation string
	Parameter string
}

func (e *MissingRequiredParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Operation, e.Parameter)
}

// InvalidParameterValueError reports a bound value that cannot be used.
type InvalidParameterValueError struct {
	Operation string
	Parameter string
	Err       error
}

func (e *InvalidParameterValueError) Error() string {
	return fmt.Sprintf("%s: invalid value for parameter %q: %v", e.Operation, e.Parameter, e.Err)
}

func (e *InvalidParameterValueError) Unwrap() error {
	return e.Err
}

// InvalidProjectionSelectorError reports a selector that does not resolve
// against the operation's response or parameters.
type InvalidProjectionSelectorError struct {
	Operation string
	Selector  string
	Reason    string
}

func (e *InvalidProjectionSelectorError) Error() string {
	return fmt.Sprintf("%s: invalid selector %q: %s", e.Operation, e.Selector, e.Reason)
}

// CancelledError reports an invocation abandoned because its context ended.
type CancelledError struct {
	Operation string
	Err       error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s: operation cancelled: %v", e.Operation, e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

// RemoteServiceError wraps a failure returned by the remote client.
type RemoteServiceError struct {
	Operation string

	// Code is the service error code, e.g. "ResourceNotFoundException"
	Code string

	// StatusCode is the HTTP status code, when a response was received
	StatusCode int

	// RequestID is the service request id, when a response was received
	RequestID string

	// DNS is set when the endpoint host name could not be resolved
	DNS bool

	// Host is the unresolved host name (DNS failures only)
	Host string

	// Endpoint is the endpoint the client was configured with
	Endpoint string

	Err error
}

func (e *RemoteServiceError) Error() string {
	if !e.DNS {
		return e.Err.Error()
	}
	endpoint := e.Endpoint
	if endpoint == "" {
		endpoint = e.Host
	}
	return fmt.Sprintf("%s: could not resolve the service endpoint %s; check the configured region and endpoint URL", e.Err.Error(), endpoint)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// translateError classifies a client failure. Context cancellation becomes
// a CancelledError; anything else is wrapped in a RemoteServiceError.
func translateError(ctx context.Context, operation, endpoint string, err error) error {
	if err == nil {
		return nil
	}

	var cancelled *CancelledError
	if errors.As(err, &cancelled) || errors.Is(err, ErrInternal) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &CancelledError{Operation: operation, Err: ctxErr}
	}
	if errors.Is(err, context.Canceled) {
		return &CancelledError{Operation: operation, Err: context.Canceled}
	}

	remote := &RemoteServiceError{
		Operation: operation,
		Endpoint:  endpoint,
		Err:       err,
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		remote.DNS = true
		remote.Host = dnsErr.Name
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		remote.Code = apiErr.ErrorCode()
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		remote.StatusCode = respErr.HTTPStatusCode()
	}

	var awsRespErr *awshttp.ResponseError
	if errors.As(err, &awsRespErr) {
		remote.RequestID = awsRespErr.ServiceRequestID()
	}

	return remote
}
