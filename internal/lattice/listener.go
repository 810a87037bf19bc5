package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"
	"github.com/aws/aws-sdk-go-v2/service/vpclattice/types"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

func listenerOperations() []*dispatch.Operation[API] {
	service := dispatch.Str("service-identifier", "The ID or ARN of the service.").Mandatory()
	listener := dispatch.Str("listener-identifier", "The ID or ARN of the listener.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("CreateListener", API.CreateListener,
			func(v dispatch.Values) (*vpclattice.CreateListenerInput, error) {
				action, err := requireAction(v, "default-action")
				if err != nil {
					return nil, err
				}
				return &vpclattice.CreateListenerInput{
					ServiceIdentifier: v.StringPtr("service-identifier"),
					Name:              v.StringPtr("name"),
					Protocol:          types.ListenerProtocol(v.Text("protocol")),
					Port:              v.Int32Ptr("port"),
					DefaultAction:     action,
					ClientToken:       clientToken(v),
					Tags:              v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Creates a listener for a service."),
			mutating,
			dispatch.ConfirmTarget("name"),
			dispatch.Params(
				service,
				dispatch.Str("name", "The name of the listener.").Mandatory(),
				dispatch.Str("protocol", "The listener protocol.").Mandatory().OneOf(enum(types.ListenerProtocol("").Values())...),
				dispatch.Int("port", "The listener port. Defaults to the protocol's well-known port."),
				clientTokenParam(),
				tagsParam(),
			),
			dispatch.Params(actionParams("default-action")...),
		),

		dispatch.Define("GetListener", API.GetListener,
			func(v dispatch.Values) (*vpclattice.GetListenerInput, error) {
				return &vpclattice.GetListenerInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about a listener."),
			dispatch.Params(service, listener),
		),

		dispatch.Define("ListListeners", API.ListListeners,
			func(v dispatch.Values) (*vpclattice.ListListenersInput, error) {
				return &vpclattice.ListListenersInput{
					ServiceIdentifier: v.StringPtr("service-identifier"),
					MaxResults:        v.Int32Ptr("max-results"),
					NextToken:         v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the listeners of a service."),
			dispatch.Paginated("Items"),
			dispatch.Params(service),
			pagingParams(),
		),

		dispatch.Define("UpdateListener", API.UpdateListener,
			func(v dispatch.Values) (*vpclattice.UpdateListenerInput, error) {
				action, err := requireAction(v, "default-action")
				if err != nil {
					return nil, err
				}
				return &vpclattice.UpdateListenerInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
					DefaultAction:      action,
				}, nil
			},
			dispatch.Summary("Replaces the default action of a listener."),
			mutating,
			dispatch.ConfirmTarget("listener-identifier"),
			dispatch.Params(service, listener),
			dispatch.Params(actionParams("default-action")...),
		),

		dispatch.Define("DeleteListener", API.DeleteListener,
			func(v dispatch.Values) (*vpclattice.DeleteListenerInput, error) {
				return &vpclattice.DeleteListenerInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes a listener."),
			destructive,
			dispatch.ConfirmTarget("listener-identifier"),
			dispatch.Params(service, listener),
		),
	}
}
