package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"
	"github.com/aws/aws-sdk-go-v2/service/vpclattice/types"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

func serviceNetworkOperations() []*dispatch.Operation[API] {
	authTypes := enum(types.AuthType("").Values())
	identifier := dispatch.Str("service-network-identifier", "The ID or ARN of the service network.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("CreateServiceNetwork", API.CreateServiceNetwork,
			func(v dispatch.Values) (*vpclattice.CreateServiceNetworkInput, error) {
				return &vpclattice.CreateServiceNetworkInput{
					Name:        v.StringPtr("name"),
					AuthType:    types.AuthType(v.Text("auth-type")),
					ClientToken: clientToken(v),
					Tags:        v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Creates a service network."),
			mutating,
			dispatch.ConfirmTarget("name"),
			dispatch.Params(
				dispatch.Str("name", "The name of the service network.").Mandatory(),
				dispatch.Str("auth-type", "The type of IAM policy.").OneOf(authTypes...),
				clientTokenParam(),
				tagsParam(),
			),
		),

		dispatch.Define("GetServiceNetwork", API.GetServiceNetwork,
			func(v dispatch.Values) (*vpclattice.GetServiceNetworkInput, error) {
				return &vpclattice.GetServiceNetworkInput{
					ServiceNetworkIdentifier: v.StringPtr("service-network-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about a service network."),
			dispatch.Params(identifier),
		),

		dispatch.Define("ListServiceNetworks", API.ListServiceNetworks,
			func(v dispatch.Values) (*vpclattice.ListServiceNetworksInput, error) {
				return &vpclattice.ListServiceNetworksInput{
					MaxResults: v.Int32Ptr("max-results"),
					NextToken:  v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the service networks owned by or shared with the caller."),
			dispatch.Paginated("Items"),
			pagingParams(),
		),

		dispatch.Define("UpdateServiceNetwork", API.UpdateServiceNetwork,
			func(v dispatch.Values) (*vpclattice.UpdateServiceNetworkInput, error) {
				return &vpclattice.UpdateServiceNetworkInput{
					ServiceNetworkIdentifier: v.StringPtr("service-network-identifier"),
					AuthType:                 types.AuthType(v.Text("auth-type")),
				}, nil
			},
			dispatch.Summary("Updates the auth type of a service network."),
			mutating,
			dispatch.ConfirmTarget("service-network-identifier"),
			dispatch.Params(
				identifier,
				dispatch.Str("auth-type", "The type of IAM policy.").Mandatory().OneOf(authTypes...),
			),
		),

		dispatch.Define("DeleteServiceNetwork", API.DeleteServiceNetwork,
			func(v dispatch.Values) (*vpclattice.DeleteServiceNetworkInput, error) {
				return &vpclattice.DeleteServiceNetworkInput{
					ServiceNetworkIdentifier: v.StringPtr("service-network-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes a service network. Associations must be removed first."),
			destructive,
			dispatch.ConfirmTarget("service-network-identifier"),
			dispatch.Params(identifier),
		),
	}
}
