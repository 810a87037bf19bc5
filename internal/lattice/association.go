package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// associationOperations covers the two association kinds: a service joined
// to a service network, and a VPC joined to a service network.
func associationOperations() []*dispatch.Operation[API] {
	serviceAssoc := dispatch.Str("service-network-service-association-identifier", "The ID or ARN of the association.").Mandatory()
	vpcAssoc := dispatch.Str("service-network-vpc-association-identifier", "The ID or ARN of the association.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("CreateServiceNetworkServiceAssociation", API.CreateServiceNetworkServiceAssociation,
			func(v dispatch.Values) (*vpclattice.CreateServiceNetworkServiceAssociationInput, error) {
				return &vpclattice.CreateServiceNetworkServiceAssociationInput{
					ServiceIdentifier:        v.StringPtr("service-identifier"),
					ServiceNetworkIdentifier: v.StringPtr("service-network-identifier"),
					ClientToken:              clientToken(v),
					Tags:                     v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Associates a service with a service network."),
			mutating,
			dispatch.ConfirmTarget("service-identifier"),
			dispatch.Params(
				dispatch.Str("service-identifier", "The ID or ARN of the service.").Mandatory(),
				dispatch.Str("service-network-identifier", "The ID or ARN of the service network.").Mandatory(),
				clientTokenParam(),
				tagsParam(),
			),
		),

		dispatch.Define("GetServiceNetworkServiceAssociation", API.GetServiceNetworkServiceAssociation,
			func(v dispatch.Values) (*vpclattice.GetServiceNetworkServiceAssociationInput, error) {
				return &vpclattice.GetServiceNetworkServiceAssociationInput{
					ServiceNetworkServiceAssociationIdentifier: v.StringPtr("service-network-service-association-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about a service network and service association."),
			dispatch.Params(serviceAssoc),
		),

		dispatch.Define("ListServiceNetworkServiceAssociations", API.ListServiceNetworkServiceAssociations,
			func(v dispatch.Values) (*vpclattice.ListServiceNetworkServiceAssociationsInput, error) {
				return &vpclattice.ListServiceNetworkServiceAssociationsInput{
					ServiceIdentifier:        v.StringPtr("service-identifier"),
					ServiceNetworkIdentifier: v.StringPtr("service-network-identifier"),
					MaxResults:               v.Int32Ptr("max-results"),
					NextToken:                v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the associations between services and service networks."),
			dispatch.Paginated("Items"),
			dispatch.Params(
				dispatch.Str("service-identifier", "Filter by the ID or ARN of the service."),
				dispatch.Str("service-network-identifier", "Filter by the ID or ARN of the service network."),
			),
			pagingParams(),
		),

		dispatch.Define("DeleteServiceNetworkServiceAssociation", API.DeleteServiceNetworkServiceAssociation,
			func(v dispatch.Values) (*vpclattice.DeleteServiceNetworkServiceAssociationInput, error) {
				return &vpclattice.DeleteServiceNetworkServiceAssociationInput{
					ServiceNetworkServiceAssociationIdentifier: v.StringPtr("service-network-service-association-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes the association between a service and a service network."),
			destructive,
			dispatch.ConfirmTarget("service-network-service-association-identifier"),
			dispatch.Params(serviceAssoc),
		),

		dispatch.Define("CreateServiceNetworkVpcAssociation", API.CreateServiceNetworkVpcAssociation,
			func(v dispatch.Values) (*vpclattice.CreateServiceNetworkVpcAssociationInput, error) {
				return &vpclattice.CreateServiceNetworkVpcAssociationInput{
					ServiceNetworkIdentifier: v.StringPtr("service-network-identifier"),
					VpcIdentifier:            v.StringPtr("vpc-identifier"),
					SecurityGroupIds:         v.List("security-group-ids"),
					ClientToken:              clientToken(v),
					Tags:                     v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Associates a VPC with a service network."),
			mutating,
			dispatch.ConfirmTarget("vpc-identifier"),
			dispatch.Params(
				dispatch.Str("service-network-identifier", "The ID or ARN of the service network.").Mandatory(),
				dispatch.Str("vpc-identifier", "The ID of the VPC.").Mandatory(),
				dispatch.List("security-group-ids", "The security groups applied to the association."),
				clientTokenParam(),
				tagsParam(),
			),
		),

		dispatch.Define("GetServiceNetworkVpcAssociation", API.GetServiceNetworkVpcAssociation,
			func(v dispatch.Values) (*vpclattice.GetServiceNetworkVpcAssociationInput, error) {
				return &vpclattice.GetServiceNetworkVpcAssociationInput{
					ServiceNetworkVpcAssociationIdentifier: v.StringPtr("service-network-vpc-association-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about a service network and VPC association."),
			dispatch.Params(vpcAssoc),
		),

		dispatch.Define("ListServiceNetworkVpcAssociations", API.ListServiceNetworkVpcAssociations,
			func(v dispatch.Values) (*vpclattice.ListServiceNetworkVpcAssociationsInput, error) {
				return &vpclattice.ListServiceNetworkVpcAssociationsInput{
					ServiceNetworkIdentifier: v.StringPtr("service-network-identifier"),
					VpcIdentifier:            v.StringPtr("vpc-identifier"),
					MaxResults:               v.Int32Ptr("max-results"),
					NextToken:                v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the associations between VPCs and service networks."),
			dispatch.Paginated("Items"),
			dispatch.Params(
				dispatch.Str("service-network-identifier", "Filter by the ID or ARN of the service network."),
				dispatch.Str("vpc-identifier", "Filter by the ID of the VPC."),
			),
			pagingParams(),
		),

		dispatch.Define("UpdateServiceNetworkVpcAssociation", API.UpdateServiceNetworkVpcAssociation,
			func(v dispatch.Values) (*vpclattice.UpdateServiceNetworkVpcAssociationInput, error) {
				return &vpclattice.UpdateServiceNetworkVpcAssociationInput{
					ServiceNetworkVpcAssociationIdentifier: v.StringPtr("service-network-vpc-association-identifier"),
					SecurityGroupIds:                       v.List("security-group-ids"),
				}, nil
			},
			dispatch.Summary("Replaces the security groups of a service network and VPC association."),
			mutating,
			dispatch.ConfirmTarget("service-network-vpc-association-identifier"),
			dispatch.Params(
				vpcAssoc,
				dispatch.List("security-group-ids", "The security groups applied to the association.").Mandatory(),
			),
		),

		dispatch.Define("DeleteServiceNetworkVpcAssociation", API.DeleteServiceNetworkVpcAssociation,
			func(v dispatch.Values) (*vpclattice.DeleteServiceNetworkVpcAssociationInput, error) {
				return &vpclattice.DeleteServiceNetworkVpcAssociationInput{
					ServiceNetworkVpcAssociationIdentifier: v.StringPtr("service-network-vpc-association-identifier"),
				}, nil
			},
			dispatch.Summary("Disassociates a VPC from a service network."),
			destructive,
			dispatch.ConfirmTarget("service-network-vpc-association-identifier"),
			dispatch.Params(vpcAssoc),
		),
	}
}
