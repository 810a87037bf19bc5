package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"
	"github.com/aws/aws-sdk-go-v2/service/vpclattice/types"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

func serviceOperations() []*dispatch.Operation[API] {
	authTypes := enum(types.AuthType("").Values())
	identifier := dispatch.Str("service-identifier", "The ID or ARN of the service.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("CreateService", API.CreateService,
			func(v dispatch.Values) (*vpclattice.CreateServiceInput, error) {
				return &vpclattice.CreateServiceInput{
					Name:             v.StringPtr("name"),
					AuthType:         types.AuthType(v.Text("auth-type")),
					CertificateArn:   v.StringPtr("certificate-arn"),
					CustomDomainName: v.StringPtr("custom-domain-name"),
					ClientToken:      clientToken(v),
					Tags:             v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Creates a service."),
			mutating,
			dispatch.ConfirmTarget("name"),
			dispatch.Params(
				dispatch.Str("name", "The name of the service.").Mandatory(),
				dispatch.Str("auth-type", "The type of IAM policy.").OneOf(authTypes...),
				dispatch.Str("certificate-arn", "The ARN of the certificate for HTTPS listeners."),
				dispatch.Str("custom-domain-name", "The custom domain name of the service."),
				clientTokenParam(),
				tagsParam(),
			),
		),

		dispatch.Define("GetService", API.GetService,
			func(v dispatch.Values) (*vpclattice.GetServiceInput, error) {
				return &vpclattice.GetServiceInput{
					ServiceIdentifier: v.StringPtr("service-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about a service."),
			dispatch.Params(identifier),
		),

		dispatch.Define("ListServices", API.ListServices,
			func(v dispatch.Values) (*vpclattice.ListServicesInput, error) {
				return &vpclattice.ListServicesInput{
					MaxResults: v.Int32Ptr("max-results"),
					NextToken:  v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the services owned by the caller or shared with the caller."),
			dispatch.Paginated("Items"),
			pagingParams(),
		),

		dispatch.Define("UpdateService", API.UpdateService,
			func(v dispatch.Values) (*vpclattice.UpdateServiceInput, error) {
				return &vpclattice.UpdateServiceInput{
					ServiceIdentifier: v.StringPtr("service-identifier"),
					AuthType:          types.AuthType(v.Text("auth-type")),
					CertificateArn:    v.StringPtr("certificate-arn"),
				}, nil
			},
			dispatch.Summary("Updates the auth type or certificate of a service."),
			mutating,
			dispatch.ConfirmTarget("service-identifier"),
			dispatch.Params(
				identifier,
				dispatch.Str("auth-type", "The type of IAM policy.").OneOf(authTypes...),
				dispatch.Str("certificate-arn", "The ARN of the certificate."),
			),
		),

		dispatch.Define("DeleteService", API.DeleteService,
			func(v dispatch.Values) (*vpclattice.DeleteServiceInput, error) {
				return &vpclattice.DeleteServiceInput{
					ServiceIdentifier: v.StringPtr("service-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes a service. Service network associations must be removed first."),
			destructive,
			dispatch.ConfirmTarget("service-identifier"),
			dispatch.Params(identifier),
		),
	}
}
