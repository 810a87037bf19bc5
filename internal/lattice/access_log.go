package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

func accessLogOperations() []*dispatch.Operation[API] {
	identifier := dispatch.Str("access-log-subscription-identifier", "The ID or ARN of the access log subscription.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("CreateAccessLogSubscription", API.CreateAccessLogSubscription,
			func(v dispatch.Values) (*vpclattice.CreateAccessLogSubscriptionInput, error) {
				return &vpclattice.CreateAccessLogSubscriptionInput{
					ResourceIdentifier: v.StringPtr("resource-identifier"),
					DestinationArn:     v.StringPtr("destination-arn"),
					ClientToken:        clientToken(v),
					Tags:               v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Sends access logs of a service or service network to a destination."),
			mutating,
			dispatch.ConfirmTarget("resource-identifier"),
			dispatch.Params(
				dispatch.Str("resource-identifier", "The ID or ARN of the service network or service.").Mandatory(),
				dispatch.Str("destination-arn", "The ARN of the S3 bucket, log group or Firehose stream.").Mandatory(),
				clientTokenParam(),
				tagsParam(),
			),
		),

		dispatch.Define("GetAccessLogSubscription", API.GetAccessLogSubscription,
			func(v dispatch.Values) (*vpclattice.GetAccessLogSubscriptionInput, error) {
				return &vpclattice.GetAccessLogSubscriptionInput{
					AccessLogSubscriptionIdentifier: v.StringPtr("access-log-subscription-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about an access log subscription."),
			dispatch.Params(identifier),
		),

		dispatch.Define("ListAccessLogSubscriptions", API.ListAccessLogSubscriptions,
			func(v dispatch.Values) (*vpclattice.ListAccessLogSubscriptionsInput, error) {
				return &vpclattice.ListAccessLogSubscriptionsInput{
					ResourceIdentifier: v.StringPtr("resource-identifier"),
					MaxResults:         v.Int32Ptr("max-results"),
					NextToken:          v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the access log subscriptions of a service or service network."),
			dispatch.Paginated("Items"),
			dispatch.Params(
				dispatch.Str("resource-identifier", "The ID or ARN of the service network or service.").Mandatory(),
			),
			pagingParams(),
		),

		dispatch.Define("UpdateAccessLogSubscription", API.UpdateAccessLogSubscription,
			func(v dispatch.Values) (*vpclattice.UpdateAccessLogSubscriptionInput, error) {
				return &vpclattice.UpdateAccessLogSubscriptionInput{
					AccessLogSubscriptionIdentifier: v.StringPtr("access-log-subscription-identifier"),
					DestinationArn:                  v.StringPtr("destination-arn"),
				}, nil
			},
			dispatch.Summary("Changes the destination of an access log subscription."),
			mutating,
			dispatch.ConfirmTarget("access-log-subscription-identifier"),
			dispatch.Params(
				identifier,
				dispatch.Str("destination-arn", "The ARN of the new destination.").Mandatory(),
			),
		),

		dispatch.Define("DeleteAccessLogSubscription", API.DeleteAccessLogSubscription,
			func(v dispatch.Values) (*vpclattice.DeleteAccessLogSubscriptionInput, error) {
				return &vpclattice.DeleteAccessLogSubscriptionInput{
					AccessLogSubscriptionIdentifier: v.StringPtr("access-log-subscription-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes an access log subscription."),
			destructive,
			dispatch.ConfirmTarget("access-log-subscription-identifier"),
			dispatch.Params(identifier),
		),
	}
}
