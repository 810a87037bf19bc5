package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

func tagOperations() []*dispatch.Operation[API] {
	arn := dispatch.Str("resource-arn", "The ARN of the resource.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("TagResource", API.TagResource,
			func(v dispatch.Values) (*vpclattice.TagResourceInput, error) {
				return &vpclattice.TagResourceInput{
					ResourceArn: v.StringPtr("resource-arn"),
					Tags:        v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Adds the specified tags to a resource."),
			mutating,
			dispatch.ConfirmTarget("resource-arn"),
			dispatch.Params(
				arn,
				dispatch.Map("tags", "The tags to add, as key=value pairs.").Mandatory(),
			),
		),

		dispatch.Define("UntagResource", API.UntagResource,
			func(v dispatch.Values) (*vpclattice.UntagResourceInput, error) {
				return &vpclattice.UntagResourceInput{
					ResourceArn: v.StringPtr("resource-arn"),
					TagKeys:     v.List("tag-keys"),
				}, nil
			},
			dispatch.Summary("Removes the specified tags from a resource."),
			destructive,
			dispatch.ConfirmTarget("resource-arn"),
			dispatch.Params(
				arn,
				dispatch.List("tag-keys", "The tag keys to remove.").Mandatory(),
			),
		),

		dispatch.Define("ListTagsForResource", API.ListTagsForResource,
			func(v dispatch.Values) (*vpclattice.ListTagsForResourceInput, error) {
				return &vpclattice.ListTagsForResourceInput{
					ResourceArn: v.StringPtr("resource-arn"),
				}, nil
			},
			dispatch.Summary("Lists the tags of a resource."),
			dispatch.DefaultSelect("Tags"),
			dispatch.Params(arn),
		),
	}
}
