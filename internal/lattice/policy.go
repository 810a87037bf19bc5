package lattice

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/vpclattice"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// policyDocument returns the bound policy after checking it is a JSON
// object. The document is sent verbatim.
func policyDocument(v dispatch.Values) (*string, error) {
	var doc map[string]any
	if _, err := v.DecodeJSON("policy", &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, &dispatch.InvalidParameterValueError{Parameter: "policy", Err: fmt.Errorf("policy must be a JSON object")}
	}

	text := v.Text("policy")
	if text == "" {
		// Bound programmatically as a decoded value.
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, &dispatch.InvalidParameterValueError{Parameter: "policy", Err: err}
		}
		text = string(b)
	}
	return &text, nil
}

func policyOperations() []*dispatch.Operation[API] {
	resource := dispatch.Str("resource-identifier", "The ID or ARN of the service network or service.").Mandatory()
	arn := dispatch.Str("resource-arn", "The ARN of the service network or service.").Mandatory()
	policy := dispatch.JSON("policy", "The policy document. Use file://path to read it from a file.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("PutAuthPolicy", API.PutAuthPolicy,
			func(v dispatch.Values) (*vpclattice.PutAuthPolicyInput, error) {
				doc, err := policyDocument(v)
				if err != nil {
					return nil, err
				}
				return &vpclattice.PutAuthPolicyInput{
					ResourceIdentifier: v.StringPtr("resource-identifier"),
					Policy:             doc,
				}, nil
			},
			dispatch.Summary("Creates or replaces the auth policy of a service or service network."),
			mutating,
			dispatch.ConfirmTarget("resource-identifier"),
			dispatch.Params(resource, policy),
		),

		dispatch.Define("GetAuthPolicy", API.GetAuthPolicy,
			func(v dispatch.Values) (*vpclattice.GetAuthPolicyInput, error) {
				return &vpclattice.GetAuthPolicyInput{
					ResourceIdentifier: v.StringPtr("resource-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves the auth policy of a service or service network."),
			dispatch.Params(resource),
		),

		dispatch.Define("DeleteAuthPolicy", API.DeleteAuthPolicy,
			func(v dispatch.Values) (*vpclattice.DeleteAuthPolicyInput, error) {
				return &vpclattice.DeleteAuthPolicyInput{
					ResourceIdentifier: v.StringPtr("resource-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes the auth policy of a service or service network."),
			destructive,
			dispatch.ConfirmTarget("resource-identifier"),
			dispatch.Params(resource),
		),

		dispatch.Define("PutResourcePolicy", API.PutResourcePolicy,
			func(v dispatch.Values) (*vpclattice.PutResourcePolicyInput, error) {
				doc, err := policyDocument(v)
				if err != nil {
					return nil, err
				}
				return &vpclattice.PutResourcePolicyInput{
					ResourceArn: v.StringPtr("resource-arn"),
					Policy:      doc,
				}, nil
			},
			dispatch.Summary("Attaches a resource-based permission policy for cross-account sharing."),
			mutating,
			dispatch.ConfirmTarget("resource-arn"),
			dispatch.Params(arn, policy),
		),

		dispatch.Define("GetResourcePolicy", API.GetResourcePolicy,
			func(v dispatch.Values) (*vpclattice.GetResourcePolicyInput, error) {
				return &vpclattice.GetResourcePolicyInput{
					ResourceArn: v.StringPtr("resource-arn"),
				}, nil
			},
			dispatch.Summary("Retrieves the resource-based permission policy."),
			dispatch.Params(arn),
		),

		dispatch.Define("DeleteResourcePolicy", API.DeleteResourcePolicy,
			func(v dispatch.Values) (*vpclattice.DeleteResourcePolicyInput, error) {
				return &vpclattice.DeleteResourcePolicyInput{
					ResourceArn: v.StringPtr("resource-arn"),
				}, nil
			},
			dispatch.Summary("Deletes the resource-based permission policy."),
			destructive,
			dispatch.ConfirmTarget("resource-arn"),
			dispatch.Params(arn),
		),
	}
}
