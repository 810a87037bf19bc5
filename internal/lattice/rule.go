package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

func ruleOperations() []*dispatch.Operation[API] {
	service := dispatch.Str("service-identifier", "The ID or ARN of the service.").Mandatory()
	listener := dispatch.Str("listener-identifier", "The ID or ARN of the listener.").Mandatory()
	rule := dispatch.Str("rule-identifier", "The ID or ARN of the rule.").Mandatory()

	return []*dispatch.Operation[API]{
		dispatch.Define("CreateRule", API.CreateRule,
			func(v dispatch.Values) (*vpclattice.CreateRuleInput, error) {
				action, err := requireAction(v, "action")
				if err != nil {
					return nil, err
				}
				match, err := buildRuleMatch(v)
				if err != nil {
					return nil, err
				}
				if match == nil {
					return nil, &dispatch.MissingRequiredParameterError{Parameter: "match-*"}
				}
				return &vpclattice.CreateRuleInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
					Name:               v.StringPtr("name"),
					Priority:           v.Int32Ptr("priority"),
					Action:             action,
					Match:              match,
					ClientToken:        clientToken(v),
					Tags:               v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Creates a listener rule."),
			mutating,
			dispatch.ConfirmTarget("name"),
			dispatch.Params(
				service,
				listener,
				dispatch.Str("name", "The name of the rule.").Mandatory(),
				dispatch.Int("priority", "The rule priority; lower values are evaluated first.").Mandatory(),
				clientTokenParam(),
				tagsParam(),
			),
			dispatch.Params(actionParams("action")...),
			dispatch.Params(matchParams()...),
		),

		dispatch.Define("GetRule", API.GetRule,
			func(v dispatch.Values) (*vpclattice.GetRuleInput, error) {
				return &vpclattice.GetRuleInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
					RuleIdentifier:     v.StringPtr("rule-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about a listener rule."),
			dispatch.Params(service, listener, rule),
		),

		dispatch.Define("ListRules", API.ListRules,
			func(v dispatch.Values) (*vpclattice.ListRulesInput, error) {
				return &vpclattice.ListRulesInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
					MaxResults:         v.Int32Ptr("max-results"),
					NextToken:          v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the rules of a listener."),
			dispatch.Paginated("Items"),
			dispatch.Params(service, listener),
			pagingParams(),
		),

		dispatch.Define("UpdateRule", API.UpdateRule,
			func(v dispatch.Values) (*vpclattice.UpdateRuleInput, error) {
				action, err := buildRuleAction(v, "action")
				if err != nil {
					return nil, err
				}
				match, err := buildRuleMatch(v)
				if err != nil {
					return nil, err
				}
				return &vpclattice.UpdateRuleInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
					RuleIdentifier:     v.StringPtr("rule-identifier"),
					Priority:           v.Int32Ptr("priority"),
					Action:             action,
					Match:              match,
				}, nil
			},
			dispatch.Summary("Updates the action, match or priority of a listener rule."),
			mutating,
			dispatch.ConfirmTarget("rule-identifier"),
			dispatch.Params(
				service,
				listener,
				rule,
				dispatch.Int("priority", "The rule priority."),
			),
			dispatch.Params(actionParams("action")...),
			dispatch.Params(matchParams()...),
		),

		dispatch.Define("DeleteRule", API.DeleteRule,
			func(v dispatch.Values) (*vpclattice.DeleteRuleInput, error) {
				return &vpclattice.DeleteRuleInput{
					ServiceIdentifier:  v.StringPtr("service-identifier"),
					ListenerIdentifier: v.StringPtr("listener-identifier"),
					RuleIdentifier:     v.StringPtr("rule-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes a listener rule."),
			destructive,
			dispatch.ConfirmTarget("rule-identifier"),
			dispatch.Params(service, listener, rule),
		),
	}
}
