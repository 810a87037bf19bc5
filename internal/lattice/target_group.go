package lattice

import (
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"
	"github.com/aws/aws-sdk-go-v2/service/vpclattice/types"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

func targetGroupOperations() []*dispatch.Operation[API] {
	identifier := dispatch.Str("target-group-identifier", "The ID or ARN of the target group.").Mandatory()
	groupTypes := enum(types.TargetGroupType("").Values())

	return []*dispatch.Operation[API]{
		dispatch.Define("CreateTargetGroup", API.CreateTargetGroup,
			func(v dispatch.Values) (*vpclattice.CreateTargetGroupInput, error) {
				return &vpclattice.CreateTargetGroupInput{
					Name:        v.StringPtr("name"),
					Type:        types.TargetGroupType(v.Text("type")),
					Config:      buildTargetGroupConfig(v),
					ClientToken: clientToken(v),
					Tags:        v.Map("tags"),
				}, nil
			},
			dispatch.Summary("Creates a target group."),
			mutating,
			dispatch.ConfirmTarget("name"),
			dispatch.Params(
				dispatch.Str("name", "The name of the target group.").Mandatory(),
				dispatch.Str("type", "The type of target group.").Mandatory().OneOf(groupTypes...),
				clientTokenParam(),
				tagsParam(),
			),
			dispatch.Params(targetGroupConfigParams()...),
		),

		dispatch.Define("GetTargetGroup", API.GetTargetGroup,
			func(v dispatch.Values) (*vpclattice.GetTargetGroupInput, error) {
				return &vpclattice.GetTargetGroupInput{
					TargetGroupIdentifier: v.StringPtr("target-group-identifier"),
				}, nil
			},
			dispatch.Summary("Retrieves information about a target group."),
			dispatch.Params(identifier),
		),

		dispatch.Define("ListTargetGroups", API.ListTargetGroups,
			func(v dispatch.Values) (*vpclattice.ListTargetGroupsInput, error) {
				return &vpclattice.ListTargetGroupsInput{
					TargetGroupType: types.TargetGroupType(v.Text("target-group-type")),
					VpcIdentifier:   v.StringPtr("vpc-identifier"),
					MaxResults:      v.Int32Ptr("max-results"),
					NextToken:       v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists target groups."),
			dispatch.Paginated("Items"),
			dispatch.Params(
				dispatch.Str("target-group-type", "Filter by target group type.").OneOf(groupTypes...),
				dispatch.Str("vpc-identifier", "Filter by the ID of the VPC."),
			),
			pagingParams(),
		),

		dispatch.Define("UpdateTargetGroup", API.UpdateTargetGroup,
			func(v dispatch.Values) (*vpclattice.UpdateTargetGroupInput, error) {
				health := buildHealthCheck(v)
				if health == nil {
					return nil, &dispatch.MissingRequiredParameterError{Parameter: "health-check-*"}
				}
				return &vpclattice.UpdateTargetGroupInput{
					TargetGroupIdentifier: v.StringPtr("target-group-identifier"),
					HealthCheck:           health,
				}, nil
			},
			dispatch.Summary("Updates the health check configuration of a target group."),
			mutating,
			dispatch.ConfirmTarget("target-group-identifier"),
			dispatch.Params(identifier),
			dispatch.Params(healthCheckParams()...),
		),

		dispatch.Define("DeleteTargetGroup", API.DeleteTargetGroup,
			func(v dispatch.Values) (*vpclattice.DeleteTargetGroupInput, error) {
				return &vpclattice.DeleteTargetGroupInput{
					TargetGroupIdentifier: v.StringPtr("target-group-identifier"),
				}, nil
			},
			dispatch.Summary("Deletes a target group. Targets must be deregistered first."),
			destructive,
			dispatch.ConfirmTarget("target-group-identifier"),
			dispatch.Params(identifier),
		),

		dispatch.Define("RegisterTargets", API.RegisterTargets,
			func(v dispatch.Values) (*vpclattice.RegisterTargetsInput, error) {
				targets, err := buildTargets(v, "targets")
				if err != nil {
					return nil, err
				}
				return &vpclattice.RegisterTargetsInput{
					TargetGroupIdentifier: v.StringPtr("target-group-identifier"),
					Targets:               targets,
				}, nil
			},
			dispatch.Summary("Registers targets with a target group."),
			mutating,
			dispatch.ConfirmTarget("target-group-identifier"),
			dispatch.Params(
				identifier,
				dispatch.List("targets", "The targets as id or id:port, e.g. i-0123,10.0.0.7:8080,[2001:db8::1]:443.").Mandatory(),
			),
		),

		dispatch.Define("DeregisterTargets", API.DeregisterTargets,
			func(v dispatch.Values) (*vpclattice.DeregisterTargetsInput, error) {
				targets, err := buildTargets(v, "targets")
				if err != nil {
					return nil, err
				}
				return &vpclattice.DeregisterTargetsInput{
					TargetGroupIdentifier: v.StringPtr("target-group-identifier"),
					Targets:               targets,
				}, nil
			},
			dispatch.Summary("Deregisters targets from a target group."),
			destructive,
			dispatch.ConfirmTarget("target-group-identifier"),
			dispatch.Params(
				identifier,
				dispatch.List("targets", "The targets as id or id:port, e.g. i-0123,10.0.0.7:8080,[2001:db8::1]:443.").Mandatory(),
			),
		),

		dispatch.Define("ListTargets", API.ListTargets,
			func(v dispatch.Values) (*vpclattice.ListTargetsInput, error) {
				targets, err := buildTargets(v, "targets")
				if err != nil {
					return nil, err
				}
				if len(targets) == 0 {
					targets = nil
				}
				return &vpclattice.ListTargetsInput{
					TargetGroupIdentifier: v.StringPtr("target-group-identifier"),
					Targets:               targets,
					MaxResults:            v.Int32Ptr("max-results"),
					NextToken:             v.StringPtr(dispatch.NextTokenParam),
				}, nil
			},
			dispatch.Summary("Lists the targets of a target group."),
			dispatch.Paginated("Items"),
			dispatch.Params(
				identifier,
				dispatch.List("targets", "Only report the given targets, as id or id:port."),
			),
			pagingParams(),
		),
	}
}
