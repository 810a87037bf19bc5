package lattice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/vpclattice/types"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// weightedTargetGroup is the JSON form accepted by --*-forward-target-groups.
// ID is a short alias of TargetGroupIdentifier.
type weightedTargetGroup struct {
	TargetGroupIdentifier string `json:"targetGroupIdentifier"`
	ID                    string `json:"id,omitempty"`
	Weight                *int32 `json:"weight,omitempty"`
}

func (tg weightedTargetGroup) identifier() string {
	if tg.TargetGroupIdentifier != "" {
		return tg.TargetGroupIdentifier
	}
	return tg.ID
}

// headerMatch is the JSON form accepted by --match-header-matches.
type headerMatch struct {
	Name          string `json:"name"`
	Exact         string `json:"exact,omitempty"`
	Prefix        string `json:"prefix,omitempty"`
	Contains      string `json:"contains,omitempty"`
	CaseSensitive *bool  `json:"caseSensitive,omitempty"`
}

func actionParams(prefix string) []dispatch.Param {
	return []dispatch.Param{
		dispatch.Int(prefix+"-fixed-response-status-code", "Respond with a fixed HTTP status code."),
		dispatch.JSON(prefix+"-forward-target-groups", `Forward to weighted target groups, as JSON [{"targetGroupIdentifier":"tg-1","weight":80}] or id=weight pairs tg-1=80,tg-2=20.`),
	}
}

// buildRuleAction assembles a RuleAction from the <prefix>-* parameters.
// It returns nil when none of them is bound.
func buildRuleAction(v dispatch.Values, prefix string) (types.RuleAction, error) {
	status := prefix + "-fixed-response-status-code"
	groups := prefix + "-forward-target-groups"

	switch {
	case v.Has(status) && v.Has(groups):
		return nil, &dispatch.InvalidParameterValueError{
			Parameter: status,
			Err:       fmt.Errorf("cannot be combined with --%s", groups),
		}
	case v.Has(status):
		return &types.RuleActionMemberFixedResponse{
			Value: types.FixedResponseAction{StatusCode: v.Int32Ptr(status)},
		}, nil
	case !v.Has(groups):
		return nil, nil
	}

	weighted, err := decodeTargetGroups(v, groups)
	if err != nil {
		return nil, err
	}

	tgs := make([]types.WeightedTargetGroup, 0, len(weighted))
	for _, tg := range weighted {
		id := tg.identifier()
		if id == "" {
			return nil, &dispatch.InvalidParameterValueError{Parameter: groups, Err: fmt.Errorf("targetGroupIdentifier is empty")}
		}
		tgs = append(tgs, types.WeightedTargetGroup{
			TargetGroupIdentifier: aws.String(id),
			Weight:                tg.Weight,
		})
	}

	return &types.RuleActionMemberForward{
		Value: types.ForwardAction{TargetGroups: tgs},
	}, nil
}

// decodeTargetGroups reads either a JSON list or comma separated
// id=weight pairs. The weight of a pair is optional.
func decodeTargetGroups(v dispatch.Values, name string) ([]weightedTargetGroup, error) {
	text, isText := v[name].(string)
	if !isText || strings.HasPrefix(strings.TrimSpace(text), "[") {
		var weighted []weightedTargetGroup
		if _, err := v.DecodeJSON(name, &weighted); err != nil {
			return nil, err
		}
		return weighted, nil
	}

	var weighted []weightedTargetGroup
	for _, pair := range strings.Split(text, ",") {
		id, raw, hasWeight := strings.Cut(strings.TrimSpace(pair), "=")
		tg := weightedTargetGroup{TargetGroupIdentifier: strings.TrimSpace(id)}
		if hasWeight {
			w, err := parseWeight(raw)
			if err != nil {
				return nil, &dispatch.InvalidParameterValueError{Parameter: name, Err: fmt.Errorf("%s: %w", tg.TargetGroupIdentifier, err)}
			}
			tg.Weight = w
		}
		weighted = append(weighted, tg)
	}
	return weighted, nil
}

func parseWeight(raw string) (*int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("weight %q is not an integer", raw)
	}
	w := int32(n)
	return &w, nil
}

// requireAction is buildRuleAction for operations that need an action.
func requireAction(v dispatch.Values, prefix string) (types.RuleAction, error) {
	action, err := buildRuleAction(v, prefix)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, &dispatch.MissingRequiredParameterError{Parameter: prefix + "-*"}
	}
	return action, nil
}

func matchParams() []dispatch.Param {
	return []dispatch.Param{
		dispatch.Str("match-method", "The HTTP method to match."),
		dispatch.Str("match-path-exact", "Match the request path exactly."),
		dispatch.Str("match-path-prefix", "Match the request path by prefix."),
		dispatch.Bool("match-path-case-sensitive", "Whether the path match is case sensitive."),
		dispatch.JSON("match-header-matches", `Header matches, e.g. [{"name":"x-env","exact":"beta"}].`),
	}
}

// buildRuleMatch assembles an HTTP RuleMatch from the match-* parameters.
// It returns nil when none of them is bound.
func buildRuleMatch(v dispatch.Values) (types.RuleMatch, error) {
	if !anyBound(v, "match-method", "match-path-exact", "match-path-prefix", "match-path-case-sensitive", "match-header-matches") {
		return nil, nil
	}

	match := types.HttpMatch{Method: v.StringPtr("match-method")}

	switch {
	case v.Has("match-path-exact") && v.Has("match-path-prefix"):
		return nil, &dispatch.InvalidParameterValueError{
			Parameter: "match-path-exact",
			Err:       fmt.Errorf("cannot be combined with --match-path-prefix"),
		}
	case v.Has("match-path-exact"):
		match.PathMatch = &types.PathMatch{
			Match:         &types.PathMatchTypeMemberExact{Value: v.Text("match-path-exact")},
			CaseSensitive: v.BoolPtr("match-path-case-sensitive"),
		}
	case v.Has("match-path-prefix"):
		match.PathMatch = &types.PathMatch{
			Match:         &types.PathMatchTypeMemberPrefix{Value: v.Text("match-path-prefix")},
			CaseSensitive: v.BoolPtr("match-path-case-sensitive"),
		}
	case v.Has("match-path-case-sensitive"):
		return nil, &dispatch.MissingRequiredParameterError{Parameter: "match-path-*"}
	}

	var headers []headerMatch
	if _, err := v.DecodeJSON("match-header-matches", &headers); err != nil {
		return nil, err
	}
	for _, h := range headers {
		hm, err := h.toSDK()
		if err != nil {
			return nil, &dispatch.InvalidParameterValueError{Parameter: "match-header-matches", Err: err}
		}
		match.HeaderMatches = append(match.HeaderMatches, hm)
	}

	return &types.RuleMatchMemberHttpMatch{Value: match}, nil
}

func (h headerMatch) toSDK() (types.HeaderMatch, error) {
	if h.Name == "" {
		return types.HeaderMatch{}, fmt.Errorf("header match needs a name")
	}

	var (
		kind  types.HeaderMatchType
		count int
	)
	if h.Exact != "" {
		kind = &types.HeaderMatchTypeMemberExact{Value: h.Exact}
		count++
	}
	if h.Prefix != "" {
		kind = &types.HeaderMatchTypeMemberPrefix{Value: h.Prefix}
		count++
	}
	if h.Contains != "" {
		kind = &types.HeaderMatchTypeMemberContains{Value: h.Contains}
		count++
	}
	if count != 1 {
		return types.HeaderMatch{}, fmt.Errorf("header %q needs exactly one of exact, prefix or contains", h.Name)
	}

	return types.HeaderMatch{
		Name:          aws.String(h.Name),
		Match:         kind,
		CaseSensitive: h.CaseSensitive,
	}, nil
}

func healthCheckParams() []dispatch.Param {
	return []dispatch.Param{
		dispatch.Bool("health-check-enabled", "Whether health checking is enabled."),
		dispatch.Int("health-check-interval-seconds", "The approximate time between health checks."),
		dispatch.Int("health-check-timeout-seconds", "The time to wait for a health check response."),
		dispatch.Int("healthy-threshold-count", "Consecutive successes before a target is healthy."),
		dispatch.Int("unhealthy-threshold-count", "Consecutive failures before a target is unhealthy."),
		dispatch.Str("health-check-matcher", "HTTP codes that indicate a healthy target, e.g. 200-299."),
		dispatch.Str("health-check-path", "The destination path for health checks."),
		dispatch.Int("health-check-port", "The port used for health checks."),
		dispatch.Str("health-check-protocol", "The protocol used for health checks.").OneOf(enum(types.TargetGroupProtocol("").Values())...),
		dispatch.Str("health-check-protocol-version", "The protocol version used for health checks.").OneOf(enum(types.HealthCheckProtocolVersion("").Values())...),
	}
}

// buildHealthCheck returns nil when no health-check parameter is bound.
func buildHealthCheck(v dispatch.Values) *types.HealthCheckConfig {
	names := make([]string, 0, 10)
	for _, p := range healthCheckParams() {
		names = append(names, p.Name)
	}
	if !anyBound(v, names...) {
		return nil
	}

	hc := &types.HealthCheckConfig{
		Enabled:                    v.BoolPtr("health-check-enabled"),
		HealthCheckIntervalSeconds: v.Int32Ptr("health-check-interval-seconds"),
		HealthCheckTimeoutSeconds:  v.Int32Ptr("health-check-timeout-seconds"),
		HealthyThresholdCount:      v.Int32Ptr("healthy-threshold-count"),
		UnhealthyThresholdCount:    v.Int32Ptr("unhealthy-threshold-count"),
		Path:                       v.StringPtr("health-check-path"),
		Port:                       v.Int32Ptr("health-check-port"),
		Protocol:                   types.TargetGroupProtocol(v.Text("health-check-protocol")),
		ProtocolVersion:            types.HealthCheckProtocolVersion(v.Text("health-check-protocol-version")),
	}
	if v.Has("health-check-matcher") {
		hc.Matcher = &types.MatcherMemberHttpCode{Value: v.Text("health-check-matcher")}
	}
	return hc
}

func targetGroupConfigParams() []dispatch.Param {
	return append([]dispatch.Param{
		dispatch.Int("port", "The port on which the targets listen."),
		dispatch.Str("protocol", "The protocol to use for routing traffic to the targets.").OneOf(enum(types.TargetGroupProtocol("").Values())...),
		dispatch.Str("protocol-version", "The protocol version.").OneOf(enum(types.TargetGroupProtocolVersion("").Values())...),
		dispatch.Str("ip-address-type", "The type of IP address used for the target group.").OneOf(enum(types.IpAddressType("").Values())...),
		dispatch.Str("lambda-event-structure-version", "The version of the event structure sent to Lambda targets.").OneOf(enum(types.LambdaEventStructureVersion("").Values())...),
		dispatch.Str("vpc-identifier", "The ID of the VPC."),
	}, healthCheckParams()...)
}

// buildTargetGroupConfig returns nil when no config parameter is bound,
// as LAMBDA target groups take no configuration.
func buildTargetGroupConfig(v dispatch.Values) *types.TargetGroupConfig {
	health := buildHealthCheck(v)
	if health == nil && !anyBound(v, "port", "protocol", "protocol-version", "ip-address-type", "lambda-event-structure-version", "vpc-identifier") {
		return nil
	}

	return &types.TargetGroupConfig{
		HealthCheck:                 health,
		Port:                        v.Int32Ptr("port"),
		Protocol:                    types.TargetGroupProtocol(v.Text("protocol")),
		ProtocolVersion:             types.TargetGroupProtocolVersion(v.Text("protocol-version")),
		IpAddressType:               types.IpAddressType(v.Text("ip-address-type")),
		LambdaEventStructureVersion: types.LambdaEventStructureVersion(v.Text("lambda-event-structure-version")),
		VpcIdentifier:               v.StringPtr("vpc-identifier"),
	}
}

// buildTargets parses the id or id:port entries of name into SDK targets.
func buildTargets(v dispatch.Values, name string) ([]types.Target, error) {
	entries := v.List(name)
	targets := make([]types.Target, 0, len(entries))
	for _, entry := range entries {
		t, err := parseTarget(strings.TrimSpace(entry))
		if err != nil {
			return nil, &dispatch.InvalidParameterValueError{Parameter: name, Err: err}
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// parseTarget accepts id, id:port, a bare IPv6 address, or [ipv6]:port.
func parseTarget(entry string) (types.Target, error) {
	id, port := entry, ""
	switch {
	case strings.HasPrefix(entry, "["):
		end := strings.Index(entry, "]")
		if end < 0 {
			return types.Target{}, fmt.Errorf("target %q: missing ]", entry)
		}
		id = entry[1:end]
		if rest := entry[end+1:]; rest != "" {
			if !strings.HasPrefix(rest, ":") {
				return types.Target{}, fmt.Errorf("target %q: expected :port after ]", entry)
			}
			port = rest[1:]
		}
	case strings.Count(entry, ":") == 1:
		id, port, _ = strings.Cut(entry, ":")
	}

	if id == "" {
		return types.Target{}, fmt.Errorf("target id is empty")
	}
	t := types.Target{Id: aws.String(id)}
	if port != "" {
		n, err := strconv.ParseInt(port, 10, 32)
		if err != nil || n < 1 || n > 65535 {
			return types.Target{}, fmt.Errorf("target %q: invalid port %q", entry, port)
		}
		p := int32(n)
		t.Port = &p
	}
	return t, nil
}
