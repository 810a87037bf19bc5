package lattice

import (
	"context"
	"errors"
	"reflect"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/vpclattice"
	"github.com/aws/aws-sdk-go-v2/service/vpclattice/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// groupRequired binds the parameter groups a builder insists on beyond the
// individually required parameters.
var groupRequired = map[string]dispatch.Values{
	"CreateListener":    {"default-action-fixed-response-status-code": 404},
	"UpdateListener":    {"default-action-fixed-response-status-code": 404},
	"CreateRule":        {"action-fixed-response-status-code": 404, "match-path-prefix": "/"},
	"UpdateTargetGroup": {"health-check-enabled": true},
}

func sampleValue(p dispatch.Param) any {
	if len(p.Enum) > 0 {
		return p.Enum[0]
	}
	switch p.Kind {
	case dispatch.KindInt:
		return 1
	case dispatch.KindBool:
		return true
	case dispatch.KindStringList:
		return []string{"item-1"}
	case dispatch.KindStringMap:
		return map[string]string{"team": "edge"}
	case dispatch.KindJSON:
		return `{"Version":"2012-10-17","Statement":[]}`
	default:
		return "id-1"
	}
}

func requiredValues(op *dispatch.Operation[API]) dispatch.Values {
	v := dispatch.Values{}
	for _, p := range op.Params {
		if p.Required {
			v[p.Name] = sampleValue(p)
		}
	}
	for name, value := range groupRequired[op.Name] {
		v[name] = value
	}
	return v
}

func newDispatcher(api *stubAPI, config dispatch.Config) *dispatch.Dispatcher[API] {
	return dispatch.New[API](api, Registry(), config)
}

var _ = Describe("Operations", func() {
	It("declares one operation per client method", func() {
		apiType := reflect.TypeOf((*API)(nil)).Elem()
		var methods []string
		for i := 0; i < apiType.NumMethod(); i++ {
			methods = append(methods, apiType.Method(i).Name)
		}

		var names []string
		for _, op := range Operations() {
			names = append(names, op.Name)
		}
		sort.Strings(names)

		Expect(names).To(Equal(methods))
	})

	It("never asks to confirm reads", func() {
		for _, op := range Operations() {
			if op.Impact == dispatch.ImpactNone {
				Expect(op.Name).To(MatchRegexp(`^(Get|List)`))
			} else {
				Expect(op.Name).NotTo(MatchRegexp(`^(Get|List)`))
			}
		}
	})

	It("rates deletions as high impact", func() {
		for _, op := range Operations() {
			if op.Impact == dispatch.ImpactHigh {
				Expect(op.Name).To(MatchRegexp(`^(Delete|Deregister|Untag)`))
			}
		}
	})

	for _, op := range Operations() {
		op := op

		Describe(op.Name, func() {
			var api *stubAPI

			BeforeEach(func() {
				api = newStubAPI()
			})

			It("returns the client's response unchanged", func() {
				env := newDispatcher(api, dispatch.Config{}).Dispatch(context.Background(), dispatch.Request{
					Operation: op.Command,
					Params:    requiredValues(op),
					Select:    dispatch.SelectAll,
					Force:     true,
				})

				Expect(env.Err).NotTo(HaveOccurred())
				Expect(api.calls).To(Equal([]string{op.Name}))
				Expect(env.Payload).To(BeIdenticalTo(api.outputs[op.Name]))
			})

			for _, p := range op.Params {
				if !p.Required {
					continue
				}
				p := p

				It("rejects a missing "+p.Name+" without calling the client", func() {
					params := requiredValues(op)
					delete(params, p.Name)

					env := newDispatcher(api, dispatch.Config{}).Dispatch(context.Background(), dispatch.Request{
						Operation: op.Name,
						Params:    params,
						Force:     true,
					})

					var missing *dispatch.MissingRequiredParameterError
					Expect(errors.As(env.Err, &missing)).To(BeTrue())
					Expect(missing.Parameter).To(Equal(p.Name))
					Expect(api.callCount()).To(BeZero())
				})
			}

			if op.Impact != dispatch.ImpactNone {
				It("makes no call when confirmation is declined", func() {
					prompts := 0
					env := newDispatcher(api, dispatch.Config{
						Threshold: dispatch.ImpactLow,
						Confirmer: dispatch.ConfirmFunc(func(context.Context, string) (bool, error) {
							prompts++
							return false, nil
						}),
					}).Dispatch(context.Background(), dispatch.Request{
						Operation: op.Name,
						Params:    requiredValues(op),
					})

					Expect(env.Err).NotTo(HaveOccurred())
					Expect(env.Declined).To(BeTrue())
					Expect(prompts).To(Equal(1))
					Expect(api.callCount()).To(BeZero())
				})
			}
		})
	}
})

var _ = Describe("Request building", func() {
	var (
		api *stubAPI
		d   *dispatch.Dispatcher[API]
	)

	BeforeEach(func() {
		api = newStubAPI()
		d = newDispatcher(api, dispatch.Config{})
	})

	run := func(operation string, params dispatch.Values) *dispatch.Envelope {
		return d.Dispatch(context.Background(), dispatch.Request{Operation: operation, Params: params, Force: true})
	}

	Describe("client tokens", func() {
		It("generates a token when none is given", func() {
			env := run("create-service", dispatch.Values{"name": "billing"})
			Expect(env.Err).NotTo(HaveOccurred())

			in := api.inputs["CreateService"].(*vpclattice.CreateServiceInput)
			Expect(in.ClientToken).NotTo(BeNil())
			Expect(*in.ClientToken).To(HaveLen(36))
		})

		It("keeps the caller's token", func() {
			env := run("create-service", dispatch.Values{"name": "billing", "client-token": "retry-1"})
			Expect(env.Err).NotTo(HaveOccurred())

			in := api.inputs["CreateService"].(*vpclattice.CreateServiceInput)
			Expect(*in.ClientToken).To(Equal("retry-1"))
		})
	})

	It("canonicalizes enum values", func() {
		env := run("CreateServiceNetwork", dispatch.Values{"name": "core", "auth-type": "aws_iam"})
		Expect(env.Err).NotTo(HaveOccurred())

		in := api.inputs["CreateServiceNetwork"].(*vpclattice.CreateServiceNetworkInput)
		Expect(in.AuthType).To(Equal(types.AuthTypeAwsIam))
	})

	Describe("rule actions", func() {
		base := func() dispatch.Values {
			return dispatch.Values{
				"service-identifier":  "svc-1",
				"listener-identifier": "listener-1",
				"name":                "beta",
				"priority":            10,
				"match-path-prefix":   "/beta",
			}
		}

		It("builds a fixed response", func() {
			params := base()
			params["action-fixed-response-status-code"] = 503

			Expect(run("CreateRule", params).Err).NotTo(HaveOccurred())

			in := api.inputs["CreateRule"].(*vpclattice.CreateRuleInput)
			fixed, ok := in.Action.(*types.RuleActionMemberFixedResponse)
			Expect(ok).To(BeTrue())
			Expect(*fixed.Value.StatusCode).To(Equal(int32(503)))
		})

		forwarded := func() ([]string, []int32) {
			in := api.inputs["CreateRule"].(*vpclattice.CreateRuleInput)
			forward, ok := in.Action.(*types.RuleActionMemberForward)
			Expect(ok).To(BeTrue())

			var ids []string
			var weights []int32
			for _, tg := range forward.Value.TargetGroups {
				ids = append(ids, *tg.TargetGroupIdentifier)
				if tg.Weight == nil {
					weights = append(weights, -1)
					continue
				}
				weights = append(weights, *tg.Weight)
			}
			return ids, weights
		}

		It("builds a weighted forward from the JSON form", func() {
			params := base()
			params["action-forward-target-groups"] = `[{"targetGroupIdentifier":"tg-a","weight":80},{"id":"tg-b","weight":20}]`

			Expect(run("CreateRule", params).Err).NotTo(HaveOccurred())

			ids, weights := forwarded()
			Expect(ids).To(Equal([]string{"tg-a", "tg-b"}))
			Expect(weights).To(Equal([]int32{80, 20}))
		})

		It("builds a weighted forward from id=weight pairs", func() {
			params := base()
			params["action-forward-target-groups"] = "tg-c=5, tg-b=15,tg-d"

			Expect(run("CreateRule", params).Err).NotTo(HaveOccurred())

			ids, weights := forwarded()
			Expect(ids).To(Equal([]string{"tg-c", "tg-b", "tg-d"}))
			Expect(weights).To(Equal([]int32{5, 15, -1}))
		})

		It("rejects a JSON target group without an identifier", func() {
			params := base()
			params["action-forward-target-groups"] = `[{"weight":100}]`

			var invalid *dispatch.InvalidParameterValueError
			Expect(errors.As(run("CreateRule", params).Err, &invalid)).To(BeTrue())
			Expect(invalid.Parameter).To(Equal("action-forward-target-groups"))
			Expect(api.callCount()).To(BeZero())
		})

		It("rejects a fixed response combined with a forward", func() {
			params := base()
			params["action-fixed-response-status-code"] = 404
			params["action-forward-target-groups"] = "tg-a=1"

			var invalid *dispatch.InvalidParameterValueError
			Expect(errors.As(run("CreateRule", params).Err, &invalid)).To(BeTrue())
			Expect(invalid.Operation).To(Equal("CreateRule"))
			Expect(api.callCount()).To(BeZero())
		})

		It("rejects a non-numeric weight", func() {
			params := base()
			params["action-forward-target-groups"] = "tg-a=heavy"

			var invalid *dispatch.InvalidParameterValueError
			Expect(errors.As(run("CreateRule", params).Err, &invalid)).To(BeTrue())
			Expect(invalid.Parameter).To(Equal("action-forward-target-groups"))
		})

		It("requires an action on create", func() {
			var missing *dispatch.MissingRequiredParameterError
			Expect(errors.As(run("CreateRule", base()).Err, &missing)).To(BeTrue())
			Expect(missing.Parameter).To(Equal("action-*"))
			Expect(api.callCount()).To(BeZero())
		})

		It("leaves the action unset on update when no action flag is given", func() {
			env := run("UpdateRule", dispatch.Values{
				"service-identifier":  "svc-1",
				"listener-identifier": "listener-1",
				"rule-identifier":     "rule-1",
				"priority":            20,
			})
			Expect(env.Err).NotTo(HaveOccurred())

			in := api.inputs["UpdateRule"].(*vpclattice.UpdateRuleInput)
			Expect(in.Action).To(BeNil())
			Expect(in.Match).To(BeNil())
			Expect(*in.Priority).To(Equal(int32(20)))
		})
	})

	Describe("rule matches", func() {
		params := func(extra dispatch.Values) dispatch.Values {
			v := dispatch.Values{
				"service-identifier":                "svc-1",
				"listener-identifier":               "listener-1",
				"name":                              "beta",
				"priority":                          10,
				"action-fixed-response-status-code": 404,
			}
			for k, val := range extra {
				v[k] = val
			}
			return v
		}

		It("builds path and header matches", func() {
			env := run("CreateRule", params(dispatch.Values{
				"match-method":              "GET",
				"match-path-exact":          "/health",
				"match-path-case-sensitive": true,
				"match-header-matches":      `[{"name":"x-env","prefix":"beta","caseSensitive":false}]`,
			}))
			Expect(env.Err).NotTo(HaveOccurred())

			in := api.inputs["CreateRule"].(*vpclattice.CreateRuleInput)
			match := in.Match.(*types.RuleMatchMemberHttpMatch).Value
			Expect(*match.Method).To(Equal("GET"))
			Expect(match.PathMatch.Match).To(Equal(&types.PathMatchTypeMemberExact{Value: "/health"}))
			Expect(*match.PathMatch.CaseSensitive).To(BeTrue())
			Expect(match.HeaderMatches).To(HaveLen(1))
			Expect(*match.HeaderMatches[0].Name).To(Equal("x-env"))
			Expect(match.HeaderMatches[0].Match).To(Equal(&types.HeaderMatchTypeMemberPrefix{Value: "beta"}))
			Expect(*match.HeaderMatches[0].CaseSensitive).To(BeFalse())
		})

		It("rejects a header match with two match kinds", func() {
			env := run("CreateRule", params(dispatch.Values{
				"match-header-matches": `[{"name":"x-env","exact":"a","contains":"b"}]`,
			}))

			var invalid *dispatch.InvalidParameterValueError
			Expect(errors.As(env.Err, &invalid)).To(BeTrue())
			Expect(invalid.Parameter).To(Equal("match-header-matches"))
		})

		It("rejects malformed JSON", func() {
			env := run("CreateRule", params(dispatch.Values{"match-header-matches": `[{"name":`}))

			var invalid *dispatch.InvalidParameterValueError
			Expect(errors.As(env.Err, &invalid)).To(BeTrue())
			Expect(api.callCount()).To(BeZero())
		})

		It("rejects both path match kinds", func() {
			env := run("CreateRule", params(dispatch.Values{
				"match-path-exact":  "/a",
				"match-path-prefix": "/b",
			}))

			var invalid *dispatch.InvalidParameterValueError
			Expect(errors.As(env.Err, &invalid)).To(BeTrue())
		})
	})

	Describe("target groups", func() {
		It("sends no config when no config flag is given", func() {
			Expect(run("CreateTargetGroup", dispatch.Values{"name": "fn", "type": "LAMBDA"}).Err).NotTo(HaveOccurred())

			in := api.inputs["CreateTargetGroup"].(*vpclattice.CreateTargetGroupInput)
			Expect(in.Type).To(Equal(types.TargetGroupTypeLambda))
			Expect(in.Config).To(BeNil())
		})

		It("builds config and health check", func() {
			env := run("CreateTargetGroup", dispatch.Values{
				"name":                 "web",
				"type":                 "instance",
				"port":                 8080,
				"protocol":             "http",
				"vpc-identifier":       "vpc-1",
				"health-check-path":    "/healthz",
				"health-check-matcher": "200-299",
			})
			Expect(env.Err).NotTo(HaveOccurred())

			in := api.inputs["CreateTargetGroup"].(*vpclattice.CreateTargetGroupInput)
			Expect(in.Type).To(Equal(types.TargetGroupTypeInstance))
			Expect(*in.Config.Port).To(Equal(int32(8080)))
			Expect(in.Config.Protocol).To(Equal(types.TargetGroupProtocolHttp))
			Expect(*in.Config.VpcIdentifier).To(Equal("vpc-1"))
			Expect(*in.Config.HealthCheck.Path).To(Equal("/healthz"))
			Expect(in.Config.HealthCheck.Matcher).To(Equal(&types.MatcherMemberHttpCode{Value: "200-299"}))
			Expect(in.Config.HealthCheck.Enabled).To(BeNil())
		})

		It("requires a health check flag on update", func() {
			env := run("UpdateTargetGroup", dispatch.Values{"target-group-identifier": "tg-1"})

			var missing *dispatch.MissingRequiredParameterError
			Expect(errors.As(env.Err, &missing)).To(BeTrue())
			Expect(api.callCount()).To(BeZero())
		})

		It("registers id and id:port targets", func() {
			env := run("RegisterTargets", dispatch.Values{
				"target-group-identifier": "tg-1",
				"targets":                 []string{"i-0abc", "10.0.0.7:8080", "[2001:db8::1]:443", "2001:db8::2"},
			})
			Expect(env.Err).NotTo(HaveOccurred())

			in := api.inputs["RegisterTargets"].(*vpclattice.RegisterTargetsInput)
			Expect(in.Targets).To(HaveLen(4))
			Expect(*in.Targets[0].Id).To(Equal("i-0abc"))
			Expect(in.Targets[0].Port).To(BeNil())
			Expect(*in.Targets[1].Id).To(Equal("10.0.0.7"))
			Expect(*in.Targets[1].Port).To(Equal(int32(8080)))
			Expect(*in.Targets[2].Id).To(Equal("2001:db8::1"))
			Expect(*in.Targets[2].Port).To(Equal(int32(443)))
			Expect(*in.Targets[3].Id).To(Equal("2001:db8::2"))
			Expect(in.Targets[3].Port).To(BeNil())
		})

		It("rejects a target with a bad port", func() {
			for _, entry := range []string{"i-0abc:http", "i-0abc:70000", ":80", "[2001:db8::1]443"} {
				env := run("RegisterTargets", dispatch.Values{
					"target-group-identifier": "tg-1",
					"targets":                 []string{entry},
				})

				var invalid *dispatch.InvalidParameterValueError
				Expect(errors.As(env.Err, &invalid)).To(BeTrue(), entry)
				Expect(invalid.Parameter).To(Equal("targets"))
			}
			Expect(api.callCount()).To(BeZero())
		})
	})

	Describe("rule action selectors", func() {
		var status int32 = 404

		selectRule := func(selector string) *dispatch.Envelope {
			api.outputs["GetRule"] = &vpclattice.GetRuleOutput{
				Action: &types.RuleActionMemberFixedResponse{Value: types.FixedResponseAction{StatusCode: &status}},
			}
			return d.Dispatch(context.Background(), dispatch.Request{
				Operation: "GetRule",
				Params: dispatch.Values{
					"service-identifier":  "svc-1",
					"listener-identifier": "listener-1",
					"rule-identifier":     "rule-1",
				},
				Select: selector,
			})
		}

		It("selects the variant that is set", func() {
			env := selectRule("Action.FixedResponse.StatusCode")
			Expect(env.Err).NotTo(HaveOccurred())
			Expect(env.Payload).To(Equal(int32(404)))
		})

		It("projects another variant to nil", func() {
			env := selectRule("Action.Forward")
			Expect(env.Err).NotTo(HaveOccurred())
			Expect(env.Payload).To(BeNil())
		})
	})

	Describe("policies", func() {
		It("sends the document verbatim", func() {
			doc := `{"Version": "2012-10-17", "Statement": []}`
			Expect(run("PutAuthPolicy", dispatch.Values{"resource-identifier": "sn-1", "policy": doc}).Err).NotTo(HaveOccurred())

			in := api.inputs["PutAuthPolicy"].(*vpclattice.PutAuthPolicyInput)
			Expect(*in.Policy).To(Equal(doc))
		})

		It("rejects a document that is not an object", func() {
			env := run("PutResourcePolicy", dispatch.Values{"resource-arn": "arn:1", "policy": `["a"]`})

			var invalid *dispatch.InvalidParameterValueError
			Expect(errors.As(env.Err, &invalid)).To(BeTrue())
			Expect(invalid.Parameter).To(Equal("policy"))
		})
	})

	It("projects the tag map by default", func() {
		api.outputs["ListTagsForResource"] = &vpclattice.ListTagsForResourceOutput{Tags: map[string]string{"team": "edge"}}

		env := run("list-tags-for-resource", dispatch.Values{"resource-arn": "arn:1"})

		Expect(env.Err).NotTo(HaveOccurred())
		Expect(env.Payload).To(Equal(map[string]string{"team": "edge"}))
	})

	It("echoes an input parameter", func() {
		env := d.Dispatch(context.Background(), dispatch.Request{
			Operation: "delete-service",
			Params:    dispatch.Values{"service-identifier": "svc-9"},
			Select:    "^service-identifier",
			Force:     true,
		})

		Expect(env.Err).NotTo(HaveOccurred())
		Expect(env.Payload).To(Equal("svc-9"))
	})
})
