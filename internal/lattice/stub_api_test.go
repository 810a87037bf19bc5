package lattice

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/vpclattice"
)

// stubAPI records every call and answers with a canned or empty output.
type stubAPI struct {
	mu      sync.Mutex
	calls   []string
	inputs  map[string]any
	outputs map[string]any
	err     error
}

func newStubAPI() *stubAPI {
	return &stubAPI{inputs: map[string]any{}, outputs: map[string]any{}}
}

func (s *stubAPI) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func record[Out any](s *stubAPI, name string, in any) (*Out, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, name)
	s.inputs[name] = in
	if s.err != nil {
		return nil, s.err
	}
	if out, ok := s.outputs[name].(*Out); ok {
		return out, nil
	}
	out := new(Out)
	s.outputs[name] = out
	return out, nil
}

func (s *stubAPI) CreateServiceNetwork(_ context.Context, in *vpclattice.CreateServiceNetworkInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateServiceNetworkOutput, error) {
	return record[vpclattice.CreateServiceNetworkOutput](s, "CreateServiceNetwork", in)
}

func (s *stubAPI) GetServiceNetwork(_ context.Context, in *vpclattice.GetServiceNetworkInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetServiceNetworkOutput, error) {
	return record[vpclattice.GetServiceNetworkOutput](s, "GetServiceNetwork", in)
}

func (s *stubAPI) ListServiceNetworks(_ context.Context, in *vpclattice.ListServiceNetworksInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListServiceNetworksOutput, error) {
	return record[vpclattice.ListServiceNetworksOutput](s, "ListServiceNetworks", in)
}

func (s *stubAPI) UpdateServiceNetwork(_ context.Context, in *vpclattice.UpdateServiceNetworkInput, _ ...func(*vpclattice.Options)) (*vpclattice.UpdateServiceNetworkOutput, error) {
	return record[vpclattice.UpdateServiceNetworkOutput](s, "UpdateServiceNetwork", in)
}

func (s *stubAPI) DeleteServiceNetwork(_ context.Context, in *vpclattice.DeleteServiceNetworkInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteServiceNetworkOutput, error) {
	return record[vpclattice.DeleteServiceNetworkOutput](s, "DeleteServiceNetwork", in)
}

func (s *stubAPI) CreateService(_ context.Context, in *vpclattice.CreateServiceInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateServiceOutput, error) {
	return record[vpclattice.CreateServiceOutput](s, "CreateService", in)
}

func (s *stubAPI) GetService(_ context.Context, in *vpclattice.GetServiceInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetServiceOutput, error) {
	return record[vpclattice.GetServiceOutput](s, "GetService", in)
}

func (s *stubAPI) ListServices(_ context.Context, in *vpclattice.ListServicesInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListServicesOutput, error) {
	return record[vpclattice.ListServicesOutput](s, "ListServices", in)
}

func (s *stubAPI) UpdateService(_ context.Context, in *vpclattice.UpdateServiceInput, _ ...func(*vpclattice.Options)) (*vpclattice.UpdateServiceOutput, error) {
	return record[vpclattice.UpdateServiceOutput](s, "UpdateService", in)
}

func (s *stubAPI) DeleteService(_ context.Context, in *vpclattice.DeleteServiceInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteServiceOutput, error) {
	return record[vpclattice.DeleteServiceOutput](s, "DeleteService", in)
}

func (s *stubAPI) CreateServiceNetworkServiceAssociation(_ context.Context, in *vpclattice.CreateServiceNetworkServiceAssociationInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateServiceNetworkServiceAssociationOutput, error) {
	return record[vpclattice.CreateServiceNetworkServiceAssociationOutput](s, "CreateServiceNetworkServiceAssociation", in)
}

func (s *stubAPI) GetServiceNetworkServiceAssociation(_ context.Context, in *vpclattice.GetServiceNetworkServiceAssociationInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetServiceNetworkServiceAssociationOutput, error) {
	return record[vpclattice.GetServiceNetworkServiceAssociationOutput](s, "GetServiceNetworkServiceAssociation", in)
}

func (s *stubAPI) ListServiceNetworkServiceAssociations(_ context.Context, in *vpclattice.ListServiceNetworkServiceAssociationsInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListServiceNetworkServiceAssociationsOutput, error) {
	return record[vpclattice.ListServiceNetworkServiceAssociationsOutput](s, "ListServiceNetworkServiceAssociations", in)
}

func (s *stubAPI) DeleteServiceNetworkServiceAssociation(_ context.Context, in *vpclattice.DeleteServiceNetworkServiceAssociationInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteServiceNetworkServiceAssociationOutput, error) {
	return record[vpclattice.DeleteServiceNetworkServiceAssociationOutput](s, "DeleteServiceNetworkServiceAssociation", in)
}

func (s *stubAPI) CreateServiceNetworkVpcAssociation(_ context.Context, in *vpclattice.CreateServiceNetworkVpcAssociationInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateServiceNetworkVpcAssociationOutput, error) {
	return record[vpclattice.CreateServiceNetworkVpcAssociationOutput](s, "CreateServiceNetworkVpcAssociation", in)
}

func (s *stubAPI) GetServiceNetworkVpcAssociation(_ context.Context, in *vpclattice.GetServiceNetworkVpcAssociationInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetServiceNetworkVpcAssociationOutput, error) {
	return record[vpclattice.GetServiceNetworkVpcAssociationOutput](s, "GetServiceNetworkVpcAssociation", in)
}

func (s *stubAPI) ListServiceNetworkVpcAssociations(_ context.Context, in *vpclattice.ListServiceNetworkVpcAssociationsInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListServiceNetworkVpcAssociationsOutput, error) {
	return record[vpclattice.ListServiceNetworkVpcAssociationsOutput](s, "ListServiceNetworkVpcAssociations", in)
}

func (s *stubAPI) UpdateServiceNetworkVpcAssociation(_ context.Context, in *vpclattice.UpdateServiceNetworkVpcAssociationInput, _ ...func(*vpclattice.Options)) (*vpclattice.UpdateServiceNetworkVpcAssociationOutput, error) {
	return record[vpclattice.UpdateServiceNetworkVpcAssociationOutput](s, "UpdateServiceNetworkVpcAssociation", in)
}

func (s *stubAPI) DeleteServiceNetworkVpcAssociation(_ context.Context, in *vpclattice.DeleteServiceNetworkVpcAssociationInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteServiceNetworkVpcAssociationOutput, error) {
	return record[vpclattice.DeleteServiceNetworkVpcAssociationOutput](s, "DeleteServiceNetworkVpcAssociation", in)
}

func (s *stubAPI) CreateListener(_ context.Context, in *vpclattice.CreateListenerInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateListenerOutput, error) {
	return record[vpclattice.CreateListenerOutput](s, "CreateListener", in)
}

func (s *stubAPI) GetListener(_ context.Context, in *vpclattice.GetListenerInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetListenerOutput, error) {
	return record[vpclattice.GetListenerOutput](s, "GetListener", in)
}

func (s *stubAPI) ListListeners(_ context.Context, in *vpclattice.ListListenersInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListListenersOutput, error) {
	return record[vpclattice.ListListenersOutput](s, "ListListeners", in)
}

func (s *stubAPI) UpdateListener(_ context.Context, in *vpclattice.UpdateListenerInput, _ ...func(*vpclattice.Options)) (*vpclattice.UpdateListenerOutput, error) {
	return record[vpclattice.UpdateListenerOutput](s, "UpdateListener", in)
}

func (s *stubAPI) DeleteListener(_ context.Context, in *vpclattice.DeleteListenerInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteListenerOutput, error) {
	return record[vpclattice.DeleteListenerOutput](s, "DeleteListener", in)
}

func (s *stubAPI) CreateRule(_ context.Context, in *vpclattice.CreateRuleInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateRuleOutput, error) {
	return record[vpclattice.CreateRuleOutput](s, "CreateRule", in)
}

func (s *stubAPI) GetRule(_ context.Context, in *vpclattice.GetRuleInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetRuleOutput, error) {
	return record[vpclattice.GetRuleOutput](s, "GetRule", in)
}

func (s *stubAPI) ListRules(_ context.Context, in *vpclattice.ListRulesInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListRulesOutput, error) {
	return record[vpclattice.ListRulesOutput](s, "ListRules", in)
}

func (s *stubAPI) UpdateRule(_ context.Context, in *vpclattice.UpdateRuleInput, _ ...func(*vpclattice.Options)) (*vpclattice.UpdateRuleOutput, error) {
	return record[vpclattice.UpdateRuleOutput](s, "UpdateRule", in)
}

func (s *stubAPI) DeleteRule(_ context.Context, in *vpclattice.DeleteRuleInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteRuleOutput, error) {
	return record[vpclattice.DeleteRuleOutput](s, "DeleteRule", in)
}

func (s *stubAPI) CreateTargetGroup(_ context.Context, in *vpclattice.CreateTargetGroupInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateTargetGroupOutput, error) {
	return record[vpclattice.CreateTargetGroupOutput](s, "CreateTargetGroup", in)
}

func (s *stubAPI) GetTargetGroup(_ context.Context, in *vpclattice.GetTargetGroupInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetTargetGroupOutput, error) {
	return record[vpclattice.GetTargetGroupOutput](s, "GetTargetGroup", in)
}

func (s *stubAPI) ListTargetGroups(_ context.Context, in *vpclattice.ListTargetGroupsInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListTargetGroupsOutput, error) {
	return record[vpclattice.ListTargetGroupsOutput](s, "ListTargetGroups", in)
}

func (s *stubAPI) UpdateTargetGroup(_ context.Context, in *vpclattice.UpdateTargetGroupInput, _ ...func(*vpclattice.Options)) (*vpclattice.UpdateTargetGroupOutput, error) {
	return record[vpclattice.UpdateTargetGroupOutput](s, "UpdateTargetGroup", in)
}

func (s *stubAPI) DeleteTargetGroup(_ context.Context, in *vpclattice.DeleteTargetGroupInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteTargetGroupOutput, error) {
	return record[vpclattice.DeleteTargetGroupOutput](s, "DeleteTargetGroup", in)
}

func (s *stubAPI) RegisterTargets(_ context.Context, in *vpclattice.RegisterTargetsInput, _ ...func(*vpclattice.Options)) (*vpclattice.RegisterTargetsOutput, error) {
	return record[vpclattice.RegisterTargetsOutput](s, "RegisterTargets", in)
}

func (s *stubAPI) DeregisterTargets(_ context.Context, in *vpclattice.DeregisterTargetsInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeregisterTargetsOutput, error) {
	return record[vpclattice.DeregisterTargetsOutput](s, "DeregisterTargets", in)
}

func (s *stubAPI) ListTargets(_ context.Context, in *vpclattice.ListTargetsInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListTargetsOutput, error) {
	return record[vpclattice.ListTargetsOutput](s, "ListTargets", in)
}

func (s *stubAPI) CreateAccessLogSubscription(_ context.Context, in *vpclattice.CreateAccessLogSubscriptionInput, _ ...func(*vpclattice.Options)) (*vpclattice.CreateAccessLogSubscriptionOutput, error) {
	return record[vpclattice.CreateAccessLogSubscriptionOutput](s, "CreateAccessLogSubscription", in)
}

func (s *stubAPI) GetAccessLogSubscription(_ context.Context, in *vpclattice.GetAccessLogSubscriptionInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetAccessLogSubscriptionOutput, error) {
	return record[vpclattice.GetAccessLogSubscriptionOutput](s, "GetAccessLogSubscription", in)
}

func (s *stubAPI) ListAccessLogSubscriptions(_ context.Context, in *vpclattice.ListAccessLogSubscriptionsInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListAccessLogSubscriptionsOutput, error) {
	return record[vpclattice.ListAccessLogSubscriptionsOutput](s, "ListAccessLogSubscriptions", in)
}

func (s *stubAPI) UpdateAccessLogSubscription(_ context.Context, in *vpclattice.UpdateAccessLogSubscriptionInput, _ ...func(*vpclattice.Options)) (*vpclattice.UpdateAccessLogSubscriptionOutput, error) {
	return record[vpclattice.UpdateAccessLogSubscriptionOutput](s, "UpdateAccessLogSubscription", in)
}

func (s *stubAPI) DeleteAccessLogSubscription(_ context.Context, in *vpclattice.DeleteAccessLogSubscriptionInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteAccessLogSubscriptionOutput, error) {
	return record[vpclattice.DeleteAccessLogSubscriptionOutput](s, "DeleteAccessLogSubscription", in)
}

func (s *stubAPI) PutAuthPolicy(_ context.Context, in *vpclattice.PutAuthPolicyInput, _ ...func(*vpclattice.Options)) (*vpclattice.PutAuthPolicyOutput, error) {
	return record[vpclattice.PutAuthPolicyOutput](s, "PutAuthPolicy", in)
}

func (s *stubAPI) GetAuthPolicy(_ context.Context, in *vpclattice.GetAuthPolicyInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetAuthPolicyOutput, error) {
	return record[vpclattice.GetAuthPolicyOutput](s, "GetAuthPolicy", in)
}

func (s *stubAPI) DeleteAuthPolicy(_ context.Context, in *vpclattice.DeleteAuthPolicyInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteAuthPolicyOutput, error) {
	return record[vpclattice.DeleteAuthPolicyOutput](s, "DeleteAuthPolicy", in)
}

func (s *stubAPI) PutResourcePolicy(_ context.Context, in *vpclattice.PutResourcePolicyInput, _ ...func(*vpclattice.Options)) (*vpclattice.PutResourcePolicyOutput, error) {
	return record[vpclattice.PutResourcePolicyOutput](s, "PutResourcePolicy", in)
}

func (s *stubAPI) GetResourcePolicy(_ context.Context, in *vpclattice.GetResourcePolicyInput, _ ...func(*vpclattice.Options)) (*vpclattice.GetResourcePolicyOutput, error) {
	return record[vpclattice.GetResourcePolicyOutput](s, "GetResourcePolicy", in)
}

func (s *stubAPI) DeleteResourcePolicy(_ context.Context, in *vpclattice.DeleteResourcePolicyInput, _ ...func(*vpclattice.Options)) (*vpclattice.DeleteResourcePolicyOutput, error) {
	return record[vpclattice.DeleteResourcePolicyOutput](s, "DeleteResourcePolicy", in)
}

func (s *stubAPI) TagResource(_ context.Context, in *vpclattice.TagResourceInput, _ ...func(*vpclattice.Options)) (*vpclattice.TagResourceOutput, error) {
	return record[vpclattice.TagResourceOutput](s, "TagResource", in)
}

func (s *stubAPI) UntagResource(_ context.Context, in *vpclattice.UntagResourceInput, _ ...func(*vpclattice.Options)) (*vpclattice.UntagResourceOutput, error) {
	return record[vpclattice.UntagResourceOutput](s, "UntagResource", in)
}

func (s *stubAPI) ListTagsForResource(_ context.Context, in *vpclattice.ListTagsForResourceInput, _ ...func(*vpclattice.Options)) (*vpclattice.ListTagsForResourceOutput, error) {
	return record[vpclattice.ListTagsForResourceOutput](s, "ListTagsForResource", in)
}

var _ API = (*stubAPI)(nil)
