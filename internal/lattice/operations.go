// Package lattice declares the VPC Lattice operation table consumed by the
// generic dispatcher.
package lattice

import (
	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// Operations returns a fresh descriptor for every supported operation.
func Operations() []*dispatch.Operation[API] {
	groups := [][]*dispatch.Operation[API]{
		serviceNetworkOperations(),
		serviceOperations(),
		associationOperations(),
		listenerOperations(),
		ruleOperations(),
		targetGroupOperations(),
		accessLogOperations(),
		policyOperations(),
		tagOperations(),
	}

	var ops []*dispatch.Operation[API]
	for _, g := range groups {
		ops = append(ops, g...)
	}
	return ops
}

// Registry returns a registry holding every operation.
func Registry() *dispatch.Registry[API] {
	return dispatch.NewRegistry(Operations()...)
}
