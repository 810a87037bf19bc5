package lattice

import (
	"github.com/google/uuid"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// Impact levels shared by the operation table. Reads never confirm,
// creates and updates confirm at medium, deletions at high.
var (
	mutating    = dispatch.WithImpact(dispatch.ImpactMedium)
	destructive = dispatch.WithImpact(dispatch.ImpactHigh)
)

// pagingParams are declared by every paginated list operation.
func pagingParams() dispatch.Option {
	return dispatch.Params(
		dispatch.Int("max-results", "The maximum number of results to return per page."),
		dispatch.Str(dispatch.NextTokenParam, "A pagination token for the next page of results. Disables automatic paging."),
	)
}

func clientTokenParam() dispatch.Param {
	return dispatch.Str("client-token", "A unique, case-sensitive identifier for idempotent retries. Generated when omitted.")
}

func tagsParam() dispatch.Param {
	return dispatch.Map("tags", "The tags for the resource, as key=value pairs.")
}

// clientToken returns the bound client token or a fresh one, so that
// create calls retried by the SDK are idempotent on the service side.
func clientToken(v dispatch.Values) *string {
	if token := v.StringPtr("client-token"); token != nil {
		return token
	}
	token := uuid.NewString()
	return &token
}

// enum converts an SDK enum's Values() into parameter choices.
func enum[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// anyBound reports whether any of names is bound.
func anyBound(v dispatch.Values, names ...string) bool {
	for _, name := range names {
		if v.Has(name) {
			return true
		}
	}
	return false
}
