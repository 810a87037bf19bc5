package dispatch

import (
	"context"
	"reflect"
)

// followPages keeps calling fetch with the NextToken of the latest page and
// appends each page's items to the first response. The merged response has
// a nil NextToken. The context is checked between pages.
func followPages(ctx context.Context, first any, items string, fetch func(token *string) (any, error)) (any, error) {
	acc := reflect.ValueOf(first).Elem()
	accItems := acc.FieldByName(items)

	page := acc
	seen := make(map[string]bool)
	for {
		token, _ := page.FieldByName("NextToken").Interface().(*string)
		if token == nil || *token == "" || seen[*token] {
			break
		}
		seen[*token] = true

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := fetch(token)
		if err != nil {
			return nil, err
		}
		page = reflect.ValueOf(next).Elem()
		accItems.Set(reflect.AppendSlice(accItems, page.FieldByName(items)))
	}

	tokenField := acc.FieldByName("NextToken")
	tokenField.Set(reflect.Zero(tokenField.Type()))
	return first, nil
}

// setNextToken points the request's NextToken at token.
func setNextToken(req any, token *string) {
	reflect.ValueOf(req).Elem().FieldByName("NextToken").Set(reflect.ValueOf(token))
}
