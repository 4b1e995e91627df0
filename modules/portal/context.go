package portal

import "context"

type customerCtxKey struct{}

// ContextWithCustomer stores the freshly loaded customer profile in the
// context.
func ContextWithCustomer(ctx context.Context, customer *Customer) context.Context {
	return context.WithValue(ctx, customerCtxKey{}, customer)
}

// CustomerFromContext retrieves the customer placed by RequireSession.
func CustomerFromContext(ctx context.Context) (*Customer, bool) {
	customer, ok := ctx.Value(customerCtxKey{}).(*Customer)
	return customer, ok
}
