package auth

import "context"

// Principal is the authenticated identity attached to a request after token
// verification. Handlers that mutate owned records read the caller from here
// rather than trusting ids in the request body.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

type principalKey struct{}

// WithPrincipal stores p in ctx. Called by the auth middleware.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the Principal stored in ctx, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
