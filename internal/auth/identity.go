package auth

import "context"

// Identity is the authenticated principal performing an action. The zero
// value means "not logged in".
type Identity string

func (i Identity) IsZero() bool { return i == "" }

type contextKey struct{}

// WithIdentity attaches the authenticated identity to the request context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFrom extracts the authenticated identity from the context,
// returning the zero Identity when none was attached.
func IdentityFrom(ctx context.Context) Identity {
	id, _ := ctx.Value(contextKey{}).(Identity)
	return id
}
