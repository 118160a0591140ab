package auth

import (
	"context"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/usecase"
)

type contextKey struct{}

var identityKey = contextKey{}

// WithUser returns a context carrying the authenticated user. The auth
// middleware calls this after validating the bearer token.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, identityKey, user)
}

// UserFrom extracts the authenticated user from the context.
func UserFrom(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(identityKey).(*entity.User)
	return user, ok
}

// ContextIdentity implements usecase.AuthContext over the request context.
type ContextIdentity struct{}

func NewContextIdentity() *ContextIdentity {
	return &ContextIdentity{}
}

func (ContextIdentity) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, ok := UserFrom(ctx)
	if !ok || user == nil {
		return nil, &usecase.NotAuthenticatedError{}
	}
	return user, nil
}
