package httpapi

import (
	"context"

	"github.com/wanderkit/trip-planner-api/internal/domain"
)

type userKey struct{}

func WithUser(ctx context.Context, user domain.UserID) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the caller identity set by the identity middleware.
// Handlers behind the middleware can rely on it being present.
func UserFromContext(ctx context.Context) (domain.UserID, bool) {
	v, ok := ctx.Value(userKey{}).(domain.UserID)
	return v, ok && v != ""
}
