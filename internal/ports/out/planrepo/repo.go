package planrepo

import (
	"context"

	"github.com/wanderkit/trip-planner-api/internal/domain"
)

// Repository provides access to generated trip plans for the lifetime of
// the process. Plans are append-only: there is no update operation, because
// a changed input produces a new plan with a new ID.
//
// ListByUser must return results deterministically ordered: newest first,
// ties broken by ID.
type Repository interface {
	Create(ctx context.Context, p domain.TripPlan) error

	GetByID(ctx context.Context, id domain.PlanID) (domain.TripPlan, error)

	ListByUser(ctx context.Context, user domain.UserID) ([]domain.TripPlan, error)
}
