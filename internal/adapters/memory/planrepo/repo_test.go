package planrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "github.com/wanderkit/trip-planner-api/internal/adapters/memory/planrepo"
	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/ports/out/planrepo"
)

func samplePlan(id domain.PlanID, user domain.UserID, createdAt time.Time) domain.TripPlan {
	warning := "Your budget seems too low for this location. We recommend at least $500 for a comfortable trip."
	return domain.TripPlan{
		ID:     id,
		UserID: user,
		BasicInfo: domain.TripBasicInfo{
			Destination:   "Paris",
			StartLocation: "London",
			StartDate:     time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
			TransportMode: domain.TransportModeTrain,
		},
		Preferences: domain.TripPreferences{BudgetUSD: 300},
		Itinerary: []domain.DayItinerary{
			{
				Day:         1,
				Date:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
				Activities:  []string{"Morning: Explore Eiffel Tower"},
				Attractions: []string{"Eiffel Tower"},
				Restaurants: []string{"Le Jules Verne"},
				LocalTips:   []string{"Learn basic French greetings"},
			},
		},
		Hotels: []domain.Hotel{
			{
				Name:          "Grand Luxury Hotel",
				Rating:        5,
				PricePerNight: 240,
				Amenities:     []string{"Spa", "Pool"},
			},
		},
		Transport: domain.TransportInfo{
			Mode:          string(domain.TransportModeTrain),
			Feasible:      true,
			EstimatedCost: 150,
			Duration:      "4-8 hours",
		},
		Weather: domain.WeatherInfo{
			Condition:   "Warm",
			PackingTips: []string{"Light cotton clothes"},
		},
		Budget: domain.BudgetBreakdown{
			Total:    300,
			Currency: "USD",
			Warning:  &warning,
		},
		CreatedAt: createdAt,
	}
}

func TestRepo_CreateAndGetByID(t *testing.T) {
	t.Parallel()

	repo := memrepo.NewRepo()
	ctx := context.Background()
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

	want := samplePlan("plan-1", "user-1", now)
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetByID(ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepo_CreateDuplicateID(t *testing.T) {
	t.Parallel()

	repo := memrepo.NewRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, samplePlan("plan-1", "user-1", now)))
	err := repo.Create(ctx, samplePlan("plan-1", "user-2", now))
	assert.ErrorIs(t, err, planrepo.ErrAlreadyExists)
}

func TestRepo_GetByIDNotFound(t *testing.T) {
	t.Parallel()

	repo := memrepo.NewRepo()
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, planrepo.ErrNotFound)
}

func TestRepo_ListByUserOrdering(t *testing.T) {
	t.Parallel()

	repo := memrepo.NewRepo()
	ctx := context.Background()
	base := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, samplePlan("plan-a", "user-1", base)))
	require.NoError(t, repo.Create(ctx, samplePlan("plan-b", "user-1", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, samplePlan("plan-c", "user-1", base.Add(time.Hour)))) // ties with plan-b
	require.NoError(t, repo.Create(ctx, samplePlan("plan-d", "user-2", base.Add(2*time.Hour))))

	got, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)

	ids := make([]domain.PlanID, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []domain.PlanID{"plan-b", "plan-c", "plan-a"}, ids)
}

func TestRepo_ListByUserEmpty(t *testing.T) {
	t.Parallel()

	repo := memrepo.NewRepo()
	got, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRepo_StoredPlansAreIsolated(t *testing.T) {
	t.Parallel()

	repo := memrepo.NewRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	p := samplePlan("plan-1", "user-1", now)
	require.NoError(t, repo.Create(ctx, p))

	// Mutating the caller's copy must not leak into the stored plan.
	p.Itinerary[0].Attractions[0] = "mutated"
	p.Hotels[0].Amenities[0] = "mutated"
	*p.Budget.Warning = "mutated"

	got, err := repo.GetByID(ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, "Eiffel Tower", got.Itinerary[0].Attractions[0])
	assert.Equal(t, "Spa", got.Hotels[0].Amenities[0])
	require.NotNil(t, got.Budget.Warning)
	assert.Contains(t, *got.Budget.Warning, "We recommend at least $500")

	// Mutating a returned plan must not affect subsequent reads either.
	got.Weather.PackingTips[0] = "mutated"
	again, err := repo.GetByID(ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, "Light cotton clothes", again.Weather.PackingTips[0])
}
