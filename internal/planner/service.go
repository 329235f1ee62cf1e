// Package planner implements the trip plan generation engine: a synchronous,
// single-pass pipeline of pure functions over static knowledge tables.
// The Service wraps the pipeline with input validation and plan storage.
package planner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/knowledge"
	clockport "github.com/wanderkit/trip-planner-api/internal/ports/out/clock"
	"github.com/wanderkit/trip-planner-api/internal/ports/out/planrepo"
)

type Service struct {
	plans planrepo.Repository
	clock clockport.Clock

	newPlanID func() domain.PlanID
}

func NewService(plansRepo planrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		plans: plansRepo,
		clock: clk,
		newPlanID: func() domain.PlanID {
			return domain.PlanID(uuid.NewString())
		},
	}
}

// SetNewPlanIDForTest overrides plan ID generation for deterministic tests.
// It should not be used in production code.
func (s *Service) SetNewPlanIDForTest(fn func() domain.PlanID) {
	if fn != nil {
		s.newPlanID = fn
	}
}

// GeneratePlan validates the submitted trip facts, runs the generation
// pipeline, stores the resulting plan and returns it.
//
// Beyond the validation boundary the pipeline never fails: unknown
// destinations degrade to generic data, infeasible transport is reported as
// a structured result, and under-budget trips get a warning rather than a
// rejection.
func (s *Service) GeneratePlan(ctx context.Context, user domain.UserID, basic domain.TripBasicInfo, prefs domain.TripPreferences) (domain.TripPlan, error) {
	if user == "" {
		user = domain.GuestUser
	}

	basic.Destination = domain.NormalizeLocation(basic.Destination)
	basic.StartLocation = domain.NormalizeLocation(basic.StartLocation)
	if err := validateInputs(basic, prefs); err != nil {
		return domain.TripPlan{}, err
	}

	nights := nightsBetween(basic.StartDate, basic.EndDate)
	days := nights + 1

	profile, _ := knowledge.ResolveDestination(basic.Destination)
	transport := CheckTransportFeasibility(basic.StartLocation, basic.Destination, basic.TransportMode)
	hotels := GenerateHotels(prefs.HotelPreference, prefs.BudgetUSD, nights, basic.Destination)

	itinerary := make([]domain.DayItinerary, 0, days)
	for i := 0; i < days; i++ {
		date := basic.StartDate.AddDate(0, 0, i)
		itinerary = append(itinerary, BuildDayItinerary(i+1, date, profile))
	}

	weather := EstimateWeather(basic.Destination, basic.StartDate)

	sum := 0
	for _, h := range hotels {
		sum += h.PricePerNight
	}
	avgHotelPrice := float64(sum) / float64(len(hotels))

	budget := AllocateBudget(prefs.BudgetUSD, nights, transport.EstimatedCost, avgHotelPrice, basic.Destination)

	plan := domain.TripPlan{
		ID:          s.newPlanID(),
		UserID:      user,
		BasicInfo:   basic,
		Preferences: prefs,
		Itinerary:   itinerary,
		Hotels:      hotels,
		Transport:   transport,
		Weather:     weather,
		Budget:      budget,
		CreatedAt:   s.clock.Now().UTC(),
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		if errors.Is(err, planrepo.ErrAlreadyExists) {
			// Extremely unlikely (UUID collision); treat as conflict.
			return domain.TripPlan{}, &Error{Status: 409, Code: "PLAN_ID_CONFLICT", Message: "plan id conflict"}
		}
		return domain.TripPlan{}, err
	}
	return plan, nil
}

// GetPlan returns a stored plan. Plans belonging to other users are reported
// as not found rather than forbidden.
func (s *Service) GetPlan(ctx context.Context, user domain.UserID, id domain.PlanID) (domain.TripPlan, error) {
	if user == "" {
		user = domain.GuestUser
	}
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, planrepo.ErrNotFound) {
			return domain.TripPlan{}, &Error{Status: 404, Code: "PLAN_NOT_FOUND", Message: "plan not found"}
		}
		return domain.TripPlan{}, err
	}
	if p.UserID != user {
		return domain.TripPlan{}, &Error{Status: 404, Code: "PLAN_NOT_FOUND", Message: "plan not found"}
	}
	return p, nil
}

// ListPlans returns the caller's plans, newest first.
func (s *Service) ListPlans(ctx context.Context, user domain.UserID) ([]domain.TripPlan, error) {
	if user == "" {
		user = domain.GuestUser
	}
	return s.plans.ListByUser(ctx, user)
}

func validateInputs(basic domain.TripBasicInfo, prefs domain.TripPreferences) error {
	if basic.Destination == "" {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid destination", Details: map[string]any{"destination": "must be non-empty"}}
	}
	if basic.StartLocation == "" {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid startLocation", Details: map[string]any{"startLocation": "must be non-empty"}}
	}
	if basic.StartDate.IsZero() || basic.EndDate.IsZero() {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid date range", Details: map[string]any{"startDate": "both startDate and endDate are required"}}
	}
	// Same-day trips compute zero nights, which the hotel pricing formula
	// divides by; reject them here instead of guarding every formula.
	if !basic.EndDate.After(basic.StartDate) {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid date range", Details: map[string]any{"endDate": "must be after startDate"}}
	}
	if prefs.BudgetUSD < 0 {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid budget", Details: map[string]any{"budget": "must be non-negative"}}
	}
	switch prefs.HotelPreference {
	case "", domain.HotelTierLuxury, domain.HotelTierComfort, domain.HotelTierBudget:
	default:
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid hotelPreference", Details: map[string]any{"hotelPreference": "must be luxury, comfort or budget"}}
	}
	return nil
}

// nightsBetween is the ceiling of the calendar-day span between two dates.
// With date-only inputs the span is always whole days; the ceiling only
// matters if a caller passes intraday timestamps.
func nightsBetween(start, end time.Time) int {
	span := end.Sub(start)
	nights := int(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		nights++
	}
	return nights
}
