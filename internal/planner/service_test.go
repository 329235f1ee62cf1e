package planner_test

import (
	"context"
	"testing"
	"time"

	memplanrepo "github.com/wanderkit/trip-planner-api/internal/adapters/memory/planrepo"
	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/planner"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(t *testing.T) (*planner.Service, *memplanrepo.Repo) {
	t.Helper()
	repo := memplanrepo.NewRepo()
	svc := planner.NewService(repo, fixedClock{now: time.Unix(1_700_000_000, 0).UTC()})
	n := 0
	svc.SetNewPlanIDForTest(func() domain.PlanID {
		n++
		return domain.PlanID("p" + string(rune('0'+n)))
	})
	return svc, repo
}

func tokyoTrip() (domain.TripBasicInfo, domain.TripPreferences) {
	basic := domain.TripBasicInfo{
		Destination:   "Tokyo",
		StartLocation: "New York",
		StartDate:     date(2025, time.June, 1),
		EndDate:       date(2025, time.June, 5),
		TransportMode: domain.TransportModeTrain,
	}
	prefs := domain.TripPreferences{
		BudgetUSD:       3000,
		HotelPreference: domain.HotelTierComfort,
	}
	return basic, prefs
}

func TestGeneratePlan_EndToEndTokyo(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	basic, prefs := tokyoTrip()

	plan, err := svc.GeneratePlan(context.Background(), "u1", basic, prefs)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if plan.ID == "" || plan.UserID != "u1" {
		t.Fatalf("identity: %+v", plan)
	}

	// International train is rejected with a flight alternative.
	if plan.Transport.Feasible {
		t.Fatalf("transport: %+v", plan.Transport)
	}
	if len(plan.Transport.Alternatives) != 1 || plan.Transport.Alternatives[0] != "Flight" {
		t.Fatalf("alternatives: %v", plan.Transport.Alternatives)
	}

	// 4 nights -> 5 itinerary days, strictly sequential dates.
	if len(plan.Itinerary) != 5 {
		t.Fatalf("itinerary len=%d", len(plan.Itinerary))
	}
	for i, d := range plan.Itinerary {
		if d.Day != i+1 {
			t.Fatalf("day index at %d: %+v", i, d)
		}
		want := basic.StartDate.AddDate(0, 0, i)
		if !d.Date.Equal(want) {
			t.Fatalf("day %d date=%s want %s", d.Day, d.Date, want)
		}
	}
	if plan.Itinerary[0].Attractions[0] != "Senso-ji Temple" {
		t.Fatalf("day1 attractions=%v", plan.Itinerary[0].Attractions)
	}

	if len(plan.Hotels) != 6 {
		t.Fatalf("hotels len=%d", len(plan.Hotels))
	}

	// Budget converts into JPY.
	if plan.Budget.LocalCurrency == nil || *plan.Budget.LocalCurrency != "JPY" {
		t.Fatalf("budget: %+v", plan.Budget)
	}
	if plan.Budget.Total != 3000 {
		t.Fatalf("total=%d", plan.Budget.Total)
	}
	if plan.Budget.LocalCurrencyTotal == nil || *plan.Budget.LocalCurrencyTotal != 448500 {
		t.Fatalf("local total: %+v", plan.Budget.LocalCurrencyTotal)
	}

	// June in Tokyo is the summer bucket.
	if plan.Weather.Condition != "Warm" || plan.Weather.TemperatureC != 30 {
		t.Fatalf("weather: %+v", plan.Weather)
	}
}

func TestGeneratePlan_DeterministicUpToIdentity(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	basic, prefs := tokyoTrip()

	p1, err := svc.GeneratePlan(context.Background(), "u1", basic, prefs)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	p2, err := svc.GeneratePlan(context.Background(), "u1", basic, prefs)
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if p1.ID == p2.ID {
		t.Fatalf("ids must differ")
	}
	// Strip identity; everything else must match.
	p2.ID = p1.ID
	p2.CreatedAt = p1.CreatedAt

	if len(p1.Itinerary) != len(p2.Itinerary) || p1.Budget.Total != p2.Budget.Total || p1.Weather.Condition != p2.Weather.Condition {
		t.Fatalf("plans diverge:\n%+v\n%+v", p1, p2)
	}
	for i := range p1.Hotels {
		if p1.Hotels[i].Name != p2.Hotels[i].Name || p1.Hotels[i].PricePerNight != p2.Hotels[i].PricePerNight {
			t.Fatalf("hotels diverge at %d", i)
		}
	}
}

func TestGeneratePlan_GuestDefault(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	basic, prefs := tokyoTrip()

	plan, err := svc.GeneratePlan(context.Background(), "", basic, prefs)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.UserID != domain.GuestUser {
		t.Fatalf("user=%s", plan.UserID)
	}
}

func TestGeneratePlan_UnknownDestinationDegrades(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	basic, prefs := tokyoTrip()
	basic.Destination = "Unknownistan"
	basic.TransportMode = domain.TransportModeFlight

	plan, err := svc.GeneratePlan(context.Background(), "u1", basic, prefs)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Itinerary[0].Attractions[0] != "Historic Old Town" {
		t.Fatalf("generic profile expected: %v", plan.Itinerary[0].Attractions)
	}
	if plan.Budget.LocalCurrency != nil {
		t.Fatalf("no local currency for unknown destination: %+v", plan.Budget)
	}
}

func TestGeneratePlan_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*domain.TripBasicInfo, *domain.TripPreferences)
	}{
		{"empty destination", func(b *domain.TripBasicInfo, _ *domain.TripPreferences) { b.Destination = "   " }},
		{"empty origin", func(b *domain.TripBasicInfo, _ *domain.TripPreferences) { b.StartLocation = "" }},
		{"missing dates", func(b *domain.TripBasicInfo, _ *domain.TripPreferences) { b.StartDate = time.Time{} }},
		{"same-day trip", func(b *domain.TripBasicInfo, _ *domain.TripPreferences) { b.EndDate = b.StartDate }},
		{"end before start", func(b *domain.TripBasicInfo, _ *domain.TripPreferences) {
			b.EndDate = b.StartDate.AddDate(0, 0, -1)
		}},
		{"negative budget", func(_ *domain.TripBasicInfo, p *domain.TripPreferences) { p.BudgetUSD = -1 }},
		{"bad hotel preference", func(_ *domain.TripBasicInfo, p *domain.TripPreferences) { p.HotelPreference = "palace" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			basic, prefs := tokyoTrip()
			tc.mutate(&basic, &prefs)
			_, err := svc.GeneratePlan(context.Background(), "u1", basic, prefs)
			ae, ok := err.(*planner.Error)
			if !ok {
				t.Fatalf("err=%v", err)
			}
			if ae.Status != 422 || ae.Code != "VALIDATION_ERROR" {
				t.Fatalf("unexpected app error: %+v", ae)
			}
		})
	}
}

func TestGetPlan_OwnershipIsNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	basic, prefs := tokyoTrip()

	plan, err := svc.GeneratePlan(context.Background(), "u1", basic, prefs)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if _, err := svc.GetPlan(context.Background(), "u1", plan.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	_, err = svc.GetPlan(context.Background(), "u2", plan.ID)
	ae, ok := err.(*planner.Error)
	if !ok || ae.Status != 404 || ae.Code != "PLAN_NOT_FOUND" {
		t.Fatalf("cross-user get: %v", err)
	}
}

func TestListPlans_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := memplanrepo.NewRepo()
	base := time.Unix(1_700_000_000, 0).UTC()

	mk := func(id domain.PlanID, user domain.UserID, at time.Time) {
		t.Helper()
		if err := repo.Create(context.Background(), domain.TripPlan{ID: id, UserID: user, CreatedAt: at}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	mk("a", "u1", base)
	mk("b", "u1", base.Add(time.Hour))
	mk("c", "u2", base.Add(2*time.Hour))

	svc := planner.NewService(repo, fixedClock{now: base})
	got, err := svc.ListPlans(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("order: %+v", got)
	}
}
