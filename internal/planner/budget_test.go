package planner_test

import (
	"strings"
	"testing"

	"github.com/wanderkit/trip-planner-api/internal/planner"
)

func TestAllocateBudget_CategorySplit(t *testing.T) {
	t.Parallel()

	b := planner.AllocateBudget(3000, 4, 250, 178, "Nowhere Special")
	// accommodation 712, remaining 2038, food/activities 1019 each.
	if b.Transport != 250 || b.Accommodation != 712 {
		t.Fatalf("transport/accommodation: %+v", b)
	}
	if b.Food != 1019 || b.Activities != 1019 {
		t.Fatalf("food/activities: %+v", b)
	}
	if b.Total != 3000 || b.Currency != "USD" {
		t.Fatalf("total/currency: %+v", b)
	}
	if b.LocalCurrency != nil || b.LocalCurrencyTotal != nil {
		t.Fatalf("unknown destination must stay USD-only: %+v", b)
	}
	if b.Warning != nil {
		t.Fatalf("unexpected warning: %s", *b.Warning)
	}
}

func TestAllocateBudget_FloorsApplyWhenUnderfunded(t *testing.T) {
	t.Parallel()

	b := planner.AllocateBudget(100, 5, 600, 100, "Nowhere Special")

	// remaining is -1000; the per-night floors take over.
	if b.Food != 250 || b.Activities != 200 {
		t.Fatalf("floors: %+v", b)
	}
	// Total legitimately exceeds the stated budget.
	if b.Total != 1550 {
		t.Fatalf("total=%d", b.Total)
	}
	if b.Warning == nil {
		t.Fatalf("expected warning")
	}
	if want := "We recommend at least $1600"; !strings.Contains(*b.Warning, want) {
		t.Fatalf("warning=%q want substring %q", *b.Warning, want)
	}
}

func TestAllocateBudget_WarningThreshold(t *testing.T) {
	t.Parallel()

	// minRecommended = 100 + 100*2 + 2*100 = 500; threshold 350.
	if b := planner.AllocateBudget(349, 2, 100, 100, "x"); b.Warning == nil {
		t.Fatalf("349 < 350 must warn")
	}
	if b := planner.AllocateBudget(350, 2, 100, 100, "x"); b.Warning != nil {
		t.Fatalf("350 is not under threshold: %s", *b.Warning)
	}
}

func TestAllocateBudget_LocalCurrencyConversion(t *testing.T) {
	t.Parallel()

	b := planner.AllocateBudget(1000, 2, 0, 100, "Tokyo")
	// accommodation 200, remaining 800, food/activities 400 each, total 1000.
	if b.LocalCurrency == nil || *b.LocalCurrency != "JPY" {
		t.Fatalf("local currency: %+v", b)
	}
	if b.LocalCurrencyTotal == nil || *b.LocalCurrencyTotal != 149500 {
		t.Fatalf("local total: %+v", b)
	}
}
