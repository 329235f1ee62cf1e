package planner_test

import (
	"testing"
	"time"

	"github.com/wanderkit/trip-planner-api/internal/planner"
)

func TestEstimateWeather_SeasonBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		start     time.Time
		wantTemp  int
		wantCond  string
		wantHumid int
	}{
		{"paris summer", date(2025, time.July, 15), 30, "Warm", 50},
		{"paris winter", date(2025, time.January, 10), 3, "Cold", 65},
		{"paris spring", date(2025, time.April, 5), 20, "Mild", 60},
		{"paris fall", date(2025, time.October, 20), 10, "Cool", 70},
		{"paris december", date(2025, time.December, 24), 3, "Cold", 65},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := planner.EstimateWeather("Paris", tc.start)
			if w.TemperatureC != tc.wantTemp || w.Condition != tc.wantCond || w.HumidityPct != tc.wantHumid {
				t.Fatalf("got %+v", w)
			}
			if len(w.PackingTips) != 4 {
				t.Fatalf("packing tips=%v", w.PackingTips)
			}
		})
	}
}

func TestEstimateWeather_IndiaOverride(t *testing.T) {
	t.Parallel()

	// April is spring generically, but Delhi forces the summer bucket.
	w := planner.EstimateWeather("Delhi", date(2025, time.May, 1))
	if w.Condition != "Warm" || w.TemperatureC != 30 {
		t.Fatalf("delhi may: %+v", w)
	}

	// January is winter generically, but India forces the fall bucket.
	w = planner.EstimateWeather("trip to India", date(2025, time.January, 15))
	if w.Condition != "Cool" || w.TemperatureC != 10 {
		t.Fatalf("india january: %+v", w)
	}

	// November likewise.
	w = planner.EstimateWeather("Delhi", date(2025, time.November, 5))
	if w.Condition != "Cool" {
		t.Fatalf("delhi november: %+v", w)
	}

	// August is summer for Delhi under both rules.
	w = planner.EstimateWeather("Delhi", date(2025, time.August, 5))
	if w.Condition != "Warm" {
		t.Fatalf("delhi august: %+v", w)
	}
}

func TestEstimateWeather_PackingTipsMatchCondition(t *testing.T) {
	t.Parallel()

	w := planner.EstimateWeather("London", date(2025, time.January, 2))
	if w.Condition != "Cold" {
		t.Fatalf("condition=%s", w.Condition)
	}
	if w.PackingTips[0] != "Pack heavy winter coat" {
		t.Fatalf("tips=%v", w.PackingTips)
	}
}
