package planrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/ports/out/planrepo"
)

// Repo is an in-memory implementation of planrepo.Repository. Plans live
// for the lifetime of the process only. It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.PlanID]domain.TripPlan
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.PlanID]domain.TripPlan),
	}
}

func (r *Repo) Create(ctx context.Context, p domain.TripPlan) error {
	_ = ctx
	if p.ID == "" {
		return planrepo.ErrAlreadyExists // treat empty ID as invalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return planrepo.ErrAlreadyExists
	}
	r.byID[p.ID] = clonePlan(p)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PlanID) (domain.TripPlan, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return domain.TripPlan{}, planrepo.ErrNotFound
	}
	return clonePlan(p), nil
}

func (r *Repo) ListByUser(ctx context.Context, user domain.UserID) ([]domain.TripPlan, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.TripPlan, 0)
	for _, p := range r.byID {
		if p.UserID == user {
			out = append(out, clonePlan(p))
		}
	}
	// Newest first; ID breaks creation-time ties.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return string(out[i].ID) < string(out[j].ID)
	})
	return out, nil
}

// clonePlan deep-copies the slice-valued fields so callers cannot mutate
// stored plans through shared backing arrays.
func clonePlan(p domain.TripPlan) domain.TripPlan {
	cp := p

	if p.Itinerary != nil {
		cp.Itinerary = make([]domain.DayItinerary, len(p.Itinerary))
		for i, d := range p.Itinerary {
			cd := d
			cd.Activities = cloneStrings(d.Activities)
			cd.Attractions = cloneStrings(d.Attractions)
			cd.Restaurants = cloneStrings(d.Restaurants)
			cd.LocalTips = cloneStrings(d.LocalTips)
			cp.Itinerary[i] = cd
		}
	}
	if p.Hotels != nil {
		cp.Hotels = make([]domain.Hotel, len(p.Hotels))
		for i, h := range p.Hotels {
			ch := h
			ch.Amenities = cloneStrings(h.Amenities)
			ch.NearbyAttractions = cloneStrings(h.NearbyAttractions)
			cp.Hotels[i] = ch
		}
	}

	cp.Transport.Alternatives = cloneStrings(p.Transport.Alternatives)
	cp.Transport.Message = cloneStringPtr(p.Transport.Message)
	cp.Weather.PackingTips = cloneStrings(p.Weather.PackingTips)
	cp.Budget.LocalCurrencyTotal = cloneIntPtr(p.Budget.LocalCurrencyTotal)
	cp.Budget.LocalCurrency = cloneStringPtr(p.Budget.LocalCurrency)
	cp.Budget.Warning = cloneStringPtr(p.Budget.Warning)

	return cp
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
