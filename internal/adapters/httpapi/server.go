package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wanderkit/trip-planner-api/internal/assistant"
	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/planner"
	"github.com/wanderkit/trip-planner-api/internal/ports/out/idempotency"
)

const createPlanRoute = "POST /v1/plans"

// Server is the HTTP adapter: it decodes requests, delegates to the planner
// service, and maps app errors to the JSON error envelope.
type Server struct {
	Plans *planner.Service
	Idem  idempotency.Store
}

func NewServer(plansSvc *planner.Service, idem idempotency.Store) *Server {
	return &Server{
		Plans: plansSvc,
		Idem:  idem,
	}
}

// handleCreatePlan implements POST /v1/plans.
//
// When the caller sends an Idempotency-Key, a repeated submission with the
// same key, identity and body replays the originally stored response instead
// of generating a second plan.
func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "cannot read request body", nil)
		return
	}

	var fp idempotency.Fingerprint
	idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idemKey != "" {
		sum := sha256.Sum256(body)
		fp = idempotency.Fingerprint{
			Key:      idempotency.Key(idemKey),
			User:     user,
			Method:   http.MethodPost,
			Route:    createPlanRoute,
			BodyHash: hex.EncodeToString(sum[:]),
		}
		if rec, ok, err := s.Idem.Get(r.Context(), fp); err == nil && ok {
			w.Header().Set("Content-Type", rec.ContentType)
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.Body)
			return
		}
	}

	var req createPlanRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", map[string]any{"body": err.Error()})
		return
	}

	basic := domain.TripBasicInfo{
		Destination:   req.BasicInfo.Destination,
		StartLocation: req.BasicInfo.StartLocation,
		StartDate:     req.BasicInfo.StartDate.Time,
		EndDate:       req.BasicInfo.EndDate.Time,
		TransportMode: domain.TransportMode(req.BasicInfo.TransportMode),
	}
	prefs := domain.TripPreferences{
		BudgetUSD:       req.Preferences.Budget,
		TicketBooking:   req.Preferences.TicketBooking,
		HotelPreference: domain.HotelTier(req.Preferences.HotelPreference),
	}

	plan, err := s.Plans.GeneratePlan(r.Context(), user, basic, prefs)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	payload, err := json.Marshal(toPlanResponse(plan))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "encoding failure", nil)
		return
	}

	if idemKey != "" {
		_ = s.Idem.Put(r.Context(), fp, idempotency.Record{
			StatusCode:  http.StatusCreated,
			ContentType: "application/json",
			Body:        payload,
			CreatedAt:   plan.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(payload)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	planID := domain.PlanID(chi.URLParam(r, "planID"))

	plan, err := s.Plans.GetPlan(r.Context(), user, planID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	plans, err := s.Plans.ListPlans(r.Context(), user)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	out := plansResponse{Plans: make([]planResponse, 0, len(plans))}
	for _, p := range plans {
		out.Plans = append(out.Plans, toPlanResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", map[string]any{"body": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid message", map[string]any{"message": "must be non-empty"})
		return
	}

	reply := assistant.GenerateChatResponse(req.Message, req.Destination)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *planner.Error
	if errors.As(err, &ae) {
		writeError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
