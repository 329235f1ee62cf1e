package idempotency

import (
	"context"
	"time"

	"github.com/wanderkit/trip-planner-api/internal/domain"
)

// Key is the caller-provided idempotency key (Idempotency-Key header).
type Key string

// Fingerprint identifies a plan-generation request uniquely for idempotency
// purposes: key + user + route + request body hash. Route is represented as
// HTTP method + path template (e.g. "POST /v1/plans").
//
// The generator must run at most once per finalized preference submission;
// a duplicate fingerprint replays the stored response instead.
type Fingerprint struct {
	Key      Key
	User     domain.UserID
	Method   string
	Route    string
	BodyHash string
}

// Record is the stored response we can replay for a duplicate request.
type Record struct {
	StatusCode  int
	ContentType string
	Body        []byte
	CreatedAt   time.Time
}

// Store persists idempotency records for replaying safe responses on retries.
type Store interface {
	Get(ctx context.Context, fp Fingerprint) (Record, bool, error)
	Put(ctx context.Context, fp Fingerprint, rec Record) error
}
