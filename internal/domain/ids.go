package domain

// UserID identifies the caller a plan was generated for.
// It is an opaque token supplied by the client: its format is controlled by
// whatever sits in front of this service. Unidentified callers become "guest".
type UserID string

// GuestUser is the identity assigned when the caller supplies none.
const GuestUser UserID = "guest"

// PlanID is an internal identifier for a generated trip plan.
type PlanID string
