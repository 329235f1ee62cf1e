package planner

import (
	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/knowledge"
)

const infeasibleModeMessage = "This transport mode is unavailable for your route. Try a flight or another feasible option."

// CheckTransportFeasibility decides whether the requested mode is usable on
// the route and returns its cost and duration. It is a total function: an
// unknown or unset mode degrades to a flight-like default rather than failing.
//
// Ground transport (train, bus) is only offered domestically; a route is
// international when origin and destination resolve to different known
// countries. An unresolved endpoint never blocks a mode.
func CheckTransportFeasibility(origin, destination string, mode domain.TransportMode) domain.TransportInfo {
	international := knowledge.IsInternationalRoute(origin, destination)

	switch mode {
	case domain.TransportModeFlight:
		if international {
			return domain.TransportInfo{Mode: "Flight", Feasible: true, EstimatedCost: 600, Duration: "8-12 hours"}
		}
		return domain.TransportInfo{Mode: "Flight", Feasible: true, EstimatedCost: 250, Duration: "2-4 hours"}

	case domain.TransportModeTrain:
		if international {
			return infeasibleTransport("Train")
		}
		return domain.TransportInfo{Mode: "Train", Feasible: true, EstimatedCost: 150, Duration: "4-8 hours"}

	case domain.TransportModeBus:
		if international {
			return infeasibleTransport("Bus")
		}
		return domain.TransportInfo{Mode: "Bus", Feasible: true, EstimatedCost: 80, Duration: "6-12 hours"}

	default:
		// Unset or unrecognized mode: best-effort flight.
		return domain.TransportInfo{Mode: "Flight", Feasible: true, EstimatedCost: 500, Duration: "8 hours"}
	}
}

func infeasibleTransport(mode string) domain.TransportInfo {
	msg := infeasibleModeMessage
	return domain.TransportInfo{
		Mode:          mode,
		Feasible:      false,
		EstimatedCost: 0,
		Duration:      "",
		Alternatives:  []string{"Flight"},
		Message:       &msg,
	}
}
