package models

// RoleType defines the caller role carried in JWT claims
type RoleType string

const (
	RoleCoordinator RoleType = "COORDINATOR"
	RoleStudent     RoleType = "STUDENT"
)

// PlacementStatus is the closed set of application states.
// Applied is the initial state; Offer_Accepted, Offer_Rejected and
// Not_Placed are terminal in the typical progression, but no transition
// graph is enforced (any status may be set to any other).
type PlacementStatus string

const (
	StatusApplied            PlacementStatus = "Applied"
	StatusShortlisted        PlacementStatus = "Shortlisted"
	StatusInterviewScheduled PlacementStatus = "Interview_Scheduled"
	StatusOffered            PlacementStatus = "Offered"
	StatusOfferAccepted      PlacementStatus = "Offer_Accepted"
	StatusOfferRejected      PlacementStatus = "Offer_Rejected"
	StatusNotPlaced          PlacementStatus = "Not_Placed"
)

// AllPlacementStatuses lists every status in display order.
var AllPlacementStatuses = []PlacementStatus{
	StatusApplied,
	StatusShortlisted,
	StatusInterviewScheduled,
	StatusOffered,
	StatusOfferAccepted,
	StatusOfferRejected,
	StatusNotPlaced,
}

// IsValid reports whether s is one of the known placement statuses.
func (s PlacementStatus) IsValid() bool {
	for _, known := range AllPlacementStatuses {
		if s == known {
			return true
		}
	}
	return false
}
