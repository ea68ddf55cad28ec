package models

// Insurance coverage states derived from the cover note entries returned by
// the insurance-verification service.
const (
	InsuranceActive   = "active"
	InsuranceExpired  = "expired"
	InsuranceNoRecord = "no_record"
)

// InsuranceResult holds the derived coverage state for a plate. RemainingDays
// is set only for active coverage and may be negative when the cover note
// claims active but the end date has passed. ExpiredDays is nil when the
// expired cover note carried an unparseable end date.
type InsuranceResult struct {
	Status        string `json:"status,omitempty"`
	ValidTill     string `json:"validTill,omitempty"`
	RemainingDays *int   `json:"remainingDays,omitempty"`
	ExpiredDays   *int   `json:"expiredDays,omitempty"`
	Error         string `json:"error,omitempty"`
}
