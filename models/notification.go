package models

// Notification trigger codes, in the order the aggregator evaluates them.
const (
	NotificationTrafficViolation  = "traffic_violation"
	NotificationUnpaidParking     = "unpaid_parking"
	NotificationInsuranceExpired  = "insurance_expired"
	NotificationInsuranceExpiring = "insurance_expiring"
)

// Notification is a localized owner-facing alert tagged with the condition
// that triggered it
type Notification struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
