package models

import "time"

// AuditEntry holds the structure for the auditEntries collection when the
// optional mongo audit sink is configured
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Message   string    `json:"message" bson:"message"`
}
