package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-check-api/databases"
	"github.com/linesmerrill/vehicle-check-api/models"
)

// MongoLogger mirrors audit entries into the auditEntries collection. It is
// an optional second sink behind the file log, enabled when DB_URI is set.
type MongoLogger struct {
	DB databases.AuditDatabase
}

// NewMongoLogger returns a mongo-backed audit logger
func NewMongoLogger(db databases.AuditDatabase) *MongoLogger {
	return &MongoLogger{DB: db}
}

// Alert inserts one audit entry document
func (l *MongoLogger) Alert(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := models.AuditEntry{Timestamp: time.Now(), Message: message}
	if err := l.DB.InsertOne(ctx, entry); err != nil {
		zap.S().Errorw("failed to insert audit entry", "error", err)
	}
}
