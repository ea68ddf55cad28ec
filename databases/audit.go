package databases

// go generate: mockery --name AuditDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/vehicle-check-api/models"
)

const auditName = "auditEntries"

// AuditDatabase contains the methods to use with the audit trail collection
type AuditDatabase interface {
	InsertOne(ctx context.Context, entry models.AuditEntry, opts ...*options.InsertOneOptions) error
}

type auditDatabase struct {
	db DatabaseHelper
}

// NewAuditDatabase initializes a new instance of audit database with the provided db connection
func NewAuditDatabase(db DatabaseHelper) AuditDatabase {
	return &auditDatabase{
		db: db,
	}
}

func (c *auditDatabase) InsertOne(ctx context.Context, entry models.AuditEntry, opts ...*options.InsertOneOptions) error {
	return c.db.Collection(auditName).InsertOne(ctx, entry, opts...)
}
