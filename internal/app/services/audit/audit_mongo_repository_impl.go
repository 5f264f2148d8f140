package audit

import (
	"context"

	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/mongo"
)

type auditMongoRepository struct {
	collection *mongo.Collection
}

func NewAuditMongoRepository(client *mongo.Client, dbName string) contracts.AuditRepository {
	return &auditMongoRepository{
		collection: client.Database(dbName).Collection(constvars.AuditCollection),
	}
}

func (r *auditMongoRepository) RecordLoginAttempt(ctx context.Context, attempt *models.LoginAttempt) error {
	_, err := r.collection.InsertOne(ctx, attempt)
	return err
}

// NopAuditRepository is used when auditing is disabled by config.
type NopAuditRepository struct{}

func (NopAuditRepository) RecordLoginAttempt(ctx context.Context, attempt *models.LoginAttempt) error {
	return nil
}
