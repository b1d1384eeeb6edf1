package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for the availabilities collection. The
// partial unique index is what rejects a duplicate active block.
func (r *mongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{
				{Key: "professionalId", Value: 1},
				{Key: "dayOfWeek", Value: 1},
				{Key: "startMinute", Value: 1},
				{Key: "endMinute", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "isActive", Value: true}}).
				SetName("unique_active_block"),
		},
		{
			Keys:    bson.D{{Key: "professionalId", Value: 1}, {Key: "dayOfWeek", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("professional_day_active_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
