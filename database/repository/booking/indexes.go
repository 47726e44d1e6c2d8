package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ensureBookingIndexes(coll *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "technician_id", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("date_technician_start_idx"),
		},
	}

	_, err := coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return nil
}

// ensureIndexes creates the necessary indexes on the consultations collection.
func (repo *MongoConsultationRepo) ensureIndexes() error {
	return ensureBookingIndexes(repo.coll)
}

// ensureIndexes creates the necessary indexes on the reservations collection.
func (repo *MongoReservationRepo) ensureIndexes() error {
	return ensureBookingIndexes(repo.coll)
}
