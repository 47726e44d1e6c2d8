package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"padoo/config"
	"padoo/database"
	"padoo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoReservationRepo{coll: db.Collection("reservations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (repo *MongoReservationRepo) Create(reservation *models.Reservation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}

func (repo *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var reservation models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation); err != nil {
		return nil, fmt.Errorf("error fetching reservation %s: %w", id, err)
	}
	return &reservation, nil
}

func (repo *MongoReservationRepo) SetStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	result, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating reservation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found", id)
	}
	return nil
}

// ListByDate returns booked reservations for the date, sorted by start.
func (repo *MongoReservationRepo) ListByDate(date, technicianID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "status": models.ReservationBooked}
	if technicianID != "" {
		filter["technician_id"] = technicianID
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.Reservation
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return result, nil
}
