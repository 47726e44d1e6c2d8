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

// MongoConsultationRepo implements ConsultationRepository using MongoDB.
type MongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo constructs a new instance of MongoConsultationRepo.
func NewMongoConsultationRepo() ConsultationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoConsultationRepo{coll: db.Collection("consultations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (repo *MongoConsultationRepo) Create(consultation *models.Consultation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, consultation); err != nil {
		return fmt.Errorf("error creating consultation: %w", err)
	}
	return nil
}

func (repo *MongoConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var consultation models.Consultation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultation); err != nil {
		return nil, fmt.Errorf("error fetching consultation %s: %w", id, err)
	}
	return &consultation, nil
}

func (repo *MongoConsultationRepo) SetVoided(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"voided": true}}
	result, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error voiding consultation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("consultation %s not found", id)
	}
	return nil
}

// ListByDate returns non-voided consultations for the date, sorted by start.
func (repo *MongoConsultationRepo) ListByDate(date, technicianID string) ([]models.Consultation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "voided": false}
	if technicianID != "" {
		filter["technician_id"] = technicianID
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.Consultation
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding consultations: %w", err)
	}
	return result, nil
}
