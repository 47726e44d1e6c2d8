package staffRepo

import (
	"context"
	"fmt"
	"time"

	"padoo/config"
	"padoo/database"
	"padoo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoStaffRepo{coll: db.Collection("staff")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (repo *MongoStaffRepo) Create(staff *models.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("error creating staff: %w", err)
	}
	return nil
}

func (repo *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("error fetching staff with id %s: %w", id, err)
	}
	return &staff, nil
}

// GetActiveByIDs returns active staff whose id is in the given set.
func (repo *MongoStaffRepo) GetActiveByIDs(ids []string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     bson.M{"$in": ids},
		"status": models.StaffStatusActive,
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching staff by id set: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.Staff
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return result, nil
}

func (repo *MongoStaffRepo) GetAll(status string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching staff list: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.Staff
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding staff list: %w", err)
	}
	return result, nil
}

func (repo *MongoStaffRepo) Update(id string, update map[string]interface{}) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if _, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": update}); err != nil {
		return nil, fmt.Errorf("error updating staff %s: %w", id, err)
	}

	var staff models.Staff
	if err := repo.coll.FindOne(ctx, filter).Decode(&staff); err != nil {
		return nil, fmt.Errorf("error fetching updated staff %s: %w", id, err)
	}
	return &staff, nil
}
