package rotationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"padoo/config"
	"padoo/database"
	"padoo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRotationRepo implements RotationRepository using MongoDB.
type MongoRotationRepo struct {
	coll *mongo.Collection
}

// NewMongoRotationRepo constructs a new instance of MongoRotationRepo.
func NewMongoRotationRepo() RotationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoRotationRepo{coll: db.Collection("rotation_queues")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// GetByDate returns the queue for the date, or (nil, nil) when absent.
func (repo *MongoRotationRepo) GetByDate(date string) (*models.RotationQueue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var queue models.RotationQueue
	err := repo.coll.FindOne(ctx, bson.M{"date": date}).Decode(&queue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching rotation queue for %s: %w", date, err)
	}
	return &queue, nil
}

func (repo *MongoRotationRepo) Insert(queue *models.RotationQueue) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, queue); err != nil {
		return fmt.Errorf("error creating rotation queue for %s: %w", queue.Date, err)
	}
	return nil
}

// Replace swaps the whole queue document for queue.Date, keeping staff_list
// and current_index in a single write.
func (repo *MongoRotationRepo) Replace(queue *models.RotationQueue) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"date": queue.Date}, queue)
	if err != nil {
		return fmt.Errorf("error replacing rotation queue for %s: %w", queue.Date, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("rotation queue for %s vanished during update", queue.Date)
	}
	return nil
}
