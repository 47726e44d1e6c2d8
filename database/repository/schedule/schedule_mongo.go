package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoScheduleRepo{coll: db.Collection("schedule")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ReplaceForDate replaces the whole roster for a date.
func (repo *MongoScheduleRepo) ReplaceForDate(date string, assignments []models.ShiftAssignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteMany(ctx, bson.M{"date": date}); err != nil {
		return fmt.Errorf("error clearing schedule for %s: %w", date, err)
	}
	if len(assignments) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(assignments))
	for _, a := range assignments {
		docs = append(docs, a)
	}
	if _, err := repo.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting schedule for %s: %w", date, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) GetByDate(date string) ([]models.ShiftAssignment, error) {
	return repo.find(bson.M{"date": date})
}

// GetOnDuty returns assignments for the date whose shift is a working one.
func (repo *MongoScheduleRepo) GetOnDuty(date string) ([]models.ShiftAssignment, error) {
	filter := bson.M{
		"date":  date,
		"shift": bson.M{"$in": []models.Shift{models.ShiftMorning, models.ShiftEvening}},
	}
	return repo.find(filter)
}

func (repo *MongoScheduleRepo) find(filter bson.M) ([]models.ShiftAssignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.ShiftAssignment
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding schedule: %w", err)
	}
	return result, nil
}
