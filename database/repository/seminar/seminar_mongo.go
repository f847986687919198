package seminarRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seminarly/database"
	"seminarly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoSeminarRepo implements SeminarRepository using MongoDB.
type MongoSeminarRepo struct {
	coll *mongo.Collection
}

// NewMongoSeminarRepo creates a new instance of SeminarRepository using MongoDB.
func NewMongoSeminarRepo(db *mongo.Database) SeminarRepository {
	repo := &MongoSeminarRepo{coll: db.Collection("seminars")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("seminarRepo: failed to create indexes", zap.Error(err))
	}
	return repo
}

// newContext derives a bounded context for a single round trip.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoSeminarRepo) GetByID(ctx context.Context, id string) (*models.Seminar, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var seminar models.Seminar
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&seminar); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch seminar with id %s: %w", id, err)
	}
	return &seminar, nil
}

func (r *MongoSeminarRepo) GetAll(ctx context.Context) ([]models.Seminar, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve seminars: %w", err)
	}
	defer cursor.Close(ctx)

	seminars := make([]models.Seminar, 0)
	if err := cursor.All(ctx, &seminars); err != nil {
		return nil, fmt.Errorf("failed to decode seminars: %w", err)
	}
	return seminars, nil
}

func (r *MongoSeminarRepo) Create(ctx context.Context, seminar *models.Seminar) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	seminar.CreatedAt = now
	seminar.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, seminar); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to create seminar: %w", err)
	}
	return nil
}

func (r *MongoSeminarRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		if k == "slotsAvailable" || k == "id" {
			continue
		}
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update seminar with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoSeminarRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete seminar with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

// ReserveSlot is a single conditional update; the capacity check runs inside
// the server so two racing reservations cannot both take the last slot.
func (r *MongoSeminarRepo) ReserveSlot(ctx context.Context, id string) (*models.Seminar, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "slotsAvailable": bson.M{"$gt": 0}}
	update := bson.M{
		"$inc": bson.M{"slotsAvailable": -1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var seminar models.Seminar
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&seminar)
	if err == nil {
		return &seminar, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to reserve slot for seminar %s: %w", id, err)
	}

	// Nothing matched: tell "full" apart from "missing".
	n, countErr := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if countErr != nil {
		return nil, fmt.Errorf("failed to reserve slot for seminar %s: %w", id, countErr)
	}
	if n == 0 {
		return nil, database.ErrNotFound
	}
	return nil, database.ErrNoSlotsLeft
}

func (r *MongoSeminarRepo) ReleaseSlot(ctx context.Context, id string) (*models.Seminar, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"slotsAvailable": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var seminar models.Seminar
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&seminar); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to release slot for seminar %s: %w", id, err)
	}
	return &seminar, nil
}

func (r *MongoSeminarRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count seminars: %w", err)
	}
	return n, nil
}
