package analyticsRepo

import (
	"context"
	"fmt"
	"time"

	"seminarly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAnalyticsRepo runs aggregation pipelines over the bookings collection.
type MongoAnalyticsRepo struct {
	bookings *mongo.Collection
}

func NewMongoAnalyticsRepo(db *mongo.Database) AnalyticsRepository {
	return &MongoAnalyticsRepo{bookings: db.Collection("bookings")}
}

func (r *MongoAnalyticsRepo) BookingsByStatus(ctx context.Context) (map[models.PaymentStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$paymentStatus"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings by status: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status models.PaymentStatus `bson:"_id"`
		Count  int64                `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}

	counts := map[models.PaymentStatus]int64{
		models.PaymentPending:   0,
		models.PaymentConfirmed: 0,
		models.PaymentRejected:  0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *MongoAnalyticsRepo) ConfirmedRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"paymentStatus": models.PaymentConfirmed}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate confirmed revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *MongoAnalyticsRepo) PerSeminar(ctx context.Context) ([]models.SeminarBookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	countIf := func(status models.PaymentStatus) bson.D {
		return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$eq", Value: bson.A{"$paymentStatus", status}}}, 1, 0,
		}}}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$seminarId"},
			{Key: "pending", Value: countIf(models.PaymentPending)},
			{Key: "confirmed", Value: countIf(models.PaymentConfirmed)},
			{Key: "rejected", Value: countIf(models.PaymentRejected)},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "seminars"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "id"},
			{Key: "as", Value: "seminar"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$seminar"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "pending", Value: 1},
			{Key: "confirmed", Value: 1},
			{Key: "rejected", Value: 1},
			{Key: "title", Value: "$seminar.title"},
			{Key: "slotsAvailable", Value: "$seminar.slotsAvailable"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate per-seminar stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := make([]models.SeminarBookingStats, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode per-seminar stats: %w", err)
	}
	return stats, nil
}
