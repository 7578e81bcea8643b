package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adopet/account-service/internal/core/domain"
)

const activityCollection = "activities"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	UserID    string `bson:"user_id"`
	Kind      string `bson:"kind"`
	Timestamp int64  `bson:"timestamp"`
}

// Insert appends an entry to the audit trail.
func (r *MongoActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	doc := mongoActivity{
		UserID:    activity.UserID,
		Kind:      string(activity.Kind),
		Timestamp: activity.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
