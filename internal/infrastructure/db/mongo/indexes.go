package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index is load-bearing: user creation depends on the store rejecting
// duplicate emails under concurrency.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = db.Collection(customerCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "assigned_to_user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("customers assignment index: %w", err)
	}

	_, err = db.Collection(trainingCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "starts_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("trainings schedule index: %w", err)
	}

	_, err = db.Collection(taskCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "assigned_to_user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("tasks assignment index: %w", err)
	}

	_, err = db.Collection(paymentCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "paid_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("payments date index: %w", err)
	}

	return nil
}
