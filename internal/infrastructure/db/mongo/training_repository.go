package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

const trainingCollection = "trainings"

type MongoTrainingRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTrainingRepository(db *mongo.Database) *MongoTrainingRepository {
	return &MongoTrainingRepository{db: db, coll: db.Collection(trainingCollection)}
}

type mongoTraining struct {
	ID              int64   `bson:"_id"`
	Title           string  `bson:"title"`
	InstructorID    int64   `bson:"instructor_id,omitempty"`
	StartsAt        int64   `bson:"starts_at"`
	DurationMinutes int     `bson:"duration_minutes"`
	Capacity        int     `bson:"capacity,omitempty"`
	Price           float64 `bson:"price,omitempty"`
	CreatedAt       int64   `bson:"created_at"`
	UpdatedAt       int64   `bson:"updated_at"`
}

func toMongoTraining(t *domain.Training) mongoTraining {
	return mongoTraining{
		ID:              t.ID,
		Title:           t.Title,
		InstructorID:    t.InstructorID,
		StartsAt:        t.StartsAt.Unix(),
		DurationMinutes: t.DurationMinutes,
		Capacity:        t.Capacity,
		Price:           t.Price,
		CreatedAt:       t.CreatedAt.Unix(),
		UpdatedAt:       t.UpdatedAt.Unix(),
	}
}

func toDomainTraining(mt mongoTraining) domain.Training {
	return domain.Training{
		ID:              mt.ID,
		Title:           mt.Title,
		InstructorID:    mt.InstructorID,
		StartsAt:        unixToTime(mt.StartsAt),
		DurationMinutes: mt.DurationMinutes,
		Capacity:        mt.Capacity,
		Price:           mt.Price,
		CreatedAt:       unixToTime(mt.CreatedAt),
		UpdatedAt:       unixToTime(mt.UpdatedAt),
	}
}

func (r *MongoTrainingRepository) Create(ctx context.Context, training *domain.Training) (*domain.Training, error) {
	id, err := nextID(ctx, r.db, trainingCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoTraining(training)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert training: %w", err)
	}

	created := *training
	created.ID = id
	return &created, nil
}

func (r *MongoTrainingRepository) FindByID(ctx context.Context, id int64) (*domain.Training, error) {
	var mt mongoTraining
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("find training: %w", err)
	}
	t := toDomainTraining(mt)
	return &t, nil
}

func (r *MongoTrainingRepository) List(ctx context.Context, filter ports.TrainingFilter) ([]domain.Training, error) {
	query := bson.M{}
	window := bson.M{}
	if !filter.From.IsZero() {
		window["$gte"] = filter.From.Unix()
	}
	if !filter.To.IsZero() {
		window["$lt"] = filter.To.Unix()
	}
	if len(window) > 0 {
		query["starts_at"] = window
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.M{"starts_at": 1}))
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	defer cursor.Close(ctx)

	var trainings []domain.Training
	for cursor.Next(ctx) {
		var mt mongoTraining
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode training: %w", err)
		}
		trainings = append(trainings, toDomainTraining(mt))
	}
	return trainings, cursor.Err()
}

func (r *MongoTrainingRepository) Update(ctx context.Context, training *domain.Training) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": training.ID}, toMongoTraining(training))
	if err != nil {
		return fmt.Errorf("update training: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTrainingNotFound
	}
	return nil
}

func (r *MongoTrainingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete training: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTrainingNotFound
	}
	return nil
}
