package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

const taskCollection = "tasks"

type MongoTaskRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{db: db, coll: db.Collection(taskCollection)}
}

type mongoTask struct {
	ID               int64  `bson:"_id"`
	Title            string `bson:"title"`
	DueDate          int64  `bson:"due_date,omitempty"`
	Done             bool   `bson:"done"`
	AssignedToUserID int64  `bson:"assigned_to_user_id,omitempty"`
	CreatedAt        int64  `bson:"created_at"`
	UpdatedAt        int64  `bson:"updated_at"`
}

func toMongoTask(t *domain.Task) mongoTask {
	mt := mongoTask{
		ID:               t.ID,
		Title:            t.Title,
		Done:             t.Done,
		AssignedToUserID: t.AssignedToUserID,
		CreatedAt:        t.CreatedAt.Unix(),
		UpdatedAt:        t.UpdatedAt.Unix(),
	}
	if t.DueDate != nil {
		mt.DueDate = t.DueDate.Unix()
	}
	return mt
}

func toDomainTask(mt mongoTask) domain.Task {
	t := domain.Task{
		ID:               mt.ID,
		Title:            mt.Title,
		Done:             mt.Done,
		AssignedToUserID: mt.AssignedToUserID,
		CreatedAt:        unixToTime(mt.CreatedAt),
		UpdatedAt:        unixToTime(mt.UpdatedAt),
	}
	if mt.DueDate != 0 {
		due := time.Unix(mt.DueDate, 0).UTC()
		t.DueDate = &due
	}
	return t
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	id, err := nextID(ctx, r.db, taskCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoTask(task)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task
	created.ID = id
	return &created, nil
}

func (r *MongoTaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var mt mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	t := toDomainTask(mt)
	return &t, nil
}

func (r *MongoTaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]domain.Task, error) {
	query := bson.M{}
	if filter.AssignedTo != nil {
		query["assigned_to_user_id"] = *filter.AssignedTo
	}
	if filter.Done != nil {
		query["done"] = *filter.Done
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.M{"due_date": 1}))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	for cursor.Next(ctx) {
		var mt mongoTask
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, toDomainTask(mt))
	}
	return tasks, cursor.Err()
}

func (r *MongoTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": task.ID}, toMongoTask(task))
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
