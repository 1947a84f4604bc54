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

const customerCollection = "customers"

type MongoCustomerRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *MongoCustomerRepository {
	return &MongoCustomerRepository{db: db, coll: db.Collection(customerCollection)}
}

type mongoCustomer struct {
	ID               int64  `bson:"_id"`
	FullName         string `bson:"full_name"`
	Phone            string `bson:"phone,omitempty"`
	Email            string `bson:"email,omitempty"`
	Status           string `bson:"status"`
	Notes            string `bson:"notes,omitempty"`
	AssignedToUserID int64  `bson:"assigned_to_user_id,omitempty"`
	CreatedAt        int64  `bson:"created_at"`
	UpdatedAt        int64  `bson:"updated_at"`
}

func toMongoCustomer(c *domain.Customer) mongoCustomer {
	return mongoCustomer{
		ID:               c.ID,
		FullName:         c.FullName,
		Phone:            c.Phone,
		Email:            c.Email,
		Status:           c.Status,
		Notes:            c.Notes,
		AssignedToUserID: c.AssignedToUserID,
		CreatedAt:        c.CreatedAt.Unix(),
		UpdatedAt:        c.UpdatedAt.Unix(),
	}
}

func toDomainCustomer(mc mongoCustomer) domain.Customer {
	return domain.Customer{
		ID:               mc.ID,
		FullName:         mc.FullName,
		Phone:            mc.Phone,
		Email:            mc.Email,
		Status:           mc.Status,
		Notes:            mc.Notes,
		AssignedToUserID: mc.AssignedToUserID,
		CreatedAt:        unixToTime(mc.CreatedAt),
		UpdatedAt:        unixToTime(mc.UpdatedAt),
	}
}

func (r *MongoCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	id, err := nextID(ctx, r.db, customerCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoCustomer(customer)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	created := *customer
	created.ID = id
	return &created, nil
}

func (r *MongoCustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var mc mongoCustomer
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	c := toDomainCustomer(mc)
	return &c, nil
}

func (r *MongoCustomerRepository) List(ctx context.Context, filter ports.CustomerFilter) ([]domain.Customer, error) {
	query := bson.M{}
	if filter.AssignedTo != nil {
		query["assigned_to_user_id"] = *filter.AssignedTo
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []domain.Customer
	for cursor.Next(ctx) {
		var mc mongoCustomer
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		customers = append(customers, toDomainCustomer(mc))
	}
	return customers, cursor.Err()
}

func (r *MongoCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": customer.ID}, toMongoCustomer(customer))
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *MongoCustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
