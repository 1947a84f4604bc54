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

const paymentCollection = "payments"

type MongoPaymentRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{db: db, coll: db.Collection(paymentCollection)}
}

type mongoPayment struct {
	ID         int64   `bson:"_id"`
	CustomerID int64   `bson:"customer_id"`
	Amount     float64 `bson:"amount"`
	PaidAt     int64   `bson:"paid_at"`
	Method     string  `bson:"method,omitempty"`
	Note       string  `bson:"note,omitempty"`
	CreatedAt  int64   `bson:"created_at"`
}

func toDomainPayment(mp mongoPayment) domain.Payment {
	return domain.Payment{
		ID:         mp.ID,
		CustomerID: mp.CustomerID,
		Amount:     mp.Amount,
		PaidAt:     unixToTime(mp.PaidAt),
		Method:     mp.Method,
		Note:       mp.Note,
		CreatedAt:  unixToTime(mp.CreatedAt),
	}
}

func (r *MongoPaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	id, err := nextID(ctx, r.db, paymentCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoPayment{
		ID:         id,
		CustomerID: payment.CustomerID,
		Amount:     payment.Amount,
		PaidAt:     payment.PaidAt.Unix(),
		Method:     payment.Method,
		Note:       payment.Note,
		CreatedAt:  payment.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *payment
	created.ID = id
	return &created, nil
}

func (r *MongoPaymentRepository) List(ctx context.Context, filter ports.PaymentFilter) ([]domain.Payment, error) {
	query := bson.M{}
	if filter.CustomerID != 0 {
		query["customer_id"] = filter.CustomerID
	}
	window := bson.M{}
	if !filter.From.IsZero() {
		window["$gte"] = filter.From.Unix()
	}
	if !filter.To.IsZero() {
		window["$lt"] = filter.To.Unix()
	}
	if len(window) > 0 {
		query["paid_at"] = window
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.M{"paid_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []domain.Payment
	for cursor.Next(ctx) {
		var mp mongoPayment
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, toDomainPayment(mp))
	}
	return payments, cursor.Err()
}

func (r *MongoPaymentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
