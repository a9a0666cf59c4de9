package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/ordering/internal/domain/customer"
	"github.com/umalmyha/ordering/internal/domain/money"
	"github.com/umalmyha/ordering/internal/domain/order"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	orderDatabase   = "ordering"
	orderCollection = "orders"
)

// OrderRepository is the read-only view over the order store; the customer
// core never writes orders.
type OrderRepository interface {
	FindByID(context.Context, string) (*order.Order, error)
}

type orderDocument struct {
	ID          string `bson:"_id"`
	CustomerID  string `bson:"customerId"`
	TotalAmount string `bson:"totalAmount"`
	Status      string `bson:"status"`
}

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(client *mongo.Client) OrderRepository {
	return &mongoOrderRepository{collection: client.Database(orderDatabase).Collection(orderCollection)}
}

func (repo *mongoOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var doc orderDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toOrder()
}

func (doc orderDocument) toOrder() (*order.Order, error) {
	orderID, err := order.ParseOrderID(doc.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := customer.ParseCustomerID(doc.CustomerID)
	if err != nil {
		return nil, err
	}

	totalAmount, err := money.New(doc.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}

	return order.New(orderID, customerID, totalAmount, status)
}
