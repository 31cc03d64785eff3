package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/errors"
)

// orderRepository implements repository.OrderRepository on the orders
// collection.
type orderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{col: db.Collection(ordersCollection)}
}

// Create persists a new order, stamping the creation time.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	doc, err := fromOrderDomain(order)
	if err != nil {
		return errors.Wrap(err, "failed to map order for insertion")
	}

	result, err := repo.col.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	order.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return nil
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrOrderNotFound
	}

	var doc orderDoc
	if err := repo.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return doc.toDomain(), nil
}

// FindByPaymentIntentID looks up the order created for a payment intent.
func (repo *orderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error) {
	var doc orderDoc
	if err := repo.col.FindOne(ctx, bson.M{"paymentIntentId": intentID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "failed to find order by payment intent")
	}

	return doc.toDomain(), nil
}

// ListByUser returns all orders owned by userID, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []entity.Order{}, nil
	}

	return repo.list(ctx, bson.M{"user": objectID})
}

// ListAll returns every order across all users, newest first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	return repo.list(ctx, bson.M{})
}

func (repo *orderRepository) list(ctx context.Context, filter bson.M) ([]entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	defer cursor.Close(ctx)

	orders := []entity.Order{}
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode order")
		}
		orders = append(orders, *doc.toDomain())
	}

	return orders, errors.Wrap(cursor.Err(), "failed to iterate orders")
}

// UpdateStatus moves the fulfillment status from the expected value to the
// new one and returns the updated order. The filter includes the expected
// status, so a concurrent update that already moved the order makes this
// write a no-op instead of a backward jump.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, from, to entity.FulfillmentStatus) (*entity.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrOrderNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": objectID, "status": string(from)}
	update := bson.M{"$set": bson.M{"status": string(to)}}

	var doc orderDoc
	err = repo.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// The order exists (the service just loaded it); the filter
			// can only miss because the status moved under us.
			return nil, repository.ErrStaleOrderStatus
		}
		return nil, errors.Wrap(err, "failed to update order status")
	}

	return doc.toDomain(), nil
}
