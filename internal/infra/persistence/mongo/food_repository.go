package mongo

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/errors"
)

// foodRepository implements repository.FoodRepository on the food collection.
type foodRepository struct {
	col *mongo.Collection
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *mongo.Database) repository.FoodRepository {
	return &foodRepository{col: db.Collection(foodCollection)}
}

// Create persists a new food item.
func (repo *foodRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	result, err := repo.col.InsertOne(ctx, fromFoodDomain(item))
	if err != nil {
		return errors.Wrap(err, "failed to insert food item")
	}

	item.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return nil
}

// FindByID retrieves a single food item.
func (repo *foodRepository) FindByID(ctx context.Context, id string) (*entity.FoodItem, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrFoodNotFound
	}

	var doc foodDoc
	if err := repo.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFoodNotFound
		}
		return nil, errors.Wrap(err, "failed to find food item by id")
	}

	item := doc.toDomain()

	return &item, nil
}

// List returns all food items matching the filter: exact category match and
// case-insensitive substring name search.
func (repo *foodRepository) List(ctx context.Context, filter repository.FoodFilter) ([]entity.FoodItem, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food items")
	}
	defer cursor.Close(ctx)

	items := []entity.FoodItem{}
	for cursor.Next(ctx) {
		var doc foodDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode food item")
		}
		items = append(items, doc.toDomain())
	}

	return items, errors.Wrap(cursor.Err(), "failed to iterate food items")
}

// Update replaces the mutable fields of an existing item.
func (repo *foodRepository) Update(ctx context.Context, item *entity.FoodItem) error {
	objectID, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return repository.ErrFoodNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"image":       item.Image,
		"category":    item.Category,
	}}

	result, err := repo.col.UpdateByID(ctx, objectID, update)
	if err != nil {
		return errors.Wrap(err, "failed to update food item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// Delete removes a food item. Order line items keep their snapshots.
func (repo *foodRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrFoodNotFound
	}

	result, err := repo.col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return errors.Wrap(err, "failed to delete food item")
	}
	if result.DeletedCount == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}
