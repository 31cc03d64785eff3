package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/errors"
)

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{col: db.Collection(usersCollection)}
}

// Create persists a new user. The unique email index converts concurrent
// duplicate registrations into ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := &userDoc{
		Email:    user.Email,
		Password: user.PasswordHash,
		IsAdmin:  user.IsAdmin,
	}

	result, err := repo.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}
		return errors.Wrap(err, "failed to insert user")
	}

	user.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return nil
}

// FindByID retrieves a user by identifier. A malformed hex id is treated the
// same as an unknown one.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var doc userDoc
	if err := repo.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return doc.toDomain(), nil
}

// FindByEmail retrieves a user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	if err := repo.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return doc.toDomain(), nil
}

// Update persists changes to an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	objectID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return repository.ErrUserNotFound
	}

	update := bson.M{"$set": bson.M{
		"email":    user.Email,
		"password": user.PasswordHash,
		"isAdmin":  user.IsAdmin,
	}}

	result, err := repo.col.UpdateByID(ctx, objectID, update)
	if err != nil {
		return errors.Wrap(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindByIDs retrieves the users for the given identifiers, keyed by hex ID.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	users := make(map[string]*entity.User, len(objectIDs))
	if len(objectIDs) == 0 {
		return users, nil
	}

	cursor, err := repo.col.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode user")
		}
		user := doc.toDomain()
		users[user.ID] = user
	}

	return users, errors.Wrap(cursor.Err(), "failed to iterate users")
}
