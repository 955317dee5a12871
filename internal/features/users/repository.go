package users

import (
	"context"
	"errors"

	"github.com/coastwatch/coastwatch-api/internal/features/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound means no user exists at the given id.
var ErrNotFound = errors.New("user not found")

// Repository provides the admin read side of the users collection. The
// password hash is excluded by projection on every query.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("users")}
}

var noPassword = bson.M{"password": 0}

// List returns one page of users plus the total match count.
func (r *Repository) List(ctx context.Context, filter ListFilter, sortBy, order string, offset, limit int) ([]auth.User, int64, error) {
	query := buildListFilter(filter)

	direction := -1
	if order == "asc" {
		direction = 1
	}
	if sortBy == "" {
		sortBy = "createdAt"
	}

	opts := options.Find().
		SetProjection(noPassword).
		SetSort(bson.D{{Key: sortBy, Value: direction}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []auth.User
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []auth.User{}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// GetByID finds a user by id. A malformed id reads as not found.
func (r *Repository) GetByID(ctx context.Context, id string) (*auth.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOne().SetProjection(noPassword)

	var user auth.User
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func buildListFilter(f ListFilter) bson.M {
	query := bson.M{}
	if f.Role != "" {
		query["role"] = f.Role
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Search != "" {
		regex := primitive.Regex{Pattern: f.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
			bson.M{"email": regex},
		}
	}
	return query
}
