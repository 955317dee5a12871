package reports

import (
	"context"
	"errors"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound means no report exists at the given id.
	ErrNotFound = errors.New("report not found")

	// ErrNotPending means a verification transition was attempted on a
	// report that already left pending, including losing a concurrent race.
	ErrNotPending = errors.New("report is not pending verification")
)

// MaxListLimit is the server-side cap on list page size.
const MaxListLimit = 500

// Repository owns the reports collection. All timestamps come from the
// injected clock so tests can pin time.
type Repository struct {
	collection *mongo.Collection
	clock      clockwork.Clock
}

// NewRepository initializes the repository and creates the indexes the query
// planner depends on, including the 2dsphere index over location.
func NewRepository(db *mongo.Database, clock clockwork.Clock) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "hazardType", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection, clock: clock}
}

// Create persists a new report. Status, timestamps and id are assigned here;
// the caller's values for them are ignored.
func (r *Repository) Create(ctx context.Context, report *Report) error {
	now := r.clock.Now()
	report.Status = StatusPending
	report.VerifiedByID = nil
	report.VerifiedAt = nil
	report.CreatedAt = now
	report.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

// GetByID finds a report by its id. A malformed id reads as not found.
func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var report Report
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// List returns one page of reports plus the total match count. The filter is
// a conjunction over status and hazardType; sort may target any stored field.
func (r *Repository) List(ctx context.Context, filter ListFilter, sortBy, order string, offset, limit int) ([]Report, int64, error) {
	query := buildListFilter(filter)

	if limit < 1 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	opts := options.Find().
		SetSort(buildSort(sortBy, order)).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Report
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []Report{}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Verify transitions a pending report to verified. The update is a single
// conditional write: the filter matches only while status is still pending,
// so of two concurrent attempts exactly one succeeds and the other gets
// ErrNotPending.
func (r *Repository) Verify(ctx context.Context, id string, verifierID primitive.ObjectID) (*Report, error) {
	return r.transition(ctx, id, bson.M{
		"status":       StatusVerified,
		"verifiedById": verifierID,
		"verifiedAt":   r.clock.Now(),
		"updatedAt":    r.clock.Now(),
	})
}

// Reject transitions a pending report to rejected, recording the reason.
func (r *Repository) Reject(ctx context.Context, id string, verifierID primitive.ObjectID, reason string) (*Report, error) {
	set := bson.M{
		"status":       StatusRejected,
		"verifiedById": verifierID,
		"verifiedAt":   r.clock.Now(),
		"updatedAt":    r.clock.Now(),
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		set["rejectionReason"] = reason
	}
	return r.transition(ctx, id, set)
}

func (r *Repository) transition(ctx context.Context, id string, set bson.M) (*Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report Report
	err = r.collection.FindOneAndUpdate(ctx,
		transitionFilter(objectID),
		bson.M{"$set": set},
		opts,
	).Decode(&report)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either the report does not exist, or it already left pending.
			count, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": objectID})
			if countErr != nil {
				return nil, countErr
			}
			if count == 0 {
				return nil, ErrNotFound
			}
			return nil, ErrNotPending
		}
		return nil, err
	}

	return &report, nil
}

// transitionFilter is the compare-and-swap predicate: the document must still
// be pending for the update to match.
func transitionFilter(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "status": StatusPending}
}

func buildListFilter(f ListFilter) bson.M {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.HazardType != "" {
		query["hazardType"] = f.HazardType
	}
	return query
}

func buildSort(sortBy, order string) bson.D {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	direction := -1
	if order == "asc" {
		direction = 1
	}
	return bson.D{{Key: sortBy, Value: direction}}
}
