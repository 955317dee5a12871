package maps

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxResults caps map query payloads regardless of how many reports match.
// A dense viewport simply saturates; precision is traded for bounded size.
const MaxResults = 500

// Repository plans geospatial queries against the reports collection. It
// relies on the 2dsphere index the reports feature maintains.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("reports")}
}

// Find runs one planned query. Radius queries come back nearest-first, which
// is the $nearSphere ordering guarantee.
func (r *Repository) Find(ctx context.Context, q Query) ([]MapReport, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"location":   1,
			"severity":   1,
			"status":     1,
			"hazardType": 1,
		}).
		SetLimit(MaxResults)

	cursor, err := r.collection.Find(ctx, BuildFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []MapReport
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []MapReport{}
	}
	return items, nil
}

// BuildFilter translates a Query into a single Mongo filter document.
// Bounds take precedence over radius; "all" (or empty) status means no
// status restriction.
func BuildFilter(q Query) bson.M {
	filter := bson.M{}

	switch {
	case q.Bounds != nil:
		filter["location"] = bson.M{
			"$geoWithin": bson.M{
				"$box": bson.A{
					bson.A{q.Bounds.SWLng, q.Bounds.SWLat},
					bson.A{q.Bounds.NELng, q.Bounds.NELat},
				},
			},
		}
	case q.Center != nil:
		filter["location"] = bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{q.Center.Lng, q.Center.Lat},
				},
				// km to meters
				"$maxDistance": q.Center.RadiusKM * 1000,
			},
		}
	}

	if q.Status != "" && q.Status != "all" {
		filter["status"] = q.Status
	}
	if q.Severity != "" {
		filter["severity"] = q.Severity
	}

	return filter
}
