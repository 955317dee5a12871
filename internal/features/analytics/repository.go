package analytics

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultRange is used when the client asks for an unknown window.
const DefaultRange = "30d"

// windows are the supported relative ranges, measured back from now.
var windows = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
}

// Repository computes dashboard statistics over the reports collection.
type Repository struct {
	collection *mongo.Collection
	clock      clockwork.Clock
}

func NewRepository(db *mongo.Database, clock clockwork.Clock) *Repository {
	return &Repository{collection: db.Collection("reports"), clock: clock}
}

// resolveWindow turns a relative range key into its absolute start time.
// Unknown keys normalize to the default range.
func resolveWindow(clock clockwork.Clock, dateRange string) (time.Time, string) {
	window, ok := windows[dateRange]
	if !ok {
		dateRange = DefaultRange
		window = windows[DefaultRange]
	}
	return clock.Now().Add(-window), dateRange
}

// Dashboard computes all four facets in a single aggregation pass, so every
// facet observes the same underlying read.
func (r *Repository) Dashboard(ctx context.Context, dateRange, hazardType string) (*Dashboard, error) {
	since, dateRange := resolveWindow(r.clock, dateRange)

	match := bson.M{"createdAt": bson.M{"$gte": since}}
	if hazardType != "" {
		match["hazardType"] = hazardType
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: bson.M{
			"totalReports": bson.A{
				bson.M{"$count": "count"},
			},
			"statusBreakdown": bson.A{
				bson.M{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
			},
			"severityBreakdown": bson.A{
				bson.M{"$group": bson.M{"_id": "$severity", "count": bson.M{"$sum": 1}}},
			},
			"reportsOverTime": bson.A{
				bson.M{"$group": bson.M{
					"_id": bson.M{"$dateToString": bson.M{
						"format":   "%Y-%m-%d",
						"date":     "$createdAt",
						"timezone": "UTC",
					}},
					"count": bson.M{"$sum": 1},
				}},
				bson.M{"$sort": bson.M{"_id": 1}},
			},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []facetResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return formatDashboard(facetResult{}, dateRange), nil
	}

	return formatDashboard(results[0], dateRange), nil
}

// formatDashboard reshapes the raw facet output into the response form:
// grouped arrays become maps, the count facet collapses to a scalar. Empty
// groups are simply absent.
func formatDashboard(raw facetResult, dateRange string) *Dashboard {
	d := &Dashboard{
		StatusBreakdown:   make(map[string]int64),
		SeverityBreakdown: make(map[string]int64),
		ReportsOverTime:   []DailyCount{},
		DateRange:         dateRange,
	}

	if len(raw.TotalReports) > 0 {
		d.TotalReports = raw.TotalReports[0].Count
	}
	for _, g := range raw.StatusBreakdown {
		d.StatusBreakdown[g.ID] = g.Count
	}
	for _, g := range raw.SeverityBreakdown {
		d.SeverityBreakdown[g.ID] = g.Count
	}
	for _, g := range raw.ReportsOverTime {
		d.ReportsOverTime = append(d.ReportsOverTime, DailyCount{Date: g.ID, Count: g.Count})
	}

	return d
}
