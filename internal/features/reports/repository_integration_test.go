//go:build integration

package reports

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/coastwatch/coastwatch-api/internal/database"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Needs a running MongoDB; run with -tags integration and MONGO_URI set.
func TestVerify_ConcurrentRacersExactlyOneWins(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	db, err := database.Connect(uri, "coastwatch_test")
	require.NoError(t, err)
	defer db.Disconnect(context.Background())

	repo := NewRepository(db.Database, clockwork.NewRealClock())

	report := &Report{
		UserID:      primitive.NewObjectID(),
		HazardType:  "flood",
		Severity:    "high",
		Description: "Water level rising rapidly near the harbor wall",
		Location:    GeoPoint{Type: "Point", Coordinates: []float64{72.8777, 19.076}},
	}
	require.NoError(t, repo.Create(context.Background(), report))
	defer repo.collection.DeleteOne(context.Background(), bson.M{"_id": report.ID})

	verifier := primitive.NewObjectID()
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Verify(context.Background(), report.ID.Hex(), verifier)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, losses int
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, ErrNotPending)
		losses++
	}
	require.Equal(t, 1, wins)
	require.Equal(t, 1, losses)

	stored, err := repo.GetByID(context.Background(), report.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, StatusVerified, stored.Status)
	require.NotNil(t, stored.VerifiedByID)
	require.NotNil(t, stored.VerifiedAt)
}
