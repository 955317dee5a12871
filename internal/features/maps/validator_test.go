package maps

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseBounds(t *testing.T) {
	b, err := ParseBounds("-10,-10,10,10")
	require.NoError(t, err)
	require.Equal(t, &Bounds{SWLng: -10, SWLat: -10, NELng: 10, NELat: 10}, b)

	b, err = ParseBounds("72.5, 18.9, 73.1, 19.3")
	require.NoError(t, err)
	require.Equal(t, 72.5, b.SWLng)
	require.Equal(t, 19.3, b.NELat)
}

func TestParseBounds_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"1,2,3",
		"1,2,3,4,5",
		"a,b,c,d",
		"-181,0,10,10",
		"0,-91,10,10",
		"0,0,181,10",
		"0,0,10,91",
	} {
		_, err := ParseBounds(s)
		require.Errorf(t, err, "bounds=%q", s)
	}
}

func TestParseCenter(t *testing.T) {
	c, err := ParseCenter("19.076", "72.8777", "25")
	require.NoError(t, err)
	require.Equal(t, 19.076, c.Lat)
	require.Equal(t, 72.8777, c.Lng)
	require.Equal(t, 25.0, c.RadiusKM)
}

func TestParseCenter_Invalid(t *testing.T) {
	_, err := ParseCenter("91", "0", "10")
	require.Error(t, err)

	_, err = ParseCenter("0", "181", "10")
	require.Error(t, err)

	// Radius outside 0.1..100 km
	_, err = ParseCenter("0", "0", "0.05")
	require.Error(t, err)
	_, err = ParseCenter("0", "0", "101")
	require.Error(t, err)

	// All three must be present together
	_, err = ParseCenter("", "0", "10")
	require.Error(t, err)
}

func TestBuildFilter_Bounds(t *testing.T) {
	filter := BuildFilter(Query{
		Bounds: &Bounds{SWLng: -10, SWLat: -10, NELng: 10, NELat: 10},
	})

	require.Equal(t, bson.M{
		"$geoWithin": bson.M{
			"$box": bson.A{
				bson.A{-10.0, -10.0},
				bson.A{10.0, 10.0},
			},
		},
	}, filter["location"])
}

func TestBuildFilter_RadiusConvertsKmToMeters(t *testing.T) {
	filter := BuildFilter(Query{
		Center: &Center{Lng: 0, Lat: 0, RadiusKM: 100},
	})

	near := filter["location"].(bson.M)["$nearSphere"].(bson.M)
	require.Equal(t, 100000.0, near["$maxDistance"])
	geometry := near["$geometry"].(bson.M)
	require.Equal(t, "Point", geometry["type"])
	require.Equal(t, bson.A{0.0, 0.0}, geometry["coordinates"])
}

func TestBuildFilter_BoundsWinOverRadius(t *testing.T) {
	filter := BuildFilter(Query{
		Bounds: &Bounds{SWLng: 0, SWLat: 0, NELng: 1, NELat: 1},
		Center: &Center{Lng: 5, Lat: 5, RadiusKM: 10},
	})

	loc := filter["location"].(bson.M)
	require.Contains(t, loc, "$geoWithin")
	require.NotContains(t, loc, "$nearSphere")
}

func TestBuildFilter_StatusAndSeverity(t *testing.T) {
	filter := BuildFilter(Query{Status: "verified", Severity: "critical"})
	require.Equal(t, "verified", filter["status"])
	require.Equal(t, "critical", filter["severity"])
	require.NotContains(t, filter, "location")

	// "all" and empty status mean no status restriction
	filter = BuildFilter(Query{Status: "all"})
	require.NotContains(t, filter, "status")

	filter = BuildFilter(Query{})
	require.Equal(t, bson.M{}, filter)
}
