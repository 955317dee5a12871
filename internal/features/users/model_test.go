package users

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateListFilter(t *testing.T) {
	require.NoError(t, ValidateListFilter(ListFilter{}))
	require.NoError(t, ValidateListFilter(ListFilter{Role: "verifier", Status: "active"}))

	require.Error(t, ValidateListFilter(ListFilter{Role: "root"}))
	require.Error(t, ValidateListFilter(ListFilter{Status: "banned"}))
}

func TestBuildListFilter(t *testing.T) {
	require.Equal(t, bson.M{}, buildListFilter(ListFilter{}))

	q := buildListFilter(ListFilter{Role: "admin", Status: "active"})
	require.Equal(t, "admin", q["role"])
	require.Equal(t, "active", q["status"])

	q = buildListFilter(ListFilter{Search: "nair"})
	or := q["$or"].(bson.A)
	require.Len(t, or, 3)
	regex := or[0].(bson.M)["firstName"].(primitive.Regex)
	require.Equal(t, "nair", regex.Pattern)
	require.Equal(t, "i", regex.Options)
}
