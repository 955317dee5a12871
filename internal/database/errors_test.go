package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsUnavailable(t *testing.T) {
	require.False(t, IsUnavailable(nil))
	require.False(t, IsUnavailable(errors.New("duplicate key")))
	require.False(t, IsUnavailable(mongo.ErrNoDocuments))

	require.True(t, IsUnavailable(mongo.ErrClientDisconnected))
	require.True(t, IsUnavailable(context.DeadlineExceeded))
	require.True(t, IsUnavailable(mongo.CommandError{Labels: []string{"NetworkError"}}))

	// Wrapped errors still read as unavailability
	require.True(t, IsUnavailable(fmt.Errorf("list reports: %w", mongo.ErrClientDisconnected)))
}
