package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsUnavailable reports whether err means the database cannot be reached
// right now, as opposed to a failure of the request itself. Covers a
// disconnected client, network and server-selection failures, and deadline
// expiry while waiting on the server.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, mongo.ErrClientDisconnected) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
