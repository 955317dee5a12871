package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User account statuses. Only active accounts may log in.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
	StatusPending   = "pending"
)

// User is an account. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role" enums:"citizen,verifier,analyst,admin"`
	Status    string             `bson:"status" json:"status" enums:"active,inactive,suspended,pending"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest is the signup payload. New accounts always start as an
// active citizen; roles are granted out of band.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse pairs a signed token with the account it identifies.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
