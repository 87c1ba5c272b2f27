package types

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an account exercises are logged against.
type User struct {
	// ID is the store-generated identifier of the user.
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	// Username is the name chosen at creation time. It is never
	// mutated afterwards.
	Username string `json:"username" bson:"username"`
}
