package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an application user document in the `users` collection.
// The bson tags name the stored fields, the json tags name the wire fields.
//
// Fields:
//
//	ID          – store-assigned identifier.
//	Username    – login name.
//	Password    – stored as received; nothing in this service hashes it.
//	FirstName   – given name.
//	LastName    – family name.
//	Token       – opaque bearer credential, assigned out of band; nil when the
//	              user has none.
//	GreetingIDs – ordered references to Greeting documents. Deleting a
//	              greeting does not prune it from this list.
//	DateCreated – set on creation.
type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username    string               `bson:"username,omitempty" json:"username"`
	Password    string               `bson:"password,omitempty" json:"password"`
	FirstName   string               `bson:"first_name,omitempty" json:"first_name"`
	LastName    string               `bson:"last_name,omitempty" json:"last_name"`
	Token       *string              `bson:"token,omitempty" json:"token"`
	GreetingIDs []primitive.ObjectID `bson:"greeting_ids" json:"greeting_ids"`
	DateCreated time.Time            `bson:"date_created" json:"date_created"`
}
