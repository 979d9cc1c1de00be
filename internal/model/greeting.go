package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Greeting represents a stored, transcoded voice recording in the
// `greetings` collection. A greeting is created once per upload and never
// updated in place; it may be referenced by any number of users.
type Greeting struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name,omitempty" json:"name"`
	FolderLocation string             `bson:"folder_location,omitempty" json:"folder_location"`
	DateCreated    time.Time          `bson:"date_created" json:"date_created"`
}
