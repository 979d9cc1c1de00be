package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used throughout the repositories.
const (
	UsersCollection     = "users"
	GreetingsCollection = "greetings"
)

// Collection describes one entry in the static collection registry: the
// collection's name and the indexes built for it at startup.
type Collection struct {
	Name    string
	Indexes []mongo.IndexModel
}

// Collections enumerates every collection the service touches. The registry
// is a literal so the full storage surface can be audited here instead of
// being discovered at runtime. The token index backs the bearer-token lookup
// performed on every authenticated request.
var Collections = []Collection{
	{
		Name: UsersCollection,
		Indexes: []mongo.IndexModel{
			{Keys: bson.D{{Key: "token", Value: 1}}},
		},
	},
	{
		Name: GreetingsCollection,
	},
}

// EnsureIndexes builds the registry's indexes. It is called once at startup,
// after Open succeeds.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, c := range Collections {
		if len(c.Indexes) == 0 {
			continue
		}
		if _, err := db.Collection(c.Name).Indexes().CreateMany(ctx, c.Indexes); err != nil {
			return err
		}
	}
	return nil
}
