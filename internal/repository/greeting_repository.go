package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/voice-greetings/internal/database"
	"github.com/iliyamo/voice-greetings/internal/model"
)

type GreetingRepo struct{ col *mongo.Collection }

func NewGreetingRepo(db *mongo.Database) *GreetingRepo {
	return &GreetingRepo{col: db.Collection(database.GreetingsCollection)}
}

// Find returns every greeting matching the field filter.
func (r *GreetingRepo) Find(ctx context.Context, params map[string]string) ([]model.Greeting, error) {
	cur, err := r.col.Find(ctx, Filter(params))
	if err != nil {
		return nil, err
	}
	greetings := make([]model.Greeting, 0)
	if err := cur.All(ctx, &greetings); err != nil {
		return nil, err
	}
	return greetings, nil
}

// FindByIDs expands greeting references into full documents, preserving the
// input order. Ids that no longer resolve are skipped; the store enforces no
// referential integrity between users and greetings.
func (r *GreetingRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Greeting, error) {
	greetings := make([]model.Greeting, 0, len(ids))
	if len(ids) == 0 {
		return greetings, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []model.Greeting
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]model.Greeting, len(found))
	for _, g := range found {
		byID[g.ID] = g
	}
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			greetings = append(greetings, g)
		}
	}
	return greetings, nil
}

// Create inserts a greeting, assigning an id and defaulting date_created,
// and returns the stored document. Greetings are never updated after this.
func (r *GreetingRepo) Create(ctx context.Context, g model.Greeting) (model.Greeting, error) {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	if g.DateCreated.IsZero() {
		g.DateCreated = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, g); err != nil {
		return model.Greeting{}, err
	}
	return g, nil
}
