package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/voice-greetings/internal/database"
	"github.com/iliyamo/voice-greetings/internal/model"
)

type UserRepo struct{ col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(database.UsersCollection)}
}

// Find returns every user matching the field filter. No pagination; the
// result is as large as the match.
func (r *UserRepo) Find(ctx context.Context, params map[string]string) ([]model.User, error) {
	cur, err := r.col.Find(ctx, Filter(params))
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID fetches a user by id. ErrNotFound when absent.
func (r *UserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// FindByToken fetches the user whose stored token equals the given bearer
// token. Tokens are opaque strings compared by exact match.
func (r *UserRepo) FindByToken(ctx context.Context, token string) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"token": token}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// Create inserts a user, assigning an id and defaulting date_created, and
// returns the stored document.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.DateCreated.IsZero() {
		u.DateCreated = time.Now().UTC()
	}
	if u.GreetingIDs == nil {
		u.GreetingIDs = []primitive.ObjectID{}
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// UpdateByID merges fields onto the stored user and returns the post-update
// document. Identity and version keys are stripped from the input first; an
// update that strips down to nothing is a plain read. ErrNotFound when the
// id matches no document.
func (r *UserRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (model.User, error) {
	set := StripProtected(fields)
	if len(set) == 0 {
		// Mongo rejects an empty $set; an empty merge changes nothing anyway.
		return r.FindByID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u model.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// DeleteByID removes a user and returns the removed document. ErrNotFound
// when the id matches no document; references to the user held elsewhere are
// not touched.
func (r *UserRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var u model.User
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// PushGreetingID appends a greeting reference to the user's ordered
// greeting_ids list.
func (r *UserRepo) PushGreetingID(ctx context.Context, userID, greetingID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, userID, bson.M{"$push": bson.M{"greeting_ids": greetingID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
