// Package handler exposes the HTTP handlers for the user and greeting
// resources. Handlers depend on the small store interfaces below rather than
// the concrete repositories so tests can swap in in-memory stubs.
package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/voice-greetings/internal/model"
)

// UserStore is the persistence surface the user handlers need. It is
// implemented by repository.UserRepo.
type UserStore interface {
	Find(ctx context.Context, params map[string]string) ([]model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (model.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
	PushGreetingID(ctx context.Context, userID, greetingID primitive.ObjectID) error
}

// GreetingStore is the persistence surface the greeting handlers need. It is
// implemented by repository.GreetingRepo.
type GreetingStore interface {
	Find(ctx context.Context, params map[string]string) ([]model.Greeting, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Greeting, error)
	Create(ctx context.Context, g model.Greeting) (model.Greeting, error)
}
