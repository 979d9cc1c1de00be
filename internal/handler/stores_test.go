package handler_test

// In-memory stand-ins for the two stores, mirroring the repository
// semantics the handlers rely on: id assignment and date_created defaulting
// on create, identity-key stripping on update, ErrNotFound on misses.

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/voice-greetings/internal/model"
	"github.com/iliyamo/voice-greetings/internal/repository"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]model.User
}

func newFakeUsers(seed ...model.User) *fakeUsers {
	f := &fakeUsers{users: map[primitive.ObjectID]model.User{}}
	for _, u := range seed {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) get(id primitive.ObjectID) model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id]
}

func matchUser(u model.User, params map[string]string) bool {
	fields := map[string]string{
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"password":   u.Password,
	}
	for k, want := range params {
		if got, ok := fields[k]; !ok || got != want {
			return false
		}
	}
	return true
}

func (f *fakeUsers) Find(_ context.Context, params map[string]string) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.User, 0)
	for _, u := range f.users {
		if matchUser(u, params) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) Create(_ context.Context, u model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.DateCreated.IsZero() {
		u.DateCreated = time.Now().UTC()
	}
	if u.GreetingIDs == nil {
		u.GreetingIDs = []primitive.ObjectID{}
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	for k, v := range repository.StripProtected(fields) {
		s, _ := v.(string)
		switch k {
		case "username":
			u.Username = s
		case "first_name":
			u.FirstName = s
		case "last_name":
			u.LastName = s
		case "password":
			u.Password = s
		case "token":
			u.Token = &s
		}
	}
	f.users[id] = u
	return u, nil
}

func (f *fakeUsers) DeleteByID(_ context.Context, id primitive.ObjectID) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	delete(f.users, id)
	return u, nil
}

func (f *fakeUsers) PushGreetingID(_ context.Context, userID, greetingID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.GreetingIDs = append(u.GreetingIDs, greetingID)
	f.users[userID] = u
	return nil
}

type fakeGreetings struct {
	mu        sync.Mutex
	greetings map[primitive.ObjectID]model.Greeting
}

func newFakeGreetings(seed ...model.Greeting) *fakeGreetings {
	f := &fakeGreetings{greetings: map[primitive.ObjectID]model.Greeting{}}
	for _, g := range seed {
		f.greetings[g.ID] = g
	}
	return f
}

func (f *fakeGreetings) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.greetings)
}

func (f *fakeGreetings) Find(_ context.Context, params map[string]string) ([]model.Greeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Greeting, 0)
	for _, g := range f.greetings {
		if name, ok := params["name"]; ok && g.Name != name {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGreetings) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Greeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Greeting, 0, len(ids))
	for _, id := range ids {
		if g, ok := f.greetings[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGreetings) Create(_ context.Context, g model.Greeting) (model.Greeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	if g.DateCreated.IsZero() {
		g.DateCreated = time.Now().UTC()
	}
	f.greetings[g.ID] = g
	return g, nil
}
