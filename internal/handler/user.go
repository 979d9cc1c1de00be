package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/voice-greetings/internal/model"
	"github.com/iliyamo/voice-greetings/internal/repository"
)

// storeTimeout bounds individual store calls on the CRUD paths.
const storeTimeout = 5 * time.Second

// UserHandler bundles dependencies for the user CRUD endpoints.
type UserHandler struct {
	Users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// queryFilter lifts the request's query parameters into a field filter.
// Repeated parameters keep their first value.
func queryFilter(c echo.Context) map[string]string {
	params := map[string]string{}
	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// pathID parses the :id path parameter. A malformed id can match nothing,
// so it is treated the same as an absent document.
func pathID(c echo.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	return id, err == nil
}

// GetUser returns a single user by id, or 404.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// ListUsers returns every user matching the optional query filter.
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	users, err := h.Users.Find(ctx, queryFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser persists a new user from the JSON body and echoes the stored
// document, including the assigned id and creation timestamp.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	u.ID = primitive.NilObjectID // identity is store-assigned
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	created, err := h.Users.Create(ctx, u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateUser merges the JSON body onto the stored user. Identity and version
// fields in the body are discarded before the merge, so a client cannot
// reassign a document's id. 404 when the id matches no user.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Users.UpdateByID(ctx, id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteUser removes a user and returns the removed document. Deleting an
// absent id is a clean 404, not a failure, so the operation is idempotent.
// References to the user's greetings held by other users are untouched.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Users.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
