package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter(repo *fakeUserRepo) *gin.Engine {
	r := newTestRouter()
	users := NewUserController(service.NewUserService(repo, nil))
	r.GET("/user", users.List)
	r.GET("/user/:id", users.Get)
	r.PUT("/user/:id", users.Update)
	r.DELETE("/user/:id", users.Delete)
	return r
}

func TestListUsers(t *testing.T) {
	repo := newFakeUserRepo(
		&model.User{ID: "u1", Username: "ada"},
		&model.User{ID: "u2", Username: "grace"},
	)
	r := newUserRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/user", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Successfully retrieved users from the database!", env.Message)

	var users []model.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 2)
}

// An empty collection has always surfaced as a server error with the
// lookup failure echoed in the data field. Clients depend on it.
func TestListUsersEmptyCollection(t *testing.T) {
	r := newUserRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodGet, "/user", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Unable to retrieve users from the database!", env.Message)

	var detail string
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "No users found", detail)
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo(&model.User{ID: "u1", Username: "ada", Name: "Ada"})
	r := newUserRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/user/u1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Successfully retrieved the user from the database", env.Message)

	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "Ada", user.Name)
}

func TestGetUserNotFound(t *testing.T) {
	r := newUserRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodGet, "/user/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "User not found!", env.Message)
}

func TestUpdateUserRecomputesProgressTotal(t *testing.T) {
	repo := newFakeUserRepo(&model.User{ID: "u1", Username: "ada", Progress: model.Progress{Foundation: 25, Total: 25}})
	r := newUserRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/user/u1", gin.H{"progress.beginner": 25})
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "User successfully updated.", env.Message)

	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, 25, user.Progress.Beginner)
	assert.Equal(t, 50, user.Progress.Total)
}

func TestUpdateUserNotFound(t *testing.T) {
	r := newUserRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPut, "/user/ghost", gin.H{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "User not found.", env.Message)
}

func TestDeleteUserReturnsRemovedUser(t *testing.T) {
	repo := newFakeUserRepo(&model.User{ID: "u1", Username: "ada"})
	r := newUserRouter(repo)

	w := doJSON(t, r, http.MethodDelete, "/user/u1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "User successfully deleted.", env.Message)

	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "ada", user.Username)

	w = doJSON(t, r, http.MethodGet, "/user/u1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserNotFound(t *testing.T) {
	r := newUserRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodDelete, "/user/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "User not found!", env.Message)
}
