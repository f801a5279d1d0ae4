package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(repo *fakeUserRepo) *gin.Engine {
	r := newTestRouter()
	auth := NewAuthController(service.NewAuthService(repo, testConfig()))
	r.POST("/user", auth.Register)
	r.POST("/user/login", auth.Login)
	return r
}

func TestRegisterCreatesUser(t *testing.T) {
	repo := newFakeUserRepo()
	r := newAuthRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name": "Ada", "age": 30, "phone": "12345", "username": "ada", "password": "s3cret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "User has been successfully registered", env.Message)

	var created model.User
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ada", created.Username)
	// The stored password hash is echoed back, never the plaintext.
	assert.NotEqual(t, "s3cret", created.Password)
	assert.NotEmpty(t, created.Password)
	assert.Equal(t, 0, created.Progress.Total)
}

func TestRegisterMissingFields(t *testing.T) {
	r := newAuthRouter(newFakeUserRepo())

	bodies := []gin.H{
		{},
		{"name": "Ada", "phone": "12345", "username": "ada", "password": "pw"},
		{"name": "Ada", "age": 0, "phone": "12345", "username": "ada", "password": "pw"},
		{"name": "", "age": 30, "phone": "12345", "username": "ada", "password": "pw"},
	}
	for i, body := range bodies {
		w := doJSON(t, r, http.MethodPost, "/user", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "case %d", i)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "Please complete all the required fields.", env.Message, "case %d", i)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo(&model.User{ID: "u1", Username: "ada"})
	r := newAuthRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name": "Ada", "age": 30, "phone": "12345", "username": "ada", "password": "pw",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Username already exists. Please login", env.Message)
}

func TestLoginReturnsBearerToken(t *testing.T) {
	repo := newFakeUserRepo()
	r := newAuthRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name": "Ada", "age": 30, "phone": "12345", "username": "ada", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/login", gin.H{"username": "ada", "password": "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Login successful", env.Message)

	var token string
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.True(t, strings.HasPrefix(token, "Bearer "))

	claims, err := util.ParseJWT(strings.TrimPrefix(token, "Bearer "), testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)
}

func TestLoginMissingCredentials(t *testing.T) {
	r := newAuthRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/user/login", gin.H{"username": "ada"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Please provide both the username and the password.", env.Message)
}

func TestLoginUnknownUser(t *testing.T) {
	r := newAuthRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/user/login", gin.H{"username": "ghost", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "User not found", env.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	r := newAuthRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name": "Ada", "age": 30, "phone": "12345", "username": "ada", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/login", gin.H{"username": "ada", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Your password is incorrect", env.Message)
}
