package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mlcourse_backend/internal/config"
	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "controller-test-secret"
	cfg.JWT.ExpireTime = 24 * time.Hour
	return cfg
}

// fakeUserRepo backs controller tests with an in-memory user store so
// the full request path runs without MongoDB.
type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return util.ErrUsernameTaken
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, util.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			u.Name, _ = value.(string)
		case "phone":
			u.Phone, _ = value.(string)
		case "age":
			if n, ok := value.(float64); ok {
				u.Age = int(n)
			}
		case "progress.foundation":
			u.Progress.Foundation = toInt(value)
		case "progress.beginner":
			u.Progress.Beginner = toInt(value)
		case "progress.intermediate":
			u.Progress.Intermediate = toInt(value)
		case "progress.advance":
			u.Progress.Advance = toInt(value)
		case "progress.total":
			u.Progress.Total = toInt(value)
		}
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope mirrors util.Response with the data left raw for
// per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(strings.NewReader(w.Body.String())).Decode(&env))
	return env
}

func injectUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		util.SetUserID(c, userID)
		c.Next()
	}
}
