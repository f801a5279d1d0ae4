package service

import (
	"context"
	"testing"
	"time"

	"mlcourse_backend/internal/config"
	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = 24 * time.Hour
	return cfg
}

func TestRegisterHashesPasswordAndAssignsID(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, authTestConfig())

	user := &model.User{Name: "Ada", Age: 30, Phone: "12345", Username: "ada", Password: "s3cret"}
	require.NoError(t, svc.Register(context.Background(), user))

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
	assert.Equal(t, model.Progress{}, user.Progress)

	stored, err := repo.FindByUsername(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newMemUserRepo(&model.User{ID: "u1", Username: "ada"})
	svc := NewAuthService(repo, authTestConfig())

	err := svc.Register(context.Background(), &model.User{Username: "ada", Password: "pw"})
	assert.ErrorIs(t, err, util.ErrUsernameTaken)
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	repo := newMemUserRepo()
	cfg := authTestConfig()
	svc := NewAuthService(repo, cfg)

	user := &model.User{Username: "ada", Password: "s3cret"}
	require.NoError(t, svc.Register(context.Background(), user))

	token, err := svc.Login(context.Background(), "ada", "s3cret")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), authTestConfig())

	_, err := svc.Login(context.Background(), "ghost", "pw")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, authTestConfig())
	require.NoError(t, svc.Register(context.Background(), &model.User{Username: "ada", Password: "s3cret"}))

	_, err := svc.Login(context.Background(), "ada", "nope")
	assert.ErrorIs(t, err, util.ErrIncorrectPassword)
}
