package service

import (
	"context"
	"errors"

	"mlcourse_backend/internal/config"
	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/repository"
	"mlcourse_backend/internal/util"
	"mlcourse_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register creates a learner account. The username must be unique;
// progress starts at zero across all levels.
func (s *AuthService) Register(ctx context.Context, user *model.User) error {
	_, err := s.UserRepo.FindByUsername(ctx, user.Username)
	if err == nil {
		return util.ErrUsernameTaken
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.ID = uuid.NewString()
	user.Progress = model.Progress{}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return err
	}

	logger.Log.Info("user registered", zap.String("userId", user.ID), zap.String("username", user.Username))
	return nil
}

// Login verifies credentials and issues a signed token carrying the
// user id. Unknown usernames and wrong passwords are reported as
// distinct errors because the client surfaces different messages.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrIncorrectPassword
	}

	return util.GenerateJWT(user.ID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
