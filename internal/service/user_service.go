package service

import (
	"context"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/repository"
	"mlcourse_backend/internal/util"
	"mlcourse_backend/pkg/logger"

	"go.uber.org/zap"
)

type UserService struct {
	UserRepo repository.UserRepository
	Cache    repository.ProgressCache
}

func NewUserService(userRepo repository.UserRepository, cache repository.ProgressCache) *UserService {
	return &UserService{UserRepo: userRepo, Cache: cache}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.UserRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, util.ErrNoUsers
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.UserRepo.FindByID(ctx, id)
}

// Update applies the given fields to a user document. Field keys may
// address embedded progress values with dotted paths; the progress
// total is rederived afterwards so callers never control it directly.
func (s *UserService) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.User, error) {
	delete(fields, "id")
	delete(fields, "_id")
	delete(fields, "progress.total")

	user, err := s.UserRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	total := user.Progress.Total
	user.Progress.ComputeTotal()
	if user.Progress.Total != total {
		user, err = s.UserRepo.UpdateFields(ctx, id, map[string]interface{}{
			"progress.total": user.Progress.Total,
		})
		if err != nil {
			return nil, err
		}
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, id)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*model.User, error) {
	user, err := s.UserRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, id)
	}
	logger.Log.Info("user deleted", zap.String("userId", id))
	return user, nil
}
