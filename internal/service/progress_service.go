package service

import (
	"context"
	"fmt"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/repository"
	"mlcourse_backend/pkg/logger"

	"go.uber.org/zap"
)

type ProgressService struct {
	UserRepo repository.UserRepository
	Cache    repository.ProgressCache
}

func NewProgressService(userRepo repository.UserRepository, cache repository.ProgressCache) *ProgressService {
	return &ProgressService{UserRepo: userRepo, Cache: cache}
}

// Snapshot returns the learner's progress, served from cache when
// warm. The cache is invalidated on every write that touches progress.
func (s *ProgressService) Snapshot(ctx context.Context, userID string) (*model.Progress, error) {
	if s.Cache != nil {
		if progress, ok := s.Cache.Get(ctx, userID); ok {
			return progress, nil
		}
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := user.Progress
	if s.Cache != nil {
		s.Cache.Set(ctx, userID, &progress)
	}
	return &progress, nil
}

// ApplyCredit marks one course level as completed, granting its full
// credit and rederiving the total in the same write. Re-passing a quiz
// is a no-op.
func (s *ProgressService) ApplyCredit(ctx context.Context, userID string, level model.Level) (*model.Progress, error) {
	field, err := progressField(level)
	if err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := user.Progress
	setLevel(&next, level, model.ProgressCredit)
	next.ComputeTotal()
	if next == user.Progress {
		return &next, nil
	}

	updated, err := s.UserRepo.UpdateFields(ctx, userID, map[string]interface{}{
		field:            model.ProgressCredit,
		"progress.total": next.Total,
	})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, userID)
	}
	logger.Log.Info("progress credit applied",
		zap.String("userId", userID),
		zap.String("level", string(level)),
		zap.Int("total", updated.Progress.Total))

	progress := updated.Progress
	return &progress, nil
}

func progressField(level model.Level) (string, error) {
	switch level {
	case model.LevelFoundation:
		return "progress.foundation", nil
	case model.LevelBeginner:
		return "progress.beginner", nil
	case model.LevelIntermediate:
		return "progress.intermediate", nil
	case model.LevelAdvance:
		return "progress.advance", nil
	}
	return "", fmt.Errorf("level %q carries no progress credit", level)
}

func setLevel(p *model.Progress, level model.Level, value int) {
	switch level {
	case model.LevelFoundation:
		p.Foundation = value
	case model.LevelBeginner:
		p.Beginner = value
	case model.LevelIntermediate:
		p.Intermediate = value
	case model.LevelAdvance:
		p.Advance = value
	}
}
