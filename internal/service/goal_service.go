package service

import (
	"context"
	"fmt"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/repository"

	"github.com/google/uuid"
)

// Study goal deadlines are picked from a fixed range of weeks.
const (
	minDeadlineWeeks = 1
	maxDeadlineWeeks = 5
)

type GoalService struct {
	GoalRepo repository.GoalRepository
}

func NewGoalService(goalRepo repository.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

func (s *GoalService) Create(ctx context.Context, goal *model.Goal) error {
	if err := validateGoal(goal.Deadline, goal.Level); err != nil {
		return err
	}
	goal.ID = uuid.NewString()
	if goal.Progress < 0 {
		goal.Progress = 0
	}
	return s.GoalRepo.Create(ctx, goal)
}

func (s *GoalService) List(ctx context.Context, userID string) ([]model.Goal, error) {
	goals, err := s.GoalRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []model.Goal{}
	}
	return goals, nil
}

func (s *GoalService) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (*model.Goal, error) {
	delete(fields, "id")
	delete(fields, "_id")
	delete(fields, "userId")

	if deadline, ok := fields["deadline"]; ok {
		weeks, isNum := toWeeks(deadline)
		if !isNum || weeks < minDeadlineWeeks || weeks > maxDeadlineWeeks {
			return nil, fmt.Errorf("deadline must be between %d and %d weeks", minDeadlineWeeks, maxDeadlineWeeks)
		}
	}
	return s.GoalRepo.UpdateFields(ctx, userID, id, fields)
}

func (s *GoalService) Delete(ctx context.Context, userID, id string) (*model.Goal, error) {
	return s.GoalRepo.Delete(ctx, userID, id)
}

func validateGoal(deadline *int, level *model.Level) error {
	if deadline != nil && (*deadline < minDeadlineWeeks || *deadline > maxDeadlineWeeks) {
		return fmt.Errorf("deadline must be between %d and %d weeks", minDeadlineWeeks, maxDeadlineWeeks)
	}
	if level != nil {
		valid := false
		for _, l := range model.CourseLevels {
			if *level == l {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("level %q is not a course level", *level)
		}
	}
	return nil
}

// toWeeks normalizes the numeric types a decoded JSON body can carry.
func toWeeks(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
