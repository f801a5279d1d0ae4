package service

import (
	"context"
	"strings"
	"sync"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/util"
)

// memUserRepo is an in-memory UserRepository for exercising services
// without a running MongoDB. Dotted field paths into the progress
// document are honored the same way the store honors $set.
type memUserRepo struct {
	mu    sync.Mutex
	users []*model.User
}

func newMemUserRepo(users ...*model.User) *memUserRepo {
	return &memUserRepo{users: users}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return util.ErrUsernameTaken
		}
	}
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *memUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *memUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		for key, value := range fields {
			applyUserField(u, key, value)
		}
		clone := *u
		return &clone, nil
	}
	return nil, util.ErrUserNotFound
}

func (r *memUserRepo) Delete(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			clone := *u
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &clone, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func applyUserField(u *model.User, key string, value interface{}) {
	if strings.HasPrefix(key, "progress.") {
		if n, ok := asInt(value); ok {
			switch strings.TrimPrefix(key, "progress.") {
			case "foundation":
				u.Progress.Foundation = n
			case "beginner":
				u.Progress.Beginner = n
			case "intermediate":
				u.Progress.Intermediate = n
			case "advance":
				u.Progress.Advance = n
			case "total":
				u.Progress.Total = n
			}
		}
		return
	}

	switch key {
	case "name":
		if s, ok := value.(string); ok {
			u.Name = s
		}
	case "age":
		if n, ok := asInt(value); ok {
			u.Age = n
		}
	case "phone":
		if s, ok := value.(string); ok {
			u.Phone = s
		}
	case "username":
		if s, ok := value.(string); ok {
			u.Username = s
		}
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

// memProgressCache records cache traffic so invalidation can be
// asserted.
type memProgressCache struct {
	mu          sync.Mutex
	entries     map[string]model.Progress
	invalidated []string
}

func newMemProgressCache() *memProgressCache {
	return &memProgressCache{entries: map[string]model.Progress{}}
}

func (c *memProgressCache) Get(ctx context.Context, userID string) (*model.Progress, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[userID]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *memProgressCache) Set(ctx context.Context, userID string, progress *model.Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = *progress
}

func (c *memProgressCache) Invalidate(ctx context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
}

type memGoalRepo struct {
	mu    sync.Mutex
	goals []*model.Goal
}

func (r *memGoalRepo) Create(ctx context.Context, goal *model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *goal
	r.goals = append(r.goals, &clone)
	return nil
}

func (r *memGoalRepo) FindByUser(ctx context.Context, userID string) ([]model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *memGoalRepo) UpdateFields(ctx context.Context, userID, id string, fields map[string]interface{}) (*model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.goals {
		if g.ID != id || g.UserID != userID {
			continue
		}
		if v, ok := fields["text"]; ok {
			if s, ok := v.(string); ok {
				g.Text = s
			}
		}
		if v, ok := fields["progress"]; ok {
			if n, ok := asInt(v); ok {
				g.Progress = n
			}
		}
		if v, ok := fields["deadline"]; ok {
			if n, ok := asInt(v); ok {
				g.Deadline = &n
			}
		}
		if v, ok := fields["completed"]; ok {
			if b, ok := v.(bool); ok {
				g.Completed = b
			}
		}
		clone := *g
		return &clone, nil
	}
	return nil, util.ErrGoalNotFound
}

func (r *memGoalRepo) Delete(ctx context.Context, userID, id string) (*model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.goals {
		if g.ID == id && g.UserID == userID {
			clone := *g
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return &clone, nil
		}
	}
	return nil, util.ErrGoalNotFound
}
