package util

import "errors"

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrNoUsers           = errors.New("No users found")
	ErrUsernameTaken     = errors.New("Username already exists. Please login")
	ErrIncorrectPassword = errors.New("Your password is incorrect")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrNotEligible       = errors.New("certificate requires 100% progress")
)
