package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrCourseNotFound       = errors.New("course not found")
	ErrTopicNotFound        = errors.New("topic not found")
	ErrNoteNotFound         = errors.New("note not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrAchievementNotFound  = errors.New("achievement not found")
	ErrUnknownPrerequisite  = errors.New("prerequisite references an unknown topic")
	ErrCyclicPrerequisites  = errors.New("prerequisites would form a cycle")
)
