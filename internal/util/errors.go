package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrCourseNotFound   = errors.New("course not found")
	ErrQuestNotFound    = errors.New("quest not found")
	ErrWeakAreaNotFound = errors.New("weak area not found")
	ErrTableNotFound    = errors.New("table not found")
)
