package util

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrAssessmentNotFound = fmt.Errorf("assessment %w", ErrNotFound)
	ErrResultNotFound     = fmt.Errorf("assessment result %w", ErrNotFound)
	ErrPathNotFound       = fmt.Errorf("learning path %w", ErrNotFound)

	ErrInvalidDifficulty = fmt.Errorf("%w: difficulty must be one of easy, medium, hard", ErrInvalidInput)
	ErrInvalidLevel      = fmt.Errorf("%w: level must be one of beginner, intermediate, advanced", ErrInvalidInput)
	ErrInvalidScore      = fmt.Errorf("%w: score must be between 0 and 100", ErrInvalidInput)
	ErrMissingUserID     = fmt.Errorf("%w: user id is required", ErrInvalidInput)
	ErrMissingRole       = fmt.Errorf("%w: role is required", ErrInvalidInput)
	ErrMissingTopic      = fmt.Errorf("%w: topic is required", ErrInvalidInput)
)
