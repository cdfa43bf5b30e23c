package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrParentTaskNotFound = errors.New("parent task not found")
	ErrParentTaskNotRoot  = errors.New("parent task is not a root task")
	ErrTemplateImmutable  = errors.New("template week cannot be deleted")
	ErrInvalidWeekStart   = errors.New("invalid week start date")
)
