package attendance

import "errors"

var (
	ErrInvalidAction      = errors.New("unknown clock action")
	ErrRecordNotFound     = errors.New("attendance record not found")
	ErrEmployeeOnlyAction = errors.New("clock actions are limited to employees")
)
