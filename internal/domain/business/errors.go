package business

import "errors"

var (
	ErrBusinessNotFound    = errors.New("business not found")
	ErrMobileNumberExists  = errors.New("mobile number already registered")
	ErrInvalidAssignee     = errors.New("assignee must be an active employee")
	ErrInvalidStatusChange = errors.New("invalid status change")
)
