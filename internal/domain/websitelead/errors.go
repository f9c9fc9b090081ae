package websitelead

import "errors"

var (
	ErrLeadNotFound  = errors.New("website lead not found")
	ErrInvalidStatus = errors.New("invalid website lead status")
)
