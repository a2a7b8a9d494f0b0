package leave

import "errors"

var (
	ErrBalanceNotFound = errors.New("leave balance not found")
	ErrInvalidStatus   = errors.New("status must be approved, rejected or pending")
)
