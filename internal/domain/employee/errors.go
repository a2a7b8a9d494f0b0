package employee

import "errors"

// ErrEmployeeIdentityUnknown is returned when no employee id is attached to the caller
var ErrEmployeeIdentityUnknown = errors.New("employee identity is unknown")
