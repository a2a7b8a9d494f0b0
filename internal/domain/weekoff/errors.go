package weekoff

import "errors"

var (
	ErrWeekOffNotFound      = errors.New("week-off record not found")
	ErrWeekOffLimitExceeded = errors.New("you can select at most two week-off days")
	ErrInvalidWeekRange     = errors.New("week range must run from a Monday to the following Sunday")
)
