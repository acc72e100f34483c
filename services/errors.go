package services

import "errors"

// Expected control-flow failures. Controllers translate these to status
// codes; the message doubles as the response body.
var (
	ErrMealNotFound   = errors.New("Meal not found")
	ErrEmailTaken     = errors.New("User with email already exists")
	ErrUnknownSession = errors.New("Unauthorized")
)
