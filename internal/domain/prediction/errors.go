package prediction

import "errors"

// ErrInvalidRequest is returned by Request.Validate.
var ErrInvalidRequest = errors.New("invalid prediction request")
