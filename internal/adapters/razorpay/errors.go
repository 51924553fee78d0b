package razorpay

import (
	"errors"
	"fmt"
)

var ErrMissingOrderID = errors.New("provider response missing order id")

// APIError is an error reported by the Razorpay API. Its message is the
// gateway's own description.
type APIError struct {
	Code        string
	Description string
	Field       string
	StatusCode  int
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("razorpay returned status %d", e.StatusCode)
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
