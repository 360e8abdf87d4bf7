package booking

import "fmt"

// BookingError is a rejected booking operation. Code is stable for clients.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}
