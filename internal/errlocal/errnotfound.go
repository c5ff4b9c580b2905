package errlocal

import "net/http"

// ErrNotFound reports a file that is not in the store, or a name that
// resolves outside of it.
type ErrNotFound struct {
	BaseError
}

func NewErrNotFound(msg string, system string, details map[string]any) LocalError {
	return &ErrNotFound{
		BaseError: BaseError{
			Msg:        msg,
			Sys:        system,
			DetailsMap: details,
		},
	}
}

func (e *ErrNotFound) Code() int {
	return http.StatusNotFound
}
