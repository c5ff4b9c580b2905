package errlocal

import "net/http"

// ErrBadRequest rejects client input the handlers cannot use, like a
// multipart form without a file part or a file part with an empty filename.
type ErrBadRequest struct {
	BaseError
}

func NewErrBadRequest(msg string, system string, details map[string]any) LocalError {
	return &ErrBadRequest{
		BaseError: BaseError{
			Msg:        msg,
			Sys:        system,
			DetailsMap: details,
		},
	}
}

func (e *ErrBadRequest) Code() int {
	return http.StatusBadRequest
}
