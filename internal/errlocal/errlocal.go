// Package errlocal is the API's error taxonomy. Every failure a handler can
// report is one of three classes: ErrBadRequest for rejected client input,
// ErrNotFound for files absent from the store, and ErrInternal for faults the
// system does not model. The HTTP status comes from Code(); Message() is the
// client-facing text.
package errlocal

import (
	"fmt"
	"strings"
)

type LocalError interface {
	error
	Message() string
	System() string
	Details() map[string]any
	Code() int
	Base() *BaseError
}

// BaseError carries the parts shared by all error classes: a client-facing
// message, an internal system note, and free-form details for the logs.
type BaseError struct {
	Msg        string         `json:"message,omitempty"`
	Sys        string         `json:"system,omitempty"`
	DetailsMap map[string]any `json:"details,omitempty"`
}

func (e *BaseError) Error() string {
	parts := make([]string, 0, 3)
	if e.Msg != "" {
		parts = append(parts, "message: "+e.Msg)
	}
	if e.Sys != "" {
		parts = append(parts, "system: "+e.Sys)
	}
	if len(e.DetailsMap) > 0 {
		kv := make([]string, 0, len(e.DetailsMap))
		for key, value := range e.DetailsMap {
			kv = append(kv, fmt.Sprintf("%s: %v", key, value))
		}
		parts = append(parts, "details: "+strings.Join(kv, ", "))
	}
	return strings.Join(parts, " ")
}

func (e *BaseError) Message() string {
	return e.Msg
}

func (e *BaseError) System() string {
	return e.Sys
}

func (e *BaseError) Details() map[string]any {
	return e.DetailsMap
}

// Code defaults to 500; the typed wrappers override it.
func (e *BaseError) Code() int {
	return 500
}

func (e *BaseError) Base() *BaseError {
	return e
}
