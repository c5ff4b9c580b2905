package models

import "io"

// File is a named byte blob moving through the API. Size is -1 when the
// length is not known up front (streamed multipart uploads).
type File struct {
	Name  string
	Size  int64
	Entry io.ReadCloser
}
