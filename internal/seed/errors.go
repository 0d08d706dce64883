package seed

import "errors"

// Errors returned by Run wrap one of these along with the underlying cause,
// so errors.Is matches both.
var (
	ErrConnect  = errors.New("connect to store")
	ErrReset    = errors.New("reset collection")
	ErrInsert   = errors.New("insert records")
	ErrReadBack = errors.New("read back records")
	ErrClose    = errors.New("close connection")
)
