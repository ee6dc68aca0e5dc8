package api

import (
	"errors"
	"fmt"
)

// Fetch operations
const (
	OpFetchList = "list"
	OpFetchByID = "by_id"
)

// Fixed user-facing messages
const (
	MsgFetchList = "could not retrieve list of characters"
	MsgFetchByID = "could not find character with ID %d"
	MsgCreate    = "could not create character"
)

// FetchError is returned when a read from the character API fails.
// Error() yields a fixed human-readable message; the transport cause is
// kept for logging and errors.Unwrap.
type FetchError struct {
	Op      string
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newListError(err error) *FetchError {
	return &FetchError{Op: OpFetchList, Message: MsgFetchList, Err: err}
}

func newByIDError(id int, err error) *FetchError {
	return &FetchError{Op: OpFetchByID, Message: fmt.Sprintf(MsgFetchByID, id), Err: err}
}

// IsFetchList reports whether err is a failed page fetch
func IsFetchList(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Op == OpFetchList
}

// IsFetchByID reports whether err is a failed single-record fetch
func IsFetchByID(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Op == OpFetchByID
}

// CreateError is returned by CreateRemote only when simulation on remote
// failure is disabled and the sink call fails.
type CreateError struct {
	Err error
}

func (e *CreateError) Error() string {
	return MsgCreate
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// StatusError describes a non-2xx HTTP response
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}
