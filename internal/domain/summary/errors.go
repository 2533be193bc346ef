package summary

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork        = errors.New("network")
	ErrDecode         = errors.New("decode")
	ErrRemoteRejected = errors.New("remote rejected")
)

// FetchError describes why a single summary request failed. Kind is one of
// ErrNetwork, ErrDecode or ErrRemoteRejected; errors.Is matches against it.
type FetchError struct {
	Kind    error
	CheckID string
	Status  int
	Err     error
}

func (e *FetchError) Error() string {
	msg := e.Kind.Error()
	if e.CheckID != "" {
		msg = "summary " + e.CheckID + ": " + msg
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == e.Kind }
