package rak811

import (
	"errors"
	"fmt"

	"github.com/teepbee/go-rak811/at"
)

var (
	// ErrNoDialer is returned when a Device is constructed without a Dialer.
	//
	// This indicates a configuration error. A Dialer is required in order to
	// establish a connection to the module.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNotInitialized is returned when an operation is attempted on a
	// Device that has not been successfully initialized.
	ErrNotInitialized = errors.New("device not initialized")

	// ErrAlreadyClosed is returned when Close is called on a Device that has
	// already been closed.
	ErrAlreadyClosed = errors.New("device already closed")

	// ErrTimeout is returned when the module does not produce a terminal
	// response, an event, or an info line within the configured window.
	ErrTimeout = errors.New("timeout waiting for module")

	// ErrMalformedResponse is returned when the module produces a terminal
	// line that cannot be parsed.
	ErrMalformedResponse = errors.New("malformed module response")

	// ErrNoResetLine is returned by HardReset when the Device was built
	// without a reset line.
	ErrNoResetLine = errors.New("no reset line configured")
)

// ModuleError is an explicit error reported by the module on an
// "ERROR:<code>" line.
type ModuleError struct {
	Code at.ResponseCode
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("[Errno %d] %s", e.Code, e.Code.Message())
}

// EventError is an unexpected status reported on an "at+recv=" event line.
type EventError struct {
	Status at.EventCode
}

func (e *EventError) Error() string {
	return fmt.Sprintf("[Errno %d] %s", e.Status, e.Status.Message())
}

// ChannelError is an I/O failure on the underlying serial channel, as
// opposed to an error reported by the module itself.
type ChannelError struct {
	Op  string // "write" or "read"
	Err error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("serial channel %s: %v", e.Op, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
