package we

import (
	"fmt"

	"github.com/pkg/errors"
)

// StartupError is fatal: the process exits before serving.
type StartupError struct {
	Stage string
	Cause error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed (%s): %v", e.Stage, e.Cause)
}

func (e *StartupError) Unwrap() error {
	return e.Cause
}

func Startup(stage string, cause error) error {
	return &StartupError{Stage: stage, Cause: cause}
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Resource)
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func Internal(cause error) error {
	return &InternalError{Cause: cause}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsStartup(err error) bool {
	var target *StartupError
	return errors.As(err, &target)
}
