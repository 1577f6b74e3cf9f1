package balloon

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrUnsupported is returned on platforms without a shell notification area.
	ErrUnsupported = errors.New("balloon notifications are only supported on windows")

	// ErrMissingID is returned when a delete is requested without an identifier.
	ErrMissingID = errors.New("notification id is required")
)

// PlatformError reports a failed Shell_NotifyIconW call. Code is the
// last-error value the call reported.
type PlatformError struct {
	Kind Kind
	Code uint32
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("shell notify %s failed: last error %d", e.Kind, e.Code)
}

func (e *PlatformError) Unwrap() error {
	return syscall.Errno(e.Code)
}
