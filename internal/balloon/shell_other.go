//go:build !windows

package balloon

import "github.com/google/uuid"

type platformShell struct{}

func (platformShell) NotifyIcon(Kind, *Descriptor) error {
	return ErrUnsupported
}

func (platformShell) NewID() (ID, error) {
	return uuid.NewRandom()
}
