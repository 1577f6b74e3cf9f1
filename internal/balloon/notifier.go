// Package balloon shows and removes balloon tips in the Windows
// notification area through Shell_NotifyIconW.
package balloon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Request carries the text of a notification. Title and Body are truncated
// to TitleUnits and BodyUnits UTF-16 units.
type Request struct {
	Title string
	Body  string
}

// Shell is the platform notification service.
type Shell interface {
	// NotifyIcon issues a single Shell_NotifyIconW call.
	NotifyIcon(kind Kind, d *Descriptor) error
	// NewID generates a fresh identifier.
	NewID() (ID, error)
}

// Notifier posts and removes notifications. It keeps no record of which
// notifications are shown; callers hold on to the returned ID.
type Notifier struct {
	shell  Shell
	logger zerolog.Logger
}

// New returns a Notifier backed by shell. A nil shell selects the platform
// backend.
func New(shell Shell, logger zerolog.Logger) *Notifier {
	if shell == nil {
		shell = platformShell{}
	}
	return &Notifier{
		shell:  shell,
		logger: logger.With().Str("cmp", "balloon").Logger(),
	}
}

// Show posts a notification under a freshly generated ID.
func (n *Notifier) Show(ctx context.Context, title, body string) (ID, error) {
	return n.Send(ctx, KindAdd, Request{Title: title, Body: body}, ID{})
}

// ShowWithID posts a notification under a caller-supplied ID. A zero id
// falls back to a generated one.
func (n *Notifier) ShowWithID(ctx context.Context, id ID, title, body string) (ID, error) {
	return n.Send(ctx, KindAdd, Request{Title: title, Body: body}, id)
}

// Remove deletes the notification posted under id.
func (n *Notifier) Remove(ctx context.Context, id ID) error {
	_, err := n.Send(ctx, KindDelete, Request{}, id)
	return err
}

// Send issues one shell call of the given kind. For KindAdd a zero id is
// replaced by a generated one and req is encoded into the descriptor. For
// KindDelete req is ignored. The returned ID is the one the call used.
func (n *Notifier) Send(ctx context.Context, kind Kind, req Request, id ID) (ID, error) {
	if err := ctx.Err(); err != nil {
		return ID{}, err
	}

	var d *Descriptor
	switch kind {
	case KindAdd:
		if id == (ID{}) {
			generated, err := n.shell.NewID()
			if err != nil {
				return ID{}, fmt.Errorf("generate notification id: %w", err)
			}
			id = generated
		}

		var titleN, bodyN int
		d, titleN, bodyN = newAddDescriptor(req, id)
		n.logger.Debug().
			Stringer("kind", kind).
			Stringer("id", id).
			Int("title_units", titleN).
			Int("body_units", bodyN).
			Msg("posting notification")
	case KindDelete:
		if id == (ID{}) {
			return ID{}, ErrMissingID
		}
		d = newDeleteDescriptor(id)
		n.logger.Debug().
			Stringer("kind", kind).
			Stringer("id", id).
			Msg("removing notification")
	default:
		return ID{}, fmt.Errorf("unknown notification kind %d", int(kind))
	}

	if err := n.shell.NotifyIcon(kind, d); err != nil {
		n.logger.Error().Err(err).Stringer("kind", kind).Stringer("id", id).Msg("shell notify failed")
		return ID{}, err
	}
	return id, nil
}
