//go:build !windows

package balloon

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformShellUnsupported(t *testing.T) {
	n := New(nil, zerolog.Nop())

	_, err := n.Show(context.Background(), "title", "body")
	assert.ErrorIs(t, err, ErrUnsupported)

	id, err := platformShell{}.NewID()
	require.NoError(t, err)
	assert.NotEqual(t, ID{}, id)
}
