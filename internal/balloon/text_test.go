package balloon

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		size  int
		want  string
		units int
	}{
		{name: "fits", input: "hello", size: 8, want: "hello", units: 5},
		{name: "exact", input: "abcd", size: 4, want: "abcd", units: 4},
		{name: "truncated", input: "abcdef", size: 4, want: "abcd", units: 4},
		{name: "non-ascii", input: "通知内容", size: 3, want: "通知内", units: 3},
		{name: "pair fits", input: "a😀", size: 3, want: "a😀", units: 3},
		{name: "pair not split", input: "ab😀", size: 3, want: "ab", units: 2},
		{name: "empty", input: "", size: 4, want: "", units: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]uint16, tt.size)
			n := EncodeText(buf, tt.input)

			assert.Equal(t, tt.units, n)
			assert.Equal(t, tt.want, DecodeText(buf))
		})
	}
}

func TestEncodeTextClearsTail(t *testing.T) {
	buf := make([]uint16, 8)
	EncodeText(buf, "longtext")
	EncodeText(buf, "hi")

	assert.Equal(t, []uint16{'h', 'i', 0, 0, 0, 0, 0, 0}, buf)
}

func TestEncodeTextStoresPrefix(t *testing.T) {
	input := strings.Repeat("0123456789", 40)
	units := utf16.Encode([]rune(input))

	var title [TitleUnits]uint16
	var body [BodyUnits]uint16

	assert.Equal(t, TitleUnits, EncodeText(title[:], input))
	assert.Equal(t, units[:TitleUnits], title[:])

	assert.Equal(t, BodyUnits, EncodeText(body[:], input))
	assert.Equal(t, units[:BodyUnits], body[:])
}
