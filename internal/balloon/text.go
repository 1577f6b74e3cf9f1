package balloon

import "unicode/utf16"

// Buffer widths of NOTIFYICONDATAW.szInfoTitle and szInfo, in UTF-16 units.
const (
	TitleUnits = 64
	BodyUnits  = 256
)

// EncodeText encodes s as UTF-16 into dst and returns the number of units
// written. Input longer than dst is truncated. A high surrogate that would
// end up as the last stored unit is dropped so a pair is never split. The
// rest of dst is zeroed.
func EncodeText(dst []uint16, s string) int {
	units := utf16.Encode([]rune(s))

	n := min(len(units), len(dst))
	if n < len(units) && n > 0 && isHighSurrogate(units[n-1]) {
		n--
	}

	copy(dst, units[:n])
	clear(dst[n:])
	return n
}

// DecodeText returns the text stored in buf up to the first NUL unit.
func DecodeText(buf []uint16) string {
	for i, u := range buf {
		if u == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xd800 && u < 0xdc00
}
