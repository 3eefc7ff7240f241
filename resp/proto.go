// Package resp implements the wire codec: a streaming request
// parser/framer and a typed reply encoder, both speaking a RESP-style,
// CRLF-terminated protocol.
package resp

import (
	"fmt"
	"math"
	"strconv"
)

// uint64 max "18446744073709551615"
// int64 min  "-9223372036854775808"
const intBase10MaxLen = 20

func bufgrow(buf *[]byte, addlSizeNeeded int) {
	if cap(*buf)-len(*buf) < addlSizeNeeded {
		_bufgrow(buf, addlSizeNeeded)
	}
}

func _bufgrow(buf *[]byte, z int) {
	l := len(*buf)
	buf2 := make([]byte, l, cap(*buf)*2+z)
	copy(buf2, *buf)
	*buf = buf2
}

// parseInt is a specialized version of strconv.ParseInt for RESP integer fields.
func parseInt(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("empty integer")
	}
	var neg bool
	if b[0] == '-' || b[0] == '+' {
		neg = b[0] == '-'
		b = b[1:]
	}
	n, err := parseUint(b)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(n), nil
	}
	return int64(n), nil
}

// parseUint is a specialized version of strconv.ParseUint for RESP length fields.
func parseUint(b []byte) (uint64, error) {
	if len(b) == 1 && b[0] >= '0' && b[0] <= '9' {
		return uint64(b[0] - '0'), nil
	}
	return _parseUint(b)
}

func _parseUint(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("empty integer")
	}
	var n uint64
	for i, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("parseUint: invalid byte %c at %d", c, i)
		}
		n = n*10 + uint64(c-'0')
	}
	return n, nil
}

func appendFloat(b []byte, v float64, bitsize int) []byte {
	format := byte('f')
	// Note: must use float32 comparisons for underlying float32 values to get precise cutoffs right.
	abs := math.Abs(v)
	if abs != 0 {
		if bitsize == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bitsize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	return strconv.AppendFloat(b, v, format, -1, bitsize)
}
