package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/vecfield/errs"
)

// MaxNameLength is the maximum encoded length of a dataset name in bytes.
const MaxNameLength = 1 << 20

// AppendVarString appends s with a uvarint length prefix.
//
// This is the 7-bit encoded length used by .NET BinaryWriter strings: seven
// bits per byte, low groups first, high bit set on every byte but the last.
func AppendVarString(buf []byte, s string) ([]byte, error) {
	if len(s) > MaxNameLength {
		return buf, fmt.Errorf("%w: %d bytes exceeds maximum %d", errs.ErrNameTooLong, len(s), MaxNameLength)
	}

	buf = binary.AppendUvarint(buf, uint64(len(s)))
	buf = append(buf, s...)

	return buf, nil
}

// ReadVarString reads a length-prefixed string from the start of data and
// returns it with the number of bytes consumed.
func ReadVarString(data []byte) (string, int, error) {
	length, n := binary.Uvarint(data)
	switch {
	case n == 0:
		return "", 0, fmt.Errorf("%w: truncated string length", errs.ErrParseFailure)
	case n < 0:
		return "", 0, fmt.Errorf("%w: string length overflows 64 bits", errs.ErrParseFailure)
	case length > MaxNameLength:
		return "", 0, fmt.Errorf("%w: string length %d exceeds maximum %d", errs.ErrParseFailure, length, MaxNameLength)
	}

	end := n + int(length) //nolint:gosec
	if end > len(data) {
		return "", 0, fmt.Errorf("%w: string needs %d bytes, %d available", errs.ErrParseFailure, length, len(data)-n)
	}

	return string(data[n:end]), end, nil
}
