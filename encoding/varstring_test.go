package encoding

import (
	"strings"
	"testing"

	"github.com/arloliu/vecfield/errs"
	"github.com/stretchr/testify/require"
)

func TestAppendVarString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix []byte
	}{
		{"empty", "", []byte{0x00}},
		{"short", "Raptor", []byte{0x06}},
		{"one byte limit", strings.Repeat("a", 127), []byte{0x7F}},
		{"two byte prefix", strings.Repeat("a", 128), []byte{0x80, 0x01}},
		{"two byte prefix 200", strings.Repeat("a", 200), []byte{0xC8, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := AppendVarString(nil, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.prefix, buf[:len(tt.prefix)])
			require.Equal(t, tt.input, string(buf[len(tt.prefix):]))

			got, n, err := ReadVarString(buf)
			require.NoError(t, err)
			require.Equal(t, tt.input, got)
			require.Equal(t, len(buf), n)
		})
	}
}

func TestAppendVarString_UTF8(t *testing.T) {
	buf, err := AppendVarString([]byte{0xEE}, "Поле")
	require.NoError(t, err)
	require.Equal(t, byte(0xEE), buf[0])
	require.Equal(t, byte(8), buf[1], "length counts bytes, not runes")

	got, n, err := ReadVarString(buf[1:])
	require.NoError(t, err)
	require.Equal(t, "Поле", got)
	require.Equal(t, 9, n)
}

func TestAppendVarString_TooLong(t *testing.T) {
	_, err := AppendVarString(nil, strings.Repeat("x", MaxNameLength+1))
	require.ErrorIs(t, err, errs.ErrNameTooLong)
}

func TestReadVarString_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unterminated length", []byte{0x80}},
		{"overflowing length", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
		{"body too short", []byte{0x05, 'a', 'b'}},
		{"length above limit", []byte{0x81, 0x80, 0x80, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadVarString(tt.data)
			require.ErrorIs(t, err, errs.ErrParseFailure)
		})
	}
}
