package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty name", "", 0xef46db3751d8e999},
		{"short name", "test", 0x4fdcca5ddb678139},
		{"long name", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another name", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, NameID(tt.data))
		})
	}
}

func TestNameID_Distinct(t *testing.T) {
	require.NotEqual(t, NameID("Array_entry_1"), NameID("Array_entry_2"))
	require.Equal(t, NameID("List_entry_1"), NameID("List_entry_1"))
}

func BenchmarkNameID(b *testing.B) {
	name := "List_entry_1"
	for b.Loop() {
		NameID(name)
	}
}
