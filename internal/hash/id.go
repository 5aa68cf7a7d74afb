// Package hash computes the 64-bit identifiers used to index dataset names.
package hash

import "github.com/cespare/xxhash/v2"

// NameID computes the xxHash64 of a dataset name.
func NameID(name string) uint64 {
	return xxhash.Sum64String(name)
}
