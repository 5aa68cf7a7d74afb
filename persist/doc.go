// Package persist saves and loads datasets as files.
//
// Point lists are stored in the binary format and grids in the text format
// implemented by package encoding. The payload can be compressed as a whole
// with any codec from package compress; the file carries no marker, so a file
// must be loaded with the compression (and, for point lists, the layout) it was
// saved with.
//
// Saves are atomic: the payload is written to a temporary file in the target
// directory, synced, and renamed over the target. A failed save leaves the
// previous file untouched.
//
//	err := persist.SaveGrid("field.grid", g, persist.WithCompression(format.CompressionZstd))
//	...
//	g2, err := persist.LoadGrid("field.grid", persist.WithCompression(format.CompressionZstd))
//
// Errors wrap errs.ErrFileNotFound when the target cannot be opened and
// errs.ErrParseFailure when the stored bytes cannot be decoded.
package persist
