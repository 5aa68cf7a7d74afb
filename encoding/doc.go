// Package encoding converts datasets to and from their persisted byte formats.
//
// Both formats are positional: no magic number, no version, no checksum. A
// reader must use the same field order and widths as the writer.
//
// # Point list binary format
//
// Little-endian, no padding:
//
//	name       uvarint length (7 bits per byte, low groups first) + UTF-8 bytes
//	timestamp  int64  ticks of 100ns since 0001-01-01T00:00:00
//	count      int32
//	count × record:
//	    x      float64
//	    y      float64
//	    E.x    float32
//	    E.?    float32  E.x again (PointListLayoutLegacy) or E.y (PointListLayoutV2)
//
// The legacy layout stores E.x twice and loses E.y. It is the default because
// existing files use it; PointListLayoutV2 is the corrected layout and must be
// requested explicitly when saving. Readers cannot tell the layouts apart and
// always load the fourth field as E.y.
//
// Decoding rebuilds the list through dataset.PointList.Add, so records at a
// position already read are dropped silently.
//
// # Grid text format
//
// One value per line:
//
//	name
//	timestamp   RFC 3339 with nanoseconds
//	Ox
//	Oy
//	dx
//	dy
//	Ox*Oy × (E.x line, E.y line), row-major
//
// Numbers are whitespace-trimmed before parsing. Floats are written in the
// shortest form that parses back to the same value.
//
// All decode failures wrap errs.ErrParseFailure.
package encoding
