// Package compress provides the whole-file codecs applied to persisted datasets.
//
// The persisted point list and grid formats have no header, so compression is a
// caller-side setting: a file saved with Zstd must be loaded with Zstd.
//
// Supported algorithms (format.CompressionType):
//   - None: bytes are passed through unchanged (the default, byte-compatible with existing files)
//   - Zstd: best ratio, the right choice for large text grids
//   - S2: fast, moderate ratio
//   - LZ4: fastest decompression
//
// Zstd uses the pure Go klauspost/compress implementation. Building with the
// "gozstd" tag and cgo enabled switches to the valyala/gozstd bindings; both
// produce standard Zstandard frames, so files are interchangeable.
//
// All codecs are stateless values and safe for concurrent use; encoder and
// decoder state is pooled internally.
package compress
