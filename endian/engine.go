// Package endian provides the byte order engine used by the binary point list codec.
//
// The persisted point list format is positional and little-endian. This package
// combines the ByteOrder and AppendByteOrder interfaces of encoding/binary into a
// single EndianEngine and adds float helpers, so codecs can append fields directly
// to a buffer and read them back without temporary slices.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64(engine, buf, 1.5)
//	v := endian.Float64(engine, buf[0:8])
//
// All functions are safe for concurrent use; the engines are stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendInt32 appends v as 4 bytes.
func AppendInt32(engine EndianEngine, buf []byte, v int32) []byte {
	return engine.AppendUint32(buf, uint32(v)) //nolint:gosec
}

// AppendInt64 appends v as 8 bytes.
func AppendInt64(engine EndianEngine, buf []byte, v int64) []byte {
	return engine.AppendUint64(buf, uint64(v)) //nolint:gosec
}

// AppendFloat32 appends the IEEE 754 bits of v as 4 bytes.
func AppendFloat32(engine EndianEngine, buf []byte, v float32) []byte {
	return engine.AppendUint32(buf, math.Float32bits(v))
}

// AppendFloat64 appends the IEEE 754 bits of v as 8 bytes.
func AppendFloat64(engine EndianEngine, buf []byte, v float64) []byte {
	return engine.AppendUint64(buf, math.Float64bits(v))
}

// Int32 reads a 4-byte signed integer. b must hold at least 4 bytes.
func Int32(engine EndianEngine, b []byte) int32 {
	return int32(engine.Uint32(b)) //nolint:gosec
}

// Int64 reads an 8-byte signed integer. b must hold at least 8 bytes.
func Int64(engine EndianEngine, b []byte) int64 {
	return int64(engine.Uint64(b)) //nolint:gosec
}

// Float32 reads a 4-byte IEEE 754 float. b must hold at least 4 bytes.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// Float64 reads an 8-byte IEEE 754 float. b must hold at least 8 bytes.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}
