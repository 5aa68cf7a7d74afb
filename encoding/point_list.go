package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/endian"
	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/format"
	"github.com/arloliu/vecfield/internal/pool"
)

const (
	// PointRecordSize is the encoded size of one point list record.
	PointRecordSize = 8 + 8 + 4 + 4

	timestampSize = 8
	countSize     = 4
)

// PointListEncoder encodes point lists in the binary format.
//
// An encoder is not safe for concurrent use. Call Finish to return its buffer
// to the pool.
type PointListEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	layout format.PointListLayout
}

// NewPointListEncoder creates an encoder for the given record layout.
//
// Returns an error wrapping errs.ErrUnsupportedLayout for unknown layouts.
func NewPointListEncoder(layout format.PointListLayout) (*PointListEncoder, error) {
	if !layout.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedLayout, layout)
	}

	return &PointListEncoder{
		buf:    pool.GetEncodeBuffer(),
		engine: endian.GetLittleEndianEngine(),
		layout: layout,
	}, nil
}

// Encode serializes p and returns a newly allocated byte slice.
//
// The encoder can be reused for further lists until Finish is called.
func (e *PointListEncoder) Encode(p *dataset.PointList) ([]byte, error) {
	if e.buf == nil {
		panic("encoder already finished - cannot encode after Finish()")
	}
	if p.Count() > math.MaxInt32 {
		return nil, fmt.Errorf("point list %q has %d items, more than an int32 count allows", p.Name(), p.Count())
	}

	if err := CheckTimestamp(p.Timestamp()); err != nil {
		return nil, fmt.Errorf("point list %q: %w", p.Name(), err)
	}

	e.buf.Reset()
	e.buf.Grow(len(p.Name()) + 10 + timestampSize + countSize + p.Count()*PointRecordSize)

	b, err := AppendVarString(e.buf.B, p.Name())
	if err != nil {
		return nil, err
	}
	b = endian.AppendInt64(e.engine, b, TicksFromTime(p.Timestamp()))
	b = endian.AppendInt32(e.engine, b, int32(p.Count())) //nolint:gosec

	for item := range p.Items() {
		b = endian.AppendFloat64(e.engine, b, item.X)
		b = endian.AppendFloat64(e.engine, b, item.Y)
		b = endian.AppendFloat32(e.engine, b, item.E.X)
		if e.layout == format.PointListLayoutLegacy {
			b = endian.AppendFloat32(e.engine, b, item.E.X)
		} else {
			b = endian.AppendFloat32(e.engine, b, item.E.Y)
		}
	}
	e.buf.B = b

	out := make([]byte, len(b))
	copy(out, b)

	return out, nil
}

// Finish returns the encoder's buffer to the pool. The encoder is unusable afterwards.
func (e *PointListEncoder) Finish() {
	if e.buf != nil {
		pool.PutEncodeBuffer(e.buf)
		e.buf = nil
	}
}

// PointListDecoder decodes the binary point list format.
//
// Both layouts share one record shape, so the decoder always reads the fourth
// field into E.y; for legacy files that is a copy of E.x.
// A decoder is stateless and safe for concurrent use.
type PointListDecoder struct {
	engine endian.EndianEngine
}

// NewPointListDecoder creates a decoder.
func NewPointListDecoder() *PointListDecoder {
	return &PointListDecoder{engine: endian.GetLittleEndianEngine()}
}

// Decode parses data into a new PointList.
//
// Records go through PointList.Add, so duplicate positions are dropped. The
// input must hold exactly count records; short or trailing data is a parse failure.
func (d *PointListDecoder) Decode(data []byte) (*dataset.PointList, error) {
	name, off, err := ReadVarString(data)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	if len(data)-off < timestampSize+countSize {
		return nil, fmt.Errorf("%w: header truncated after name %q", errs.ErrParseFailure, name)
	}
	ticks := endian.Int64(d.engine, data[off:])
	if ticks&ticksMask > MaxTicks {
		return nil, fmt.Errorf("%w: timestamp ticks %d beyond 9999-12-31", errs.ErrParseFailure, ticks&ticksMask)
	}
	ts := TimeFromTicks(ticks)
	off += timestampSize
	count := endian.Int32(d.engine, data[off:])
	off += countSize

	if count < 0 {
		return nil, fmt.Errorf("%w: negative record count %d", errs.ErrParseFailure, count)
	}
	if want := int(count) * PointRecordSize; len(data)-off != want {
		return nil, fmt.Errorf("%w: %d records need %d bytes, found %d", errs.ErrParseFailure, count, want, len(data)-off)
	}

	p := dataset.NewPointList(name, ts)
	for range count {
		rec := data[off : off+PointRecordSize]
		x := endian.Float64(d.engine, rec[0:8])
		y := endian.Float64(d.engine, rec[8:16])
		e := dataset.Vector2{
			X: endian.Float32(d.engine, rec[16:20]),
			Y: endian.Float32(d.engine, rec[20:24]),
		}
		p.Add(dataset.NewDataItem(x, y, e))
		off += PointRecordSize
	}

	return p, nil
}

// EncodePointList encodes p with a one-shot encoder.
func EncodePointList(p *dataset.PointList, layout format.PointListLayout) ([]byte, error) {
	enc, err := NewPointListEncoder(layout)
	if err != nil {
		return nil, err
	}
	defer enc.Finish()

	return enc.Encode(p)
}

// DecodePointList decodes data with a one-shot decoder.
func DecodePointList(data []byte) (*dataset.PointList, error) {
	return NewPointListDecoder().Decode(data)
}
