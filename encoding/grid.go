package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/internal/pool"
)

// GridTimeLayout is the timestamp layout of the grid text format.
const GridTimeLayout = time.RFC3339Nano

// maxGridLineLength bounds a single line, which in practice only a long name reaches.
const maxGridLineLength = MaxNameLength + 2

// EncodeGrid serializes g in the text format.
//
// The timestamp is written in UTC. Returns errs.ErrInvalidName if the name
// contains a line break and errs.ErrTimestampOutOfRange for timestamps outside
// years 1 to 9999, since the format could not read either back.
func EncodeGrid(g *dataset.Grid) ([]byte, error) {
	if strings.ContainsAny(g.Name(), "\r\n") {
		return nil, fmt.Errorf("%w: %q contains a line break", errs.ErrInvalidName, g.Name())
	}
	if len(g.Name()) > MaxNameLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum %d", errs.ErrNameTooLong, len(g.Name()), MaxNameLength)
	}

	if err := CheckTimestamp(g.Timestamp()); err != nil {
		return nil, fmt.Errorf("grid %q: %w", g.Name(), err)
	}

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	// ~12 bytes per float32 line
	buf.Grow(len(g.Name()) + 64 + g.Count()*24)

	b := buf.B
	b = append(b, g.Name()...)
	b = append(b, '\n')
	b = g.Timestamp().UTC().AppendFormat(b, GridTimeLayout)
	b = append(b, '\n')
	b = strconv.AppendInt(b, int64(g.Ox()), 10)
	b = append(b, '\n')
	b = strconv.AppendInt(b, int64(g.Oy()), 10)
	b = append(b, '\n')
	b = strconv.AppendFloat(b, g.Dx(), 'g', -1, 64)
	b = append(b, '\n')
	b = strconv.AppendFloat(b, g.Dy(), 'g', -1, 64)
	b = append(b, '\n')
	for _, v := range g.Cells() {
		b = strconv.AppendFloat(b, float64(v.X), 'g', -1, 32)
		b = append(b, '\n')
		b = strconv.AppendFloat(b, float64(v.Y), 'g', -1, 32)
		b = append(b, '\n')
	}
	buf.B = b

	out := make([]byte, len(b))
	copy(out, b)

	return out, nil
}

// lineReader reads lines and tracks their 1-based number for error messages.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(data []byte) *lineReader {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), maxGridLineLength)

	return &lineReader{scanner: scanner}
}

// next returns the next line without its terminator (LF or CRLF).
func (r *lineReader) next(field string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: line %d (%s): %w", errs.ErrParseFailure, r.line+1, field, err)
		}

		return "", fmt.Errorf("%w: line %d (%s): unexpected end of input", errs.ErrParseFailure, r.line+1, field)
	}
	r.line++

	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

func (r *lineReader) fail(field, text string, err error) error {
	return fmt.Errorf("%w: line %d (%s): %q: %w", errs.ErrParseFailure, r.line, field, text, err)
}

func (r *lineReader) nextInt(field string) (int, error) {
	text, err := r.next(field)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, r.fail(field, text, err)
	}

	return v, nil
}

func (r *lineReader) nextFloat(field string, bitSize int) (float64, error) {
	text, err := r.next(field)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(text), bitSize)
	if err != nil {
		return 0, r.fail(field, text, err)
	}

	return v, nil
}

// DecodeGrid parses the text format into a new Grid.
//
// Trailing blank lines are accepted; any other trailing content is a parse failure.
func DecodeGrid(data []byte) (*dataset.Grid, error) {
	r := newLineReader(data)

	name, err := r.next("name")
	if err != nil {
		return nil, err
	}

	tsText, err := r.next("timestamp")
	if err != nil {
		return nil, err
	}
	ts, err := time.Parse(GridTimeLayout, strings.TrimSpace(tsText))
	if err != nil {
		return nil, r.fail("timestamp", tsText, err)
	}
	if err := CheckTimestamp(ts); err != nil {
		return nil, r.fail("timestamp", tsText, err)
	}

	ox, err := r.nextInt("Ox")
	if err != nil {
		return nil, err
	}
	oy, err := r.nextInt("Oy")
	if err != nil {
		return nil, err
	}
	if ox < 0 || oy < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", errs.ErrParseFailure, ox, oy)
	}
	// every cell needs two lines of at least two bytes each
	if oy > 0 && ox > math.MaxInt/oy || ox*oy > len(data)/4 {
		return nil, fmt.Errorf("%w: %dx%d cells cannot fit in %d bytes", errs.ErrParseFailure, ox, oy, len(data))
	}

	dx, err := r.nextFloat("dx", 64)
	if err != nil {
		return nil, err
	}
	dy, err := r.nextFloat("dy", 64)
	if err != nil {
		return nil, err
	}

	cells := make([]dataset.Vector2, ox*oy)
	for i := range cells {
		ex, err := r.nextFloat("E.x", 32)
		if err != nil {
			return nil, err
		}
		ey, err := r.nextFloat("E.y", 32)
		if err != nil {
			return nil, err
		}
		cells[i] = dataset.Vector2{X: float32(ex), Y: float32(ey)}
	}

	for r.scanner.Scan() {
		r.line++
		if strings.TrimSpace(r.scanner.Text()) != "" {
			return nil, fmt.Errorf("%w: line %d: unexpected trailing content", errs.ErrParseFailure, r.line)
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", errs.ErrParseFailure, r.line+1, err)
	}

	g, err := dataset.RestoreGrid(name, ts, ox, oy, dx, dy, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrParseFailure, err)
	}

	return g, nil
}
