package persist

import (
	"fmt"

	"github.com/arloliu/vecfield/compress"
	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/encoding"
	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/format"
)

// SavePointList writes p to path in the binary point list format.
func SavePointList(path string, p *dataset.PointList, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	data, err := encoding.EncodePointList(p, cfg.layout)
	if err == nil {
		err = cfg.save(path, data)
	}
	cfg.logSave(path, format.VariantPointList, p.Count(), len(data), err)

	return err
}

// SaveGrid writes g to path in the grid text format.
func SaveGrid(path string, g *dataset.Grid, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	data, err := encoding.EncodeGrid(g)
	if err == nil {
		err = cfg.save(path, data)
	}
	cfg.logSave(path, format.VariantGrid, g.Count(), len(data), err)

	return err
}

// LoadPointList reads a point list saved with SavePointList.
//
// The returned list is newly allocated; records repeating an earlier position
// are dropped as they would be by PointList.Add.
func LoadPointList(path string, opts ...Option) (*dataset.PointList, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	data, err := cfg.load(path)
	if err != nil {
		cfg.logLoad(path, format.VariantPointList, 0, len(data), err)
		return nil, err
	}

	p, err := encoding.DecodePointList(data)
	if err != nil {
		err = fmt.Errorf("decode %s: %w", path, err)
		cfg.logLoad(path, format.VariantPointList, 0, len(data), err)

		return nil, err
	}
	cfg.logLoad(path, format.VariantPointList, p.Count(), len(data), nil)

	return p, nil
}

// LoadGrid reads a grid saved with SaveGrid.
func LoadGrid(path string, opts ...Option) (*dataset.Grid, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	data, err := cfg.load(path)
	if err != nil {
		cfg.logLoad(path, format.VariantGrid, 0, len(data), err)
		return nil, err
	}

	g, err := encoding.DecodeGrid(data)
	if err != nil {
		err = fmt.Errorf("decode %s: %w", path, err)
		cfg.logLoad(path, format.VariantGrid, 0, len(data), err)

		return nil, err
	}
	cfg.logLoad(path, format.VariantGrid, g.Count(), len(data), nil)

	return g, nil
}

func (c *config) save(path string, data []byte) error {
	payload, stats, err := compress.CompressWithStats(c.compression, data)
	if err != nil {
		return err
	}
	if c.compression != format.CompressionNone {
		c.logger.Debug("payload compressed",
			"path", path,
			"compression", c.compression.String(),
			"original", stats.OriginalSize,
			"compressed", stats.CompressedSize,
			"ratio", stats.Ratio(),
		)
	}

	return writeFileAtomic(path, payload, c.requireExisting)
}

// load returns the decompressed file content.
func (c *config) load(path string) ([]byte, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(c.compression)
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s decompression: %w", errs.ErrParseFailure, path, c.compression, err)
	}

	return data, nil
}

func (c *config) logSave(path string, variant format.Variant, count, size int, err error) {
	if err != nil {
		c.logger.Error("save failed",
			"path", path,
			"variant", variant.String(),
			"compression", c.compression.String(),
			"error", err,
		)

		return
	}
	c.logger.Debug("save completed",
		"path", path,
		"variant", variant.String(),
		"count", count,
		"bytes", size,
		"compression", c.compression.String(),
	)
}

func (c *config) logLoad(path string, variant format.Variant, count, size int, err error) {
	if err != nil {
		c.logger.Error("load failed",
			"path", path,
			"variant", variant.String(),
			"compression", c.compression.String(),
			"error", err,
		)

		return
	}
	c.logger.Debug("load completed",
		"path", path,
		"variant", variant.String(),
		"count", count,
		"bytes", size,
		"compression", c.compression.String(),
	)
}
