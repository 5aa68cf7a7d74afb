package persist

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/format"
	"github.com/arloliu/vecfield/internal/options"
)

// Option configures a save or load call.
type Option = options.Option[*config]

type config struct {
	compression     format.CompressionType
	layout          format.PointListLayout
	logger          *slog.Logger
	requireExisting bool
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		compression: format.CompressionNone,
		layout:      format.PointListLayoutLegacy,
		logger:      discardLogger,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

var discardLogger = slog.New(slog.DiscardHandler)

// WithCompression compresses saved files, or decompresses loaded ones, with
// the given codec. Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *config) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = comp
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrUnsupportedCompression, comp)
		}
	})
}

// WithPointListLayout selects the point list record layout.
// Default is format.PointListLayoutLegacy. Grids ignore it.
func WithPointListLayout(layout format.PointListLayout) Option {
	return options.New(func(c *config) error {
		if !layout.IsValid() {
			return fmt.Errorf("%w: %v", errs.ErrUnsupportedLayout, layout)
		}
		c.layout = layout

		return nil
	})
}

// WithLogger logs save and load outcomes to logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = discardLogger
		}
		c.logger = logger
	})
}

// WithRequireExisting makes a save fail with errs.ErrFileNotFound unless the
// target file already exists.
func WithRequireExisting() Option {
	return options.NoError(func(c *config) {
		c.requireExisting = true
	})
}
