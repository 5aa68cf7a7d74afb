package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/vecfield/errs"
)

type (
	CompressionType uint8
	PointListLayout uint8
	Variant         uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	// PointListLayoutLegacy writes E.x in both field slots of a record, matching existing files.
	PointListLayoutLegacy PointListLayout = 0x1
	// PointListLayoutV2 writes E.x then E.y.
	PointListLayoutV2 PointListLayout = 0x2
)

const (
	VariantPointList Variant = 0x1 // VariantPointList is the sparse, deduplicated point list.
	VariantGrid      Variant = 0x2 // VariantGrid is the dense regular grid.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (l PointListLayout) String() string {
	switch l {
	case PointListLayoutLegacy:
		return "Legacy"
	case PointListLayoutV2:
		return "V2"
	default:
		return "Unknown"
	}
}

// IsValid reports whether l is a known layout.
func (l PointListLayout) IsValid() bool {
	return l == PointListLayoutLegacy || l == PointListLayoutV2
}

func (v Variant) String() string {
	switch v {
	case VariantPointList:
		return "PointList"
	case VariantGrid:
		return "Grid"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name
// ("none", "zstd", "s2", "lz4"). An empty string selects CompressionNone.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, s)
	}
}

// ParsePointListLayout parses a case-insensitive layout name ("legacy", "v2").
// An empty string selects PointListLayoutLegacy.
func ParsePointListLayout(s string) (PointListLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return PointListLayoutLegacy, nil
	case "v2":
		return PointListLayoutV2, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedLayout, s)
	}
}
