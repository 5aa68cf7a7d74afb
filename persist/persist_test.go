package persist

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/format"
	"github.com/stretchr/testify/require"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func testField(x, y float64) dataset.Vector2 {
	return dataset.Vector2{X: float32(x), Y: float32(y)}
}

func newTestGrid(t *testing.T) *dataset.Grid {
	t.Helper()
	g, err := dataset.NewGrid("Pigeon", time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), 3, 2, 0.1, 0.1, testField)
	require.NoError(t, err)

	return g
}

func newTestPointList() *dataset.PointList {
	p := dataset.NewPointList("Raptor", time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC))
	p.AddDefaults(5, func(x, y float64) dataset.Vector2 {
		return dataset.Vector2{X: float32(x), Y: float32(x * 2)}
	})

	return p
}

func TestPointList_RoundTrip(t *testing.T) {
	for _, comp := range allCompressions {
		t.Run(comp.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "list.bin")
			src := newTestPointList()

			opts := []Option{WithCompression(comp), WithPointListLayout(format.PointListLayoutV2)}
			require.NoError(t, SavePointList(path, src, opts...))

			got, err := LoadPointList(path, opts...)
			require.NoError(t, err)
			require.NotSame(t, src, got)
			require.Equal(t, src.Name(), got.Name())
			require.True(t, src.Timestamp().Equal(got.Timestamp()))
			require.Equal(t, src.Slice(), got.Slice())
		})
	}
}

func TestPointList_LegacyLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.bin")
	src := newTestPointList()
	require.NoError(t, SavePointList(path, src))

	got, err := LoadPointList(path)
	require.NoError(t, err)
	require.Equal(t, src.Count(), got.Count())
	for i, item := range got.Slice() {
		want := src.At(i)
		require.Equal(t, want.X, item.X)
		require.Equal(t, want.Y, item.Y)
		require.Equal(t, want.E.X, item.E.X)
		require.Equal(t, want.E.X, item.E.Y, "legacy layout stores E.x twice")
	}
}

func TestGrid_RoundTrip(t *testing.T) {
	for _, comp := range allCompressions {
		t.Run(comp.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "field.grid")
			src := newTestGrid(t)

			require.NoError(t, SaveGrid(path, src, WithCompression(comp)))

			got, err := LoadGrid(path, WithCompression(comp))
			require.NoError(t, err)
			require.Equal(t, src.Name(), got.Name())
			require.True(t, src.Timestamp().Equal(got.Timestamp()))
			require.Equal(t, src.Ox(), got.Ox())
			require.Equal(t, src.Oy(), got.Oy())
			require.Equal(t, src.Dx(), got.Dx())
			require.Equal(t, src.Dy(), got.Dy())
			require.Equal(t, src.Cells(), got.Cells())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent")

	_, err := LoadGrid(path)
	require.ErrorIs(t, err, errs.ErrFileNotFound)
	require.NotErrorIs(t, err, errs.ErrParseFailure)

	_, err = LoadPointList(path)
	require.ErrorIs(t, err, errs.ErrFileNotFound)
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "field.grid")

	err := SaveGrid(path, newTestGrid(t))
	require.ErrorIs(t, err, errs.ErrFileNotFound)

	err = SavePointList(path, newTestPointList())
	require.ErrorIs(t, err, errs.ErrFileNotFound)
}

func TestSave_RequireExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.grid")

	err := SaveGrid(path, newTestGrid(t), WithRequireExisting())
	require.ErrorIs(t, err, errs.ErrFileNotFound)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.NoError(t, SaveGrid(path, newTestGrid(t), WithRequireExisting()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "existing permissions are kept")
}

func TestLoad_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage")
	require.NoError(t, os.WriteFile(path, []byte("not a grid\n"), 0o600))

	_, err := LoadGrid(path)
	require.ErrorIs(t, err, errs.ErrParseFailure)
	require.NotErrorIs(t, err, errs.ErrFileNotFound)

	_, err = LoadPointList(path)
	require.ErrorIs(t, err, errs.ErrParseFailure)
}

func TestLoad_WrongCompression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.grid")
	require.NoError(t, SaveGrid(path, newTestGrid(t)))

	_, err := LoadGrid(path, WithCompression(format.CompressionZstd))
	require.ErrorIs(t, err, errs.ErrParseFailure)
}

func TestSave_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.bin")

	first := newTestPointList()
	require.NoError(t, SavePointList(path, first))

	second := dataset.NewPointList("second", time.Time{})
	second.Add(dataset.NewDataItem(1, 1, dataset.Vector2{X: 1, Y: 1}))
	require.NoError(t, SavePointList(path, second))

	got, err := LoadPointList(path)
	require.NoError(t, err)
	require.Equal(t, "second", got.Name())
	require.Equal(t, 1, got.Count())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestSave_FailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.grid")
	require.NoError(t, SaveGrid(path, newTestGrid(t)))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	bad := dataset.NewEmptyGrid("line\nbreak", time.Time{})
	err = SaveGrid(path, bad)
	require.ErrorIs(t, err, errs.ErrInvalidName)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestOptions_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x")

	err := SaveGrid(path, newTestGrid(t), WithCompression(format.CompressionType(42)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = LoadPointList(path, WithPointListLayout(format.PointListLayout(0)))
	require.ErrorIs(t, err, errs.ErrUnsupportedLayout)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	path := filepath.Join(t.TempDir(), "field.grid")

	require.NoError(t, SaveGrid(path, newTestGrid(t), WithLogger(logger), WithCompression(format.CompressionS2)))
	out := buf.String()
	require.Contains(t, out, `"msg":"save completed"`)
	require.Contains(t, out, `"variant":"Grid"`)
	require.Contains(t, out, `"count":6`)
	require.Contains(t, out, `"compression":"S2"`)

	buf.Reset()
	_, err := LoadGrid(filepath.Join(t.TempDir(), "absent"), WithLogger(logger))
	require.Error(t, err)
	require.Contains(t, buf.String(), `"msg":"load failed"`)
	require.Contains(t, buf.String(), `"level":"ERROR"`)
}
