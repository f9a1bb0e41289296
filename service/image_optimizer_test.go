package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeResizesToThumb(t *testing.T) {
	optimizer := NewImageOptimizer(t.TempDir())

	out, err := optimizer.Optimize(pngBytes(t, 1000, 500), "thumb")
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format, "variants are always JPEG")
	assert.LessOrEqual(t, decoded.Bounds().Dx(), 300)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), 300)
}

func TestOptimizeNeverUpscales(t *testing.T) {
	optimizer := NewImageOptimizer(t.TempDir())

	out, err := optimizer.Optimize(pngBytes(t, 100, 80), "medium")
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestOptimizeRejectsGarbage(t *testing.T) {
	optimizer := NewImageOptimizer(t.TempDir())

	_, err := optimizer.Optimize([]byte("not an image"), "thumb")

	assert.Error(t, err)
}

func TestCacheRoundTrip(t *testing.T) {
	optimizer := NewImageOptimizer(t.TempDir())
	cachePath := optimizer.CachePath("i1", "thumb")

	assert.Equal(t, "product_image_i1_thumb.jpg", filepath.Base(cachePath))

	_, ok := optimizer.ReadFromCache(cachePath)
	assert.False(t, ok)

	require.NoError(t, optimizer.SaveToCache(cachePath, []byte("jpeg-bytes")))

	data, ok := optimizer.ReadFromCache(cachePath)
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}
