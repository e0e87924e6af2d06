package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/learngl/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestResolver(t *testing.T) {
	r := NewResolver("")
	assert.Equal(t, "assets", r.Root)

	vert, frag := r.ShaderPaths("lighting")
	assert.Equal(t, filepath.Join("assets", "shaders", "lighting.vert"), vert)
	assert.Equal(t, filepath.Join("assets", "shaders", "lighting.frag"), frag)
	assert.Equal(t, filepath.Join("assets", "textures", "crate_1.png"), r.TexturePath("crate_1"))

	r = NewResolver("/opt/learngl")
	assert.Equal(t, filepath.Join("/opt/learngl", "shaders"), r.ShaderRoot())
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 330 core\n"), 0o644))

	src, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\n", src)

	_, err = ReadSource(filepath.Join(dir, "missing.frag"))
	require.Error(t, err)
	assert.Equal(t, models.KindRead, models.KindOf(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeImageDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * x), G: uint8(10 * y), B: 200, A: 128})
		}
	}
	path := filepath.Join(t.TempDir(), "alpha.png")
	writePNG(t, path, src)

	img, err := DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 4, img.Channels)
	require.Len(t, img.Pix, 3*2*3)

	// pixel (2, 1)
	i := (1*3 + 2) * 3
	assert.Equal(t, []uint8{20, 10, 200}, img.Pix[i:i+3])
}

func TestDecodeImageChannels(t *testing.T) {
	opaque := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}
	gray := image.NewGray(image.Rect(0, 0, 2, 2))

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "opaque.png"), opaque)
	writePNG(t, filepath.Join(dir, "gray.png"), gray)

	img, err := DecodeImage(filepath.Join(dir, "opaque.png"))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Channels)

	img, err = DecodeImage(filepath.Join(dir, "gray.png"))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Channels)
	assert.Len(t, img.Pix, 2*2*3)
}

func TestDecodeImageFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := DecodeImage(filepath.Join(dir, "missing.png"))
	assert.Equal(t, models.KindRead, models.KindOf(err))

	bogus := filepath.Join(dir, "bogus.png")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0o644))
	_, err = DecodeImage(bogus)
	assert.Equal(t, models.KindDecode, models.KindOf(err))
}

func TestPackRGBOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	img := PackRGB(src)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, []uint8{0, 0, 0, 1, 2, 3}, img.Pix)
}

func TestShaderName(t *testing.T) {
	name, ok := ShaderName("assets/shaders/lighting.frag")
	assert.True(t, ok)
	assert.Equal(t, "lighting", name)

	name, ok = ShaderName("/x/basic.vert")
	assert.True(t, ok)
	assert.Equal(t, "basic", name)

	_, ok = ShaderName("assets/shaders/.lighting.frag.swp")
	assert.False(t, ok)
}

func TestWatchShaders(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ShaderDir), 0o755))
	r := NewResolver(root)

	ctx, cancel := context.WithCancel(context.Background())
	names, err := WatchShaders(ctx, r)
	require.NoError(t, err)

	vert, _ := r.ShaderPaths("basic")
	require.NoError(t, os.WriteFile(vert, []byte("void main() {}\n"), 0o644))

	select {
	case name := <-names:
		assert.Equal(t, "basic", name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	for range names {
	}
}

func TestWatchShadersMissingDir(t *testing.T) {
	_, err := WatchShaders(context.Background(), NewResolver(filepath.Join(t.TempDir(), "nope")))
	assert.Error(t, err)
}
