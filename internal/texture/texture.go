package texture

import (
	"fmt"
	"log/slog"

	"github.com/ThatOtherAndrew/learngl/internal/assets"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxUnits is the number of texture units a Texture may be assigned to.
// OpenGL guarantees at least 16 per shader stage.
const MaxUnits = 16

// Texture is a 2D GPU texture tied to one texture unit for its lifetime.
type Texture struct {
	id       uint32
	unit     int
	width    int
	height   int
	channels int
}

// Load decodes <root>/textures/<name>.png and uploads it to unit.
func Load(r assets.Resolver, name string, unit int) (*Texture, error) {
	img, err := assets.DecodeImage(r.TexturePath(name))
	if err != nil {
		return nil, err
	}
	t, err := New(img, unit)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	slog.Debug("loaded texture", "name", name, "unit", unit, "width", t.width, "height", t.height, "channels", t.channels)
	return t, nil
}

// New uploads an RGB image at mip level 0, builds the mipmap chain and sets
// repeat wrapping with trilinear minification.
func New(img *assets.Image, unit int) (*Texture, error) {
	if unit < 0 || unit >= MaxUnits {
		return nil, fmt.Errorf("texture unit %d out of range [0, %d)", unit, MaxUnits)
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*3 {
		return nil, fmt.Errorf("image %dx%d with %d bytes is not packed RGB", img.Width, img.Height, len(img.Pix))
	}

	t := &Texture{unit: unit, width: img.Width, height: img.Height, channels: img.Channels}
	gl.GenTextures(1, &t.id)
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are 3*width bytes and need not be 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return t, nil
}

// Use binds the texture to its unit. Unit bindings are shared by every
// texture, so call it before each draw that samples this texture.
func (t *Texture) Use() {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(t.unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}

func (t *Texture) Unit() int { return t.unit }
