package assets

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/ThatOtherAndrew/learngl/internal/models"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image is a decoded picture packed as tightly interleaved 8-bit RGB rows.
// Channels records how many channels the source file carried; any alpha is
// dropped during packing.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

func DecodeImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.ReadError{Path: path, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &models.DecodeError{Path: path, Err: err}
	}
	return PackRGB(src), nil
}

// PackRGB converts any image to packed RGB.
func PackRGB(src image.Image) *Image {
	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	img := &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels(src),
		Pix:      make([]uint8, 0, b.Dx()*b.Dy()*3),
	}
	for y := 0; y < img.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+img.Width*4]
		for x := 0; x < len(row); x += 4 {
			img.Pix = append(img.Pix, row[x], row[x+1], row[x+2])
		}
	}
	return img
}

func channels(src image.Image) int {
	switch src.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	}
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
