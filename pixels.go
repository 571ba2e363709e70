package steg

import (
	"image"
)

// normalize copies an image into a freshly allocated NRGBA grid so the
// embed/extract loops can address channels uniformly. The copy is
// byte-for-byte: RGBA sources are not colour-converted, since any value
// conversion before embedding would disturb the channel bits the payload
// lives in. Each colour model has to be handled individually.
func normalize(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w*4], src.Pix[si:si+w*4])
		}
	case *image.RGBA:
		for y := 0; y < h; y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w*4], src.Pix[si:si+w*4])
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * dst.Stride
			for x := 0; x < w; x++ {
				v := src.Pix[si+x]
				dst.Pix[di+x*4] = v
				dst.Pix[di+x*4+1] = v
				dst.Pix[di+x*4+2] = v
				dst.Pix[di+x*4+3] = 0xff
			}
		}
	default:
		return nil, &UnsupportedFormatError{Model: modelName(img)}
	}
	return dst, nil
}

func modelName(img image.Image) string {
	switch img.(type) {
	case *image.Alpha:
		return "Alpha"
	case *image.Alpha16:
		return "Alpha16"
	case *image.CMYK:
		return "CMYK"
	case *image.Gray16:
		return "Gray16"
	case *image.NRGBA64:
		return "NRGBA64"
	case *image.NYCbCrA:
		return "NYCbCrA"
	case *image.Paletted:
		return "Paletted"
	case *image.RGBA64:
		return "RGBA64"
	case *image.YCbCr:
		return "YCbCr"
	default:
		return "<unknown>"
	}
}
