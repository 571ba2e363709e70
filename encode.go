package steg

import (
	"image"

	"github.com/zedseven/binmani"
)

// Encode embeds message in a copy of cover and returns the result. The
// cover is never mutated; untouched channels are identical in the output
// and touched channels differ by at most 1.
//
// It returns ErrEmptyMessage for an empty message, *UnsupportedFormatError
// when the cover's colour model cannot be manipulated losslessly, and
// *CapacityError when the framed payload exceeds Capacity(cover). A
// payload that exactly fills the image succeeds.
func Encode(cover image.Image, message string) (*image.NRGBA, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}

	img, err := normalize(cover)
	if err != nil {
		return nil, err
	}

	framed := framePayload(message)
	bits := *binmani.BytesToBits(&framed)
	avail := Capacity(cover)
	if int64(len(bits)) > avail {
		return nil, &CapacityError{Required: int64(len(bits)), Available: avail}
	}

	for i, bit := range bits {
		off := bitOffset(int64(i))
		img.Pix[off] = uint8(binmani.WriteTo(uint16(img.Pix[off]), 0, 1, uint16(bit)))
	}
	return img, nil
}
