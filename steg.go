package steg

import (
	"fmt"
	"image"
)

const (
	// payloadMagic marks the start of an embedded payload. Its absence
	// during decoding means the image carries no recoverable message.
	payloadMagic = "IMSG\x00"

	// lenFieldBytes is the width of the big-endian message-length field
	// that follows the magic.
	lenFieldBytes = 4

	headerBytes = len(payloadMagic) + lenFieldBytes

	bitsPerByte = 8

	// payloadChannels is the number of channels visited per pixel (R, G,
	// B). The alpha channel is reserved and never carries payload bits.
	payloadChannels = 3
)

const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Version returns the library version string.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

// Capacity returns the total number of payload bits the image can carry:
// one bit per R, G and B channel of every pixel. The framed payload
// (header plus message) must fit within this budget.
func Capacity(img image.Image) int64 {
	b := img.Bounds()
	return int64(b.Dx()) * int64(b.Dy()) * payloadChannels
}

// MaxMessageLen returns the largest message byte length that fits in the
// image once framing overhead is accounted for.
func MaxMessageLen(img image.Image) int {
	n := Capacity(img)/bitsPerByte - int64(headerBytes)
	if n < 0 {
		return 0
	}
	return int(n)
}

// bitOffset maps payload bit k to its byte offset within a canonical
// NRGBA pixel array: pixel k/3 in row-major order, channel k%3. This is
// the single traversal-order contract shared by Encode and Decode.
func bitOffset(k int64) int64 {
	return (k/payloadChannels)*4 + k%payloadChannels
}
