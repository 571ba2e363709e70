package steg

import (
	"image"
	"unicode/utf8"
)

// Decode recovers the message embedded in stego by a compatible Encode.
// It is read-only and idempotent.
//
// An image that carries no payload (or whose payload was destroyed, e.g.
// by lossy recompression) yields ("", nil): the scheme has no built-in
// presence signal, so a missing magic header or non-UTF-8 message bytes
// are indistinguishable from an unused cover. *TruncatedPayloadError is
// returned only when a valid header declares more bytes than the image
// could ever hold.
func Decode(stego image.Image) (string, error) {
	img, err := normalize(stego)
	if err != nil {
		return "", err
	}

	avail := Capacity(stego)
	if avail < int64(headerBytes)*bitsPerByte {
		return "", nil
	}

	msgLen, ok := parseHeader(extractBytes(img.Pix, 0, headerBytes))
	if !ok {
		return "", nil
	}

	need := (int64(headerBytes) + int64(msgLen)) * bitsPerByte
	if need > avail {
		return "", &TruncatedPayloadError{Declared: msgLen, Available: avail}
	}

	raw := extractBytes(img.Pix, int64(headerBytes)*bitsPerByte, int(msgLen))
	if !utf8.Valid(raw) {
		return "", nil
	}
	return string(raw), nil
}
