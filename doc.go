// Package steg implements least-significant-bit (LSB) image steganography:
// hiding a short UTF-8 message in the low-order bits of a lossless raster
// image and recovering it again.
//
// The embedding convention is fixed and shared by the encoder and decoder:
//
//	payload  = "IMSG\x00" | uint32 big-endian message length | message bytes
//	bit order: most-significant bit first within each payload byte
//	traversal: row-major pixel order; channels R, G, B within a pixel
//	the alpha channel is never written or read
//	exactly one payload bit replaces the LSB of each visited channel
//
// Two pure operations form the core: Encode produces a new image whose
// channel values differ from the cover's by at most 1, and Decode walks the
// same traversal to rebuild the message. EncodeMessageToImage and
// DecodeMessageFromImage wrap them with file loading and lossless output.
//
// LSB steganography hides presence, it does not encrypt, and it offers no
// payload-presence signal: decoding an image that was never encoded returns
// an empty string, not an error. Saving a stego image through any lossy
// codec (JPEG, WebP) silently destroys the payload; outputs are therefore
// always written in a lossless format (PNG, BMP, or TIFF).
package steg
