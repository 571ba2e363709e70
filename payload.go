package steg

import (
	"bytes"
	"encoding/binary"

	"github.com/zedseven/binmani"
)

// framePayload lays out the wire form of a message: magic, big-endian
// length, then the message bytes.
func framePayload(message string) []byte {
	buf := make([]byte, 0, headerBytes+len(message))
	buf = append(buf, payloadMagic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(message)))
	return append(buf, message...)
}

// parseHeader validates the magic and returns the declared message byte
// length. ok is false when the magic is absent.
func parseHeader(hdr []byte) (msgLen uint32, ok bool) {
	if !bytes.HasPrefix(hdr, []byte(payloadMagic)) {
		return 0, false
	}
	return binary.BigEndian.Uint32(hdr[len(payloadMagic):]), true
}

// extractBytes rebuilds n payload bytes from the LSBs of a canonical
// NRGBA pixel array, starting at payload bit bitOff. Bits are collected
// most-significant first, mirroring framePayload's bit order.
func extractBytes(pix []uint8, bitOff int64, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		var v uint16
		for j := uint8(0); j < bitsPerByte; j++ {
			off := bitOffset(bitOff + int64(i)*bitsPerByte + int64(j))
			bit := binmani.ReadFrom(uint16(pix[off]), 0, 1)
			v = binmani.WriteTo(v, bitsPerByte-j-1, 1, bit)
		}
		out[i] = byte(v)
	}
	return out
}
