package steg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramePayloadLayout(t *testing.T) {
	framed := framePayload("hi")

	require.Len(t, framed, headerBytes+2)
	assert.Equal(t, []byte("IMSG\x00"), framed[:5])
	assert.Equal(t, []byte{0, 0, 0, 2}, framed[5:9], "length field must be big-endian")
	assert.Equal(t, []byte("hi"), framed[9:])
}

func TestParseHeader(t *testing.T) {
	msgLen, ok := parseHeader(framePayload("abcde")[:headerBytes])
	require.True(t, ok)
	assert.EqualValues(t, 5, msgLen)

	_, ok = parseHeader([]byte("XMSG\x00\x00\x00\x00\x05"))
	assert.False(t, ok)

	_, ok = parseHeader(make([]byte, headerBytes))
	assert.False(t, ok)
}

func TestExtractBytesMirrorsEmbedding(t *testing.T) {
	cover := newCover(16, 16)
	payload := framePayload("mirror")
	embedRaw(cover, payload)

	got := extractBytes(cover.Pix, 0, len(payload))
	assert.Equal(t, payload, got)
}

func TestBitOffsetSkipsAlpha(t *testing.T) {
	// Payload bits fill R, G, B of consecutive pixels; offset 3, 7,
	// 11, ... (the alpha bytes) must never be produced.
	seen := map[int64]bool{}
	for k := int64(0); k < 24; k++ {
		off := bitOffset(k)
		assert.NotEqual(t, int64(3), off%4, "bit %d landed on an alpha byte", k)
		assert.False(t, seen[off], "bit %d reused byte offset %d", k, off)
		seen[off] = true
	}
}
