package steg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIdenticalImages(t *testing.T) {
	cover := newCover(16, 16)

	report, err := Analyze(cover, cover)
	require.NoError(t, err)

	assert.Zero(t, report.MSE)
	assert.True(t, math.IsInf(report.PSNR, 1))
	assert.Zero(t, report.ChangedChannels)
	assert.Zero(t, report.MaxDelta)
	assert.EqualValues(t, 16*16*4, report.TotalChannels)
}

func TestAnalyzeStegoPair(t *testing.T) {
	cover := newCover(32, 32)
	stego, err := Encode(cover, "count my flips")
	require.NoError(t, err)

	report, err := Analyze(cover, stego)
	require.NoError(t, err)

	assert.Equal(t, 1, report.MaxDelta)
	assert.Positive(t, report.ChangedChannels)
	framedBits := int64(headerBytes+len("count my flips")) * bitsPerByte
	assert.LessOrEqual(t, report.ChangedChannels, framedBits)
	assert.False(t, math.IsInf(report.PSNR, 1))
}

func TestAnalyzeDimensionMismatch(t *testing.T) {
	_, err := Analyze(newCover(10, 10), newCover(10, 11))
	assert.Error(t, err)
}
