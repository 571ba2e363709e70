package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureLossless(t *testing.T) {
	cases := map[string]string{
		"out.png":          "out.png",
		"out.bmp":          "out.bmp",
		"out.tif":          "out.tif",
		"out.TIFF":         "out.TIFF",
		"out.jpg":          "out.png",
		"out.jpeg":         "out.png",
		"out.webp":         "out.png",
		"out":              "out.png",
		"dir.v2/out.jpg":   "dir.v2/out.png",
		"archive.tar.lzma": "archive.tar.png",
	}

	for in, want := range cases {
		assert.Equal(t, want, EnsureLossless(in), "input %q", in)
	}
}

func TestIsLossless(t *testing.T) {
	assert.True(t, IsLossless("a.png"))
	assert.True(t, IsLossless("a.BMP"))
	assert.False(t, IsLossless("a.jpg"))
	assert.False(t, IsLossless("a"))
}

func TestFixUnicode(t *testing.T) {
	// Decomposed e + combining acute must collapse to the precomposed form.
	assert.Equal(t, "é", FixUnicode("é"))
	assert.Equal(t, "plain ascii", FixUnicode("plain ascii"))
}
