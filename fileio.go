package steg

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Registered so lossy covers decode far enough to be rejected with a
	// meaningful UnsupportedFormatError instead of "unknown format".
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/softveil/steg/internal/util"
)

// Options tune the file-level operations.
type Options struct {
	Logger Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger attaches a structured logger to the operation.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func applyOptions(opts []Option) Options {
	o := Options{Logger: NopLogger{}}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// EncodeMessageToImage loads the cover image at coverPath, embeds message,
// and writes the result to outPath in a lossless format chosen by
// extension (.png, .bmp, .tif/.tiff). Any other extension is replaced
// with ".png". It returns the path actually written.
func EncodeMessageToImage(coverPath, message, outPath string, opts ...Option) (string, error) {
	o := applyOptions(opts)

	cover, err := loadImage(coverPath)
	if err != nil {
		return "", err
	}
	o.Logger.Debug("cover image loaded", Fields{
		"path":          coverPath,
		"capacity_bits": Capacity(cover),
		"max_message":   MaxMessageLen(cover),
	})

	stego, err := Encode(cover, message)
	if err != nil {
		return "", err
	}

	out := util.EnsureLossless(outPath)
	if out != outPath {
		o.Logger.Warn("output extension is not lossless, writing PNG instead", Fields{
			"requested": outPath,
			"writing":   out,
		})
	}

	if err := writeImage(stego, out); err != nil {
		return "", err
	}
	o.Logger.Info("stego image written", Fields{"path": out, "message_bytes": len(message)})
	return out, nil
}

// DecodeMessageFromImage loads the image at stegoPath and returns the
// embedded message. An image that yields no message surfaces a
// *NoPayloadError.
func DecodeMessageFromImage(stegoPath string, opts ...Option) (string, error) {
	o := applyOptions(opts)

	stego, err := loadImage(stegoPath)
	if err != nil {
		return "", err
	}

	msg, err := Decode(stego)
	if err != nil {
		return "", err
	}
	if msg == "" {
		return "", &NoPayloadError{Path: stegoPath}
	}
	o.Logger.Info("message recovered", Fields{"path": stegoPath, "message_bytes": len(msg)})
	return msg, nil
}

// AnalyzeImages loads a cover/stego pair from disk and compares them.
func AnalyzeImages(coverPath, stegoPath string) (*AnalysisReport, error) {
	cover, err := loadImage(coverPath)
	if err != nil {
		return nil, err
	}
	stego, err := loadImage(stegoPath)
	if err != nil {
		return nil, err
	}
	return Analyze(cover, stego)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return img, nil
}

func writeImage(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(f, img)
	}
	return err
}
