package steg

import (
	"errors"
	"fmt"
)

// ErrEmptyMessage is returned by Encode when given an empty message.
var ErrEmptyMessage = errors.New("message must not be empty")

// CapacityError is returned when the framed payload does not fit within
// the cover image's embeddable bits.
type CapacityError struct {
	Required  int64 // framed payload length in bits
	Available int64 // image capacity in bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message needs %d bits but the image can hold %d", e.Required, e.Available)
}

// UnsupportedFormatError is returned when the image's colour model cannot
// be manipulated losslessly at the bit level.
type UnsupportedFormatError struct {
	Model string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("the %v colour model cannot carry an LSB payload losslessly", e.Model)
}

// TruncatedPayloadError is returned when a decoded header declares more
// message bytes than the image has room for.
type TruncatedPayloadError struct {
	Declared  uint32 // message bytes the header claims
	Available int64  // image capacity in bits
}

func (e *TruncatedPayloadError) Error() string {
	return fmt.Sprintf("payload declares %d message bytes but the image holds at most %d bits", e.Declared, e.Available)
}

// NoPayloadError is returned by DecodeMessageFromImage when the image
// yields no message. Note that a garbled or absent magic header is the
// only signal available; LSB steganography cannot distinguish "never
// encoded" from "payload destroyed".
type NoPayloadError struct {
	Path string
}

func (e *NoPayloadError) Error() string {
	return fmt.Sprintf("no hidden message found in %q", e.Path)
}
