package queryset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/queryset/record"
)

var (
	// ErrUnsupportedType is returned when a Go value has no record equivalent.
	ErrUnsupportedType = record.ErrUnsupportedType

	// ErrInvalidConfig is returned when a configuration document cannot be parsed.
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrDecode indicates that serialized records could not be read.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrDecode struct {
	Codec       string
	Compression string
	cause       error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode records (codec=%s, compression=%s): %v", e.Codec, e.Compression, e.cause)
}

func (e *ErrDecode) Unwrap() error { return e.cause }

// ErrEncode indicates that records could not be serialized or written.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrEncode struct {
	Codec       string
	Compression string
	cause       error
}

func (e *ErrEncode) Error() string {
	return fmt.Sprintf("encode records (codec=%s, compression=%s): %v", e.Codec, e.Compression, e.cause)
}

func (e *ErrEncode) Unwrap() error { return e.cause }
