package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/queryset/internal/conv"
)

// Compression selects how encoded payloads are compressed.
type Compression uint8

const (
	// CompressionNone stores payloads as-is.
	CompressionNone Compression = iota
	// CompressionZSTD compresses with zstd (better ratio).
	CompressionZSTD
	// CompressionLZ4 compresses with LZ4 block compression (faster).
	CompressionLZ4
)

// ErrCorruptBlock is returned when a compressed payload is truncated or
// its header disagrees with its contents.
var ErrCorruptBlock = errors.New("codec: corrupt compressed block")

// String returns the stable name of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// CompressionByName returns a compression by its stable name. The empty
// name selects CompressionNone.
func CompressionByName(name string) (Compression, bool) {
	switch name {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZSTD, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return CompressionNone, false
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Block layout for compressed payloads:
//
//	[uncompressed size uint32][compressed size uint32][data...]
//
// A compressed size of 0 means the data is stored uncompressed.
const blockHeaderSize = 8

// Compress compresses data. CompressionNone returns data unchanged.
func (c Compression) Compress(data []byte) ([]byte, error) {
	if c == CompressionNone {
		return data, nil
	}
	size, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("codec: block too large: %w", err)
	}

	var compressed []byte
	switch c {
	case CompressionZSTD:
		compressed, err = compressZSTD(data)
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	default:
		return nil, fmt.Errorf("codec: unknown %s", c)
	}
	if err != nil {
		return nil, err
	}

	// Incompressible payloads are stored raw behind the header.
	stored := uint32(len(compressed))
	if len(compressed) == 0 || len(compressed) >= len(data) {
		compressed = data
		stored = 0
	}

	out := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], size)
	binary.LittleEndian.PutUint32(out[4:], stored)
	copy(out[blockHeaderSize:], compressed)
	return out, nil
}

// Decompress reverses Compress.
func (c Compression) Decompress(data []byte) ([]byte, error) {
	if c == CompressionNone {
		return data, nil
	}
	if len(data) < blockHeaderSize {
		return nil, ErrCorruptBlock
	}

	size := binary.LittleEndian.Uint32(data[0:])
	stored := binary.LittleEndian.Uint32(data[4:])
	body := data[blockHeaderSize:]

	if stored == 0 {
		if uint32(len(body)) != size {
			return nil, ErrCorruptBlock
		}
		return body, nil
	}
	if uint32(len(body)) != stored {
		return nil, ErrCorruptBlock
	}

	switch c {
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		out, err := dec.DecodeAll(body, make([]byte, 0, size))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		if uint32(len(out)) != size {
			return nil, ErrCorruptBlock
		}
		return out, nil
	case CompressionLZ4:
		n, err := conv.Uint32ToInt(size)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		out := make([]byte, n)
		got, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		if got != n {
			return nil, ErrCorruptBlock
		}
		return out, nil
	default:
		return nil, fmt.Errorf("codec: unknown %s", c)
	}
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func compressLZ4(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, err
	}
	// n == 0 means incompressible.
	return dst[:n], nil
}
