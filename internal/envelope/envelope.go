// Package envelope implements the per-chunk compression envelope: the
// 5-byte prefix (big-endian payload length plus a 1-byte compression
// tag) that wraps every chunk's NBT payload inside a region file, and
// the gzip/zlib/raw (de)compression it names.
//
// Decompress/Compress form a symmetric pair: Compress with the tag
// Decompress reported reproduces the same on-disk compression scheme.
package envelope

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression identifies the scheme used to compress a chunk's NBT
// payload.
type Compression byte

const (
	GZip         Compression = 1
	Zlib         Compression = 2
	Uncompressed Compression = 3
)

// Blob is the encoded form of a chunk: the 4-byte length field and
// 1-byte compression tag, followed by the compressed (or raw) payload.
// Its length is always exactly the declared L+4 bytes.
type Blob []byte

// Tag returns the compression tag byte from a blob, or 0 if the blob is
// too short to contain one.
func (b Blob) Tag() Compression {
	if len(b) < 5 {
		return 0
	}
	return Compression(b[4])
}

// Decompress extracts and decompresses the NBT payload from a chunk
// blob, returning the compression tag observed so the caller can
// preserve it on re-encode.
//
// If the declared length disagrees with the available payload bytes,
// the payload is truncated to the declared length when that is
// possible rather than treated as fatal; old or partially-written
// chunks carry trailing slack in the wild.
func Decompress(blob Blob) ([]byte, Compression, error) {
	if len(blob) < 5 {
		return nil, 0, fmt.Errorf("envelope: blob too short: %d bytes", len(blob))
	}
	length := int(blob[0])<<24 | int(blob[1])<<16 | int(blob[2])<<8 | int(blob[3])
	comp := Compression(blob[4])
	payload := blob[5:]
	if want := length - 1; want != len(payload) {
		if want < 0 || want > len(payload) {
			return nil, comp, fmt.Errorf("envelope: chunk length mismatch: declared %d, have %d", want, len(payload))
		}
		payload = payload[:want]
	}

	switch comp {
	case GZip:
		r, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, comp, fmt.Errorf("envelope: gzip: %w", err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, comp, fmt.Errorf("envelope: gzip: %w", err)
		}
		return data, comp, nil
	case Zlib:
		r, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, comp, fmt.Errorf("envelope: zlib: %w", err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, comp, fmt.Errorf("envelope: zlib: %w", err)
		}
		return data, comp, nil
	case Uncompressed:
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, comp, nil
	default:
		return nil, comp, fmt.Errorf("envelope: unknown compression tag: %d", comp)
	}
}

// Compress rebuilds a chunk blob from a decoded NBT payload, encoding it
// with the requested compression scheme. An unrecognized scheme falls
// back to zlib, reporting the substituted tag via the return value so
// the caller can record what was actually written.
func Compress(nbtBytes []byte, comp Compression) (Blob, Compression, error) {
	var buf bytes.Buffer
	switch comp {
	case GZip:
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(nbtBytes); err != nil {
			return nil, comp, fmt.Errorf("envelope: gzip: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, comp, fmt.Errorf("envelope: gzip: %w", err)
		}
	case Uncompressed:
		buf.Write(nbtBytes)
	default:
		comp = Zlib
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(nbtBytes); err != nil {
			return nil, comp, fmt.Errorf("envelope: zlib: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, comp, fmt.Errorf("envelope: zlib: %w", err)
		}
	}

	payload := buf.Bytes()
	length := len(payload) + 1
	out := make(Blob, 0, length+4)
	out = append(out, byte(length>>24), byte(length>>16), byte(length>>8), byte(length))
	out = append(out, byte(comp))
	out = append(out, payload...)
	return out, comp, nil
}
