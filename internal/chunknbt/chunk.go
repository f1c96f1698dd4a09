package chunknbt

import (
	"bytes"
	"fmt"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Decode parses a chunk's NBT bytes (the full NBT file form: big-endian,
// uncompressed -- the envelope codec already removed the gzip/zlib/raw
// wrapping) into the generic compound tree this package operates on.
func Decode(data []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := nbt.UnmarshalEncoding(data, &m, nbt.BigEndian); err != nil {
		return nil, fmt.Errorf("chunknbt: decode: %w", err)
	}
	return m, nil
}

// Encode re-serializes a chunk's NBT compound back to its big-endian
// NBT-file byte form.
func Encode(root map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := nbt.NewEncoderWithEncoding(&buf, nbt.BigEndian)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("chunknbt: encode: %w", err)
	}
	return buf.Bytes(), nil
}
