// Package region implements the Anvil region-file container: the
// sector-addressed location and timestamp tables at the front of a
// `.mca` file, and the chunk-blob payload area that follows them.
//
// See https://minecraft.gamepedia.com/Region_file_format. Rebuild
// performs a full sector reshuffle rather than an in-place patch, so it
// can substitute updated chunk blobs of a different size than the
// originals.
package region

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

const (
	// SectorSize is the addressing granularity of a region file.
	SectorSize = 4096
	// NumSlots is the number of chunk slots in a region (32x32).
	NumSlots = 1024
	// HeaderSize is the combined size of the location and timestamp tables.
	HeaderSize = 2 * SectorSize
	// maxSectorCount is the largest sector count a location entry can hold
	// (an 8-bit field).
	maxSectorCount = 255
)

// Pointer is a chunk's location within a region file.
type Pointer struct {
	Index       int
	SectorOff   int
	SectorCount int
}

// Present reports whether the pointer refers to a generated chunk. Both
// fields must be nonzero; an all-zero entry means the chunk slot is
// ungenerated.
func (p Pointer) Present() bool {
	return p.SectorOff != 0 && p.SectorCount != 0
}

// ParseLocations reads the 1024-entry location table from the start of a
// region file's bytes. Each entry is a 3-byte big-endian sector offset
// followed by a 1-byte sector count.
func ParseLocations(data []byte) ([NumSlots]Pointer, error) {
	var out [NumSlots]Pointer
	if len(data) < SectorSize {
		return out, fmt.Errorf("region: header too short: %d bytes", len(data))
	}
	for i := 0; i < NumSlots; i++ {
		entry := data[i*4 : i*4+4]
		off := int(entry[0])<<16 | int(entry[1])<<8 | int(entry[2])
		count := int(entry[3])
		out[i] = Pointer{Index: i, SectorOff: off, SectorCount: count}
	}
	return out, nil
}

// ParseTimestamps reads the 1024-entry timestamp table (the second 4 KiB
// sector) from a region file's bytes.
func ParseTimestamps(data []byte) ([NumSlots]uint32, error) {
	var out [NumSlots]uint32
	if len(data) < HeaderSize {
		return out, fmt.Errorf("region: header too short: %d bytes", len(data))
	}
	for i := 0; i < NumSlots; i++ {
		base := SectorSize + i*4
		out[i] = binary.BigEndian.Uint32(data[base : base+4])
	}
	return out, nil
}

// IterPresent returns the present pointers from locs, in ascending index
// order.
func IterPresent(locs [NumSlots]Pointer) []Pointer {
	present := make([]Pointer, 0, NumSlots)
	for _, p := range locs {
		if p.Present() {
			present = append(present, p)
		}
	}
	return present
}

// ExtractBlob reads the chunk blob located at the given sector offset and
// count within data. It validates that the declared bounds (including the
// declared payload length) fall within data, and returns false if any
// check fails -- the caller should then treat the slot as unreadable
// rather than erroring the whole region.
func ExtractBlob(data []byte, sectorOff, sectorCount int) ([]byte, bool) {
	if sectorOff < 2 || sectorCount <= 0 {
		return nil, false
	}
	start := sectorOff * SectorSize
	end := start + sectorCount*SectorSize
	if start+5 > len(data) || end > len(data) {
		return nil, false
	}
	length := int(binary.BigEndian.Uint32(data[start : start+4]))
	if length <= 0 {
		return nil, false
	}
	blobEnd := start + 4 + length
	if blobEnd > len(data) {
		return nil, false
	}
	return data[start:blobEnd], true
}

// UpdatedBlob is a chunk blob substituted into a rebuild in place of the
// chunk's original bytes.
type UpdatedBlob struct {
	Blob    []byte
	Changed bool
}

// Rebuild produces a compacted region file: every present slot in
// original is re-emitted in ascending index order, starting at sector 2,
// using the blob from updatedBlobs when present for that index and the
// original blob otherwise. A present slot whose original blob cannot be
// extracted (corrupt) is dropped (recorded absent in the output tables)
// rather than failing the whole rebuild.
//
// Unchanged chunks keep their original timestamp; chunks present in
// updatedBlobs with Changed set get now's wall-clock timestamp.
func Rebuild(original []byte, updatedBlobs map[int]UpdatedBlob) ([]byte, error) {
	locs, err := ParseLocations(original)
	if err != nil {
		return nil, err
	}
	ts, err := ParseTimestamps(original)
	if err != nil {
		return nil, err
	}

	now := uint32(time.Now().Unix())

	out := make([]byte, HeaderSize, len(original))

	currentSector := 2
	newLocs := [NumSlots]Pointer{}
	newTS := [NumSlots]uint32{}

	for i := 0; i < NumSlots; i++ {
		if !locs[i].Present() {
			continue
		}

		var blob []byte
		var stamp uint32
		if u, ok := updatedBlobs[i]; ok {
			blob = u.Blob
			if u.Changed {
				stamp = now
			} else {
				stamp = ts[i]
			}
		} else {
			b, ok := ExtractBlob(original, locs[i].SectorOff, locs[i].SectorCount)
			if !ok {
				// Corrupt slot: drop it from the output rather than fail the
				// whole region.
				continue
			}
			blob = b
			stamp = ts[i]
		}

		sectorsNeeded := int(math.Ceil(float64(len(blob)) / SectorSize))
		if sectorsNeeded < 1 {
			sectorsNeeded = 1
		}
		if sectorsNeeded > maxSectorCount {
			return nil, fmt.Errorf("region: chunk %d too large for region format (%d sectors): %w", i, sectorsNeeded, ErrChunkTooLarge)
		}

		newLocs[i] = Pointer{Index: i, SectorOff: currentSector, SectorCount: sectorsNeeded}
		newTS[i] = stamp

		out = append(out, blob...)
		if pad := sectorsNeeded*SectorSize - len(blob); pad > 0 {
			out = append(out, make([]byte, pad)...)
		}
		currentSector += sectorsNeeded
	}

	for i := 0; i < NumSlots; i++ {
		base := i * 4
		off := newLocs[i].SectorOff
		count := newLocs[i].SectorCount
		out[base] = byte(off >> 16)
		out[base+1] = byte(off >> 8)
		out[base+2] = byte(off)
		out[base+3] = byte(count)
	}
	for i := 0; i < NumSlots; i++ {
		base := SectorSize + i*4
		binary.BigEndian.PutUint32(out[base:base+4], newTS[i])
	}

	return out, nil
}

// ErrChunkTooLarge indicates a rebuilt chunk blob would require more than
// 255 sectors, which cannot be represented in the location table.
var ErrChunkTooLarge = fmt.Errorf("chunk too large")
