package optimize

import (
	"bytes"
	"encoding/binary"
)

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xFF, 0xD8}
	riffMagic = []byte("RIFF")
)

// pngMetaChunks are the ancillary PNG chunk types that carry metadata
// rather than pixel data.
var pngMetaChunks = map[string]bool{
	"eXIf": true,
	"iCCP": true,
	"tEXt": true,
	"zTXt": true,
	"iTXt": true,
}

// MetadataSegments scans an encoded PNG, JPEG or WebP image and returns the
// names of any metadata segments it carries: EXIF blocks, ICC profiles, XMP
// packets and PNG text chunks. A stripped image yields nil.
func MetadataSegments(data []byte) []string {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return pngMetadata(data)
	case bytes.HasPrefix(data, jpegMagic):
		return jpegMetadata(data)
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && string(data[8:12]) == "WEBP":
		return webpMetadata(data)
	}
	return nil
}

// pngMetadata walks the chunk stream: 4-byte big-endian length, 4-byte
// type, data, 4-byte CRC.
func pngMetadata(data []byte) []string {
	var found []string
	off := len(pngMagic)
	for off+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		ctype := string(data[off+4 : off+8])
		if pngMetaChunks[ctype] {
			found = append(found, ctype)
		}
		if ctype == "IEND" {
			break
		}
		off += 8 + length + 4
	}
	return found
}

// jpegMetadata walks the marker stream up to SOS. Only APP1 (Exif, XMP) and
// APP2 (ICC) payloads count as metadata.
func jpegMetadata(data []byte) []string {
	var found []string
	off := 2
	for off+4 <= len(data) {
		if data[off] != 0xFF {
			break
		}
		marker := data[off+1]
		// Standalone markers carry no length field.
		if marker == 0xD8 || marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			off += 2
			continue
		}
		if marker == 0xDA || marker == 0xD9 {
			break // entropy-coded data or EOI
		}
		length := int(binary.BigEndian.Uint16(data[off+2 : off+4]))
		if length < 2 || off+2+length > len(data) {
			break
		}
		payload := data[off+4 : off+2+length]
		switch {
		case marker == 0xE1 && bytes.HasPrefix(payload, []byte("Exif\x00\x00")):
			found = append(found, "Exif")
		case marker == 0xE1 && bytes.HasPrefix(payload, []byte("http://ns.adobe.com/xap/")):
			found = append(found, "XMP")
		case marker == 0xE2 && bytes.HasPrefix(payload, []byte("ICC_PROFILE\x00")):
			found = append(found, "ICC_PROFILE")
		}
		off += 2 + length
	}
	return found
}

// webpMetadata walks the RIFF chunks after the 12-byte container header:
// 4-byte FourCC, 4-byte little-endian size, data padded to 2 bytes.
func webpMetadata(data []byte) []string {
	var found []string
	off := 12
	for off+8 <= len(data) {
		fourcc := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		switch fourcc {
		case "EXIF", "ICCP", "XMP ":
			found = append(found, fourcc)
		}
		off += 8 + size + (size & 1)
	}
	return found
}
