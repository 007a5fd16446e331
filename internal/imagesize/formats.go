package imagesize

import (
	"encoding/binary"
	"fmt"

	"github.com/rojanmagar2001/siteicons/internal/domain"
)

// pngSize reads the IHDR chunk, which must directly follow the signature.
func pngSize(data []byte) (int, int, error) {
	if err := need(data, 24); err != nil {
		return 0, 0, err
	}
	if string(data[12:16]) != "IHDR" {
		return 0, 0, fmt.Errorf("%w: first chunk is %q, want IHDR", domain.ErrUnsupportedFormat, data[12:16])
	}
	return int(binary.BigEndian.Uint32(data[16:20])), int(binary.BigEndian.Uint32(data[20:24])), nil
}

// gifSize reads the logical screen descriptor.
func gifSize(data []byte) (int, int, error) {
	if err := need(data, 10); err != nil {
		return 0, 0, err
	}
	return int(binary.LittleEndian.Uint16(data[6:8])), int(binary.LittleEndian.Uint16(data[8:10])), nil
}

// bmpSize handles the 12-byte OS/2 core header and the Windows info headers.
// Negative heights mark top-down bitmaps.
func bmpSize(data []byte) (int, int, error) {
	if err := need(data, 18); err != nil {
		return 0, 0, err
	}
	hdr := binary.LittleEndian.Uint32(data[14:18])
	if hdr == 12 {
		if err := need(data, 22); err != nil {
			return 0, 0, err
		}
		return int(binary.LittleEndian.Uint16(data[18:20])), int(binary.LittleEndian.Uint16(data[20:22])), nil
	}
	if hdr < 40 {
		return 0, 0, fmt.Errorf("%w: dib header size %d", domain.ErrUnsupportedFormat, hdr)
	}
	if err := need(data, 26); err != nil {
		return 0, 0, err
	}
	w := int32(binary.LittleEndian.Uint32(data[18:22]))
	h := int32(binary.LittleEndian.Uint32(data[22:26]))
	if h < 0 {
		h = -h
	}
	return int(w), int(h), nil
}

// icoSize reports the largest image in the directory. Only entries present in
// data are considered; a width or height byte of 0 means 256.
func icoSize(data []byte) (int, int, error) {
	const (
		headerLen = 6
		entryLen  = 16
	)
	if err := need(data, headerLen); err != nil {
		return 0, 0, err
	}
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if count == 0 {
		return 0, 0, fmt.Errorf("%w: empty icon directory", domain.ErrUnsupportedFormat)
	}
	if err := need(data, headerLen+entryLen); err != nil {
		return 0, 0, err
	}

	bestW, bestH := 0, 0
	for i := 0; i < count; i++ {
		off := headerLen + i*entryLen
		if off+entryLen > len(data) {
			break
		}
		w, h := int(data[off]), int(data[off+1])
		if w == 0 {
			w = 256
		}
		if h == 0 {
			h = 256
		}
		if w*h > bestW*bestH {
			bestW, bestH = w, h
		}
	}
	return bestW, bestH, nil
}

// jpegSize walks marker segments until a start-of-frame marker.
func jpegSize(data []byte) (int, int, error) {
	i := 2
	for {
		if err := need(data, i+2); err != nil {
			return 0, 0, err
		}
		if data[i] != 0xFF {
			return 0, 0, fmt.Errorf("%w: expected marker at offset %d", domain.ErrUnsupportedFormat, i)
		}
		marker := data[i+1]
		switch {
		case marker == 0xFF:
			// fill byte
			i++
			continue
		case marker == 0x01 || marker == 0xD8 || (marker >= 0xD0 && marker <= 0xD7):
			i += 2
			continue
		case marker == 0xD9 || marker == 0xDA:
			return 0, 0, fmt.Errorf("%w: no frame header before scan data", domain.ErrUnsupportedFormat)
		case isSOF(marker):
			if err := need(data, i+9); err != nil {
				return 0, 0, err
			}
			h := int(binary.BigEndian.Uint16(data[i+5 : i+7]))
			w := int(binary.BigEndian.Uint16(data[i+7 : i+9]))
			return w, h, nil
		}

		if err := need(data, i+4); err != nil {
			return 0, 0, err
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 {
			return 0, 0, fmt.Errorf("%w: bad segment length %d", domain.ErrUnsupportedFormat, segLen)
		}
		i += 2 + segLen
	}
}

// isSOF matches SOF0..SOF15 minus DHT, JPG and DAC which share the range.
func isSOF(m byte) bool {
	return m >= 0xC0 && m <= 0xCF && m != 0xC4 && m != 0xC8 && m != 0xCC
}

func webpSize(data []byte) (int, int, error) {
	if err := need(data, 16); err != nil {
		return 0, 0, err
	}
	switch string(data[12:16]) {
	case "VP8 ":
		if err := need(data, 30); err != nil {
			return 0, 0, err
		}
		if data[23] != 0x9D || data[24] != 0x01 || data[25] != 0x2A {
			return 0, 0, fmt.Errorf("%w: bad VP8 start code", domain.ErrUnsupportedFormat)
		}
		w := int(binary.LittleEndian.Uint16(data[26:28]) & 0x3FFF)
		h := int(binary.LittleEndian.Uint16(data[28:30]) & 0x3FFF)
		return w, h, nil
	case "VP8L":
		if err := need(data, 25); err != nil {
			return 0, 0, err
		}
		if data[20] != 0x2F {
			return 0, 0, fmt.Errorf("%w: bad VP8L signature", domain.ErrUnsupportedFormat)
		}
		bits := binary.LittleEndian.Uint32(data[21:25])
		return int(bits&0x3FFF) + 1, int((bits>>14)&0x3FFF) + 1, nil
	case "VP8X":
		if err := need(data, 30); err != nil {
			return 0, 0, err
		}
		return int(uint24(data[24:27])) + 1, int(uint24(data[27:30])) + 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: webp chunk %q", domain.ErrUnsupportedFormat, data[12:16])
	}
}

func uint24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}
