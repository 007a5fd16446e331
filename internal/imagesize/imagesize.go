// Package imagesize reads pixel dimensions from the first bytes of an image.
// Formats are recognised by magic bytes only; nothing is decoded beyond the
// header fields that carry width and height.
package imagesize

import (
	"bytes"
	"fmt"

	"github.com/rojanmagar2001/siteicons/internal/domain"
)

type Info struct {
	Type   domain.ImageType
	Width  int
	Height int
}

type format struct {
	typ domain.ImageType
	// magic reports a full signature match, or that data is a strict prefix
	// of the signature.
	magic func(data []byte) (match, partial bool)
	size  func(data []byte) (w, h int, err error)
}

var formats = []format{
	{domain.ImageTypePNG, prefixMagic([]byte("\x89PNG\r\n\x1a\n")), pngSize},
	{domain.ImageTypeGIF, anyPrefixMagic([]byte("GIF87a"), []byte("GIF89a")), gifSize},
	{domain.ImageTypeJPEG, prefixMagic([]byte{0xFF, 0xD8, 0xFF}), jpegSize},
	{domain.ImageTypeWEBP, webpMagic, webpSize},
	{domain.ImageTypeBMP, prefixMagic([]byte("BM")), bmpSize},
	{domain.ImageTypeICO, prefixMagic([]byte{0x00, 0x00, 0x01, 0x00}), icoSize},
	{domain.ImageTypeCUR, prefixMagic([]byte{0x00, 0x00, 0x02, 0x00}), icoSize},
}

// Sniff detects the container format of data and extracts its dimensions.
// It fails with domain.ErrUnsupportedFormat when no signature matches and
// domain.ErrTruncatedData when data ends before the needed header fields.
func Sniff(data []byte) (Info, error) {
	partial := len(data) == 0
	for _, f := range formats {
		match, p := f.magic(data)
		if p {
			partial = true
		}
		if !match {
			continue
		}
		w, h, err := f.size(data)
		if err != nil {
			return Info{}, fmt.Errorf("%s: %w", f.typ, err)
		}
		if w <= 0 || h <= 0 {
			return Info{}, fmt.Errorf("%w: %s: zero dimension %dx%d", domain.ErrUnsupportedFormat, f.typ, w, h)
		}
		return Info{Type: f.typ, Width: w, Height: h}, nil
	}

	if partial {
		return Info{}, fmt.Errorf("%w: %d bytes do not complete any signature", domain.ErrTruncatedData, len(data))
	}
	return Info{}, domain.ErrUnsupportedFormat
}

func prefixMagic(sig []byte) func([]byte) (bool, bool) {
	return func(data []byte) (bool, bool) {
		if len(data) < len(sig) {
			return false, bytes.HasPrefix(sig, data)
		}
		return bytes.HasPrefix(data, sig), false
	}
}

func anyPrefixMagic(sigs ...[]byte) func([]byte) (bool, bool) {
	return func(data []byte) (bool, bool) {
		partial := false
		for _, sig := range sigs {
			match, p := prefixMagic(sig)(data)
			if match {
				return true, false
			}
			partial = partial || p
		}
		return false, partial
	}
}

// webpMagic is "RIFF" <4 byte size> "WEBP".
func webpMagic(data []byte) (bool, bool) {
	riff, riffPartial := prefixMagic([]byte("RIFF"))(data)
	if riffPartial {
		return false, true
	}
	if !riff {
		return false, false
	}
	if len(data) < 12 {
		return false, bytes.HasPrefix([]byte("WEBP"), data[min(len(data), 8):])
	}
	return bytes.Equal(data[8:12], []byte("WEBP")), false
}

func need(data []byte, n int) error {
	if len(data) < n {
		return fmt.Errorf("%w: need %d bytes, have %d", domain.ErrTruncatedData, n, len(data))
	}
	return nil
}
