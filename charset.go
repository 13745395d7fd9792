// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// defaultCodepage is assumed for code-page builds until a language entry
// declares another one. Matches the compiler default on western installs.
const defaultCodepage uint16 = 1252

// codepageUTF16 marks unicode builds; strings are UTF-16LE, not code pages.
const codepageUTF16 uint16 = 1200

// singleByteCodepages maps Windows code page numbers to their tables. These
// decode strictly byte by byte, so holes in a table are detected exactly.
var singleByteCodepages = map[uint16]*charmap.Charmap{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// multiByteCodepages covers the east-asian pages installers in those locales
// were built with.
var multiByteCodepages = map[uint16]encoding.Encoding{
	932: japanese.ShiftJIS,
	936: simplifiedchinese.GBK,
	949: korean.EUCKR,
	950: traditionalchinese.Big5,
}

// decodeCodepage converts raw code-page bytes to a string. An undefined byte
// or sequence fails with ErrEncoding instead of being replaced, so corrupted
// text never masquerades as decoded output.
func decodeCodepage(raw []byte, codepage uint16) (string, error) {
	if cm, ok := singleByteCodepages[codepage]; ok {
		var sb strings.Builder
		sb.Grow(len(raw))

		for i, b := range raw {
			r := cm.DecodeByte(b)
			if r == utf8.RuneError {
				return "", fmt.Errorf("%w: code page %d has no mapping for byte %#02x at offset %d",
					ErrEncoding, codepage, b, i)
			}
			sb.WriteRune(r)
		}

		return sb.String(), nil
	}

	if enc, ok := multiByteCodepages[codepage]; ok {
		out, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("%w: code page %d: %v", ErrEncoding, codepage, err)
		}
		// The decoder substitutes U+FFFD for undecodable sequences; none of
		// these pages can produce it from valid input.
		if strings.ContainsRune(string(out), utf8.RuneError) {
			return "", fmt.Errorf("%w: code page %d: undecodable sequence", ErrEncoding, codepage)
		}

		return string(out), nil
	}

	return "", fmt.Errorf("%w: unsupported code page %d", ErrEncoding, codepage)
}

// decodeUTF16 converts raw little-endian UTF-16 bytes to a string. Odd
// lengths and unpaired surrogates fail with ErrEncoding.
func decodeUTF16(raw []byte) (string, error) {
	if len(raw)%2 != 0 {
		return "", fmt.Errorf("%w: utf-16 value has odd length %d", ErrEncoding, len(raw))
	}

	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}

	var sb strings.Builder
	sb.Grow(len(units))

	for i := 0; i < len(units); i++ {
		u := units[i]

		switch {
		case u >= 0xd800 && u < 0xdc00:
			if i+1 >= len(units) || units[i+1] < 0xdc00 || units[i+1] >= 0xe000 {
				return "", fmt.Errorf("%w: unpaired high surrogate %#04x at unit %d", ErrEncoding, u, i)
			}
			sb.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++

		case u >= 0xdc00 && u < 0xe000:
			return "", fmt.Errorf("%w: unpaired low surrogate %#04x at unit %d", ErrEncoding, u, i)

		default:
			sb.WriteRune(rune(u))
		}
	}

	return sb.String(), nil
}
