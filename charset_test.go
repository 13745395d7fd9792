package inno

import (
	"errors"
	"testing"
)

func TestDecodeCodepage_Windows1252(t *testing.T) {
	// 0xe9 is U+00E9 in windows-1252.
	got, err := decodeCodepage([]byte{'c', 'a', 'f', 0xe9}, 1252)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "café" {
		t.Fatalf("got %q, want %q", got, "café")
	}
}

func TestDecodeCodepage_UndefinedByte(t *testing.T) {
	// 0x81 is a hole in windows-1252.
	if _, err := decodeCodepage([]byte{'a', 0x81}, 1252); !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
}

func TestDecodeCodepage_ShiftJIS(t *testing.T) {
	// 0x93 0xfa is U+65E5 in code page 932.
	got, err := decodeCodepage([]byte{0x93, 0xfa}, 932)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "日" {
		t.Fatalf("got %q, want %q", got, "日")
	}
}

func TestDecodeCodepage_ShiftJISInvalid(t *testing.T) {
	// A lead byte with no trail byte cannot decode.
	if _, err := decodeCodepage([]byte{0x93}, 932); !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
}

func TestDecodeCodepage_Unsupported(t *testing.T) {
	if _, err := decodeCodepage([]byte{'a'}, 10000); !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
}

func TestDecodeUTF16(t *testing.T) {
	// "A" U+00E9 U+1F600 little endian.
	raw := []byte{0x41, 0x00, 0xe9, 0x00, 0x3d, 0xd8, 0x00, 0xde}
	got, err := decodeUTF16(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "Aé\U0001f600" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeUTF16_OddLength(t *testing.T) {
	if _, err := decodeUTF16([]byte{0x41, 0x00, 0x42}); !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
}

func TestDecodeUTF16_LoneSurrogate(t *testing.T) {
	if _, err := decodeUTF16([]byte{0x3d, 0xd8}); !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
	if _, err := decodeUTF16([]byte{0x00, 0xdc}); !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
}
