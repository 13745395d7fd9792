package inno

import (
	"errors"
	"testing"
)

func rawSignature(s string) []byte {
	raw := make([]byte, versionSignatureLen)
	copy(raw, s)

	return raw
}

func TestLookupVersion(t *testing.T) {
	tests := []struct {
		signature string
		want      KnownVersion
	}{
		{"Inno Setup Setup Data (1.3.21)", KnownVersion{Version: ver(1, 3, 21)}},
		{"Inno Setup Setup Data (5.5.7) (u)", KnownVersion{Version: ver(5, 5, 7), Unicode: true}},
		{"Inno Setup Setup Data (5.5.7) (U)", KnownVersion{Version: ver(5, 5, 7), Unicode: true}},
		{"Inno Setup Setup Data (6.3.0)", KnownVersion{Version: ver(6, 3, 0), Unicode: true}},
		{"Inno Setup Setup Data (6.5.2)", KnownVersion{Version: ver(6, 5, 2), Unicode: true}},
		{"My Inno Setup Extensions Setup Data (3.0.6.1)", KnownVersion{Version: Version{3, 0, 6, 1}, ISX: true}},
	}

	for _, tc := range tests {
		got, err := lookupVersion(rawSignature(tc.signature))
		if err != nil {
			t.Errorf("lookupVersion(%q): %v", tc.signature, err)
			continue
		}
		if got != tc.want {
			t.Errorf("lookupVersion(%q) = %+v, want %+v", tc.signature, got, tc.want)
		}
	}
}

func TestLookupVersion_NulPadding(t *testing.T) {
	raw := rawSignature("Inno Setup Setup Data (4.0.0a)")
	raw[40] = 'x' // garbage after the NUL terminator is ignored

	got, err := lookupVersion(raw)
	if err != nil {
		t.Fatalf("lookupVersion: %v", err)
	}
	if got.Version != ver(4, 0, 0) {
		t.Fatalf("version %v, want 4.0.0", got.Version)
	}
}

func TestLookupVersion_Unknown(t *testing.T) {
	if _, err := lookupVersion(rawSignature("Inno Setup Setup Data (99.0.0)")); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestLookupVersion_WrongLength(t *testing.T) {
	if _, err := lookupVersion([]byte("short")); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("got %v, want ErrTruncatedInput", err)
	}
}
