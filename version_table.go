// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"bytes"
	"fmt"
)

// versionSignatureLen is the fixed size of the version signature block at the
// start of the setup data region. The readable string inside is NUL padded.
const versionSignatureLen = 64

// versionRow binds one exact signature string to its resolved version.
type versionRow struct {
	signature string
	version   KnownVersion
}

// knownVersions is the exhaustive signature table. Lookup is exact string
// match: near-miss strings come from tampered or unknown toolchains and both
// must be rejected rather than guessed at. Releases from 6.3.0 on are
// unicode-only and carry no "(u)" marker.
var knownVersions = []versionRow{
	{"Inno Setup Setup Data (1.3.21)", KnownVersion{Version: ver(1, 3, 21)}},
	{"Inno Setup Setup Data (1.3.24)", KnownVersion{Version: ver(1, 3, 24)}},
	{"Inno Setup Setup Data (1.3.25)", KnownVersion{Version: ver(1, 3, 25)}},
	{"Inno Setup Setup Data (2.0.0)", KnownVersion{Version: ver(2, 0, 0)}},
	{"Inno Setup Setup Data (2.0.1)", KnownVersion{Version: ver(2, 0, 1)}},
	{"Inno Setup Setup Data (2.0.2)", KnownVersion{Version: ver(2, 0, 2)}},
	{"Inno Setup Setup Data (2.0.5)", KnownVersion{Version: ver(2, 0, 5)}},
	{"Inno Setup Setup Data (2.0.6a)", KnownVersion{Version: ver(2, 0, 6)}},
	{"Inno Setup Setup Data (2.0.7)", KnownVersion{Version: ver(2, 0, 7)}},
	{"Inno Setup Setup Data (2.0.8)", KnownVersion{Version: ver(2, 0, 8)}},
	{"Inno Setup Setup Data (2.0.11)", KnownVersion{Version: ver(2, 0, 11)}},
	{"Inno Setup Setup Data (2.0.17)", KnownVersion{Version: ver(2, 0, 17)}},
	{"Inno Setup Setup Data (2.0.18)", KnownVersion{Version: ver(2, 0, 18)}},
	{"Inno Setup Setup Data (3.0.0a)", KnownVersion{Version: ver(3, 0, 0)}},
	{"Inno Setup Setup Data (3.0.1)", KnownVersion{Version: ver(3, 0, 1)}},
	{"Inno Setup Setup Data (3.0.3)", KnownVersion{Version: ver(3, 0, 3)}},
	{"Inno Setup Setup Data (3.0.4)", KnownVersion{Version: ver(3, 0, 4)}},
	{"Inno Setup Setup Data (3.0.5)", KnownVersion{Version: ver(3, 0, 5)}},
	{"My Inno Setup Extensions Setup Data (3.0.4)", KnownVersion{Version: ver(3, 0, 4), ISX: true}},
	{"My Inno Setup Extensions Setup Data (3.0.6.1)", KnownVersion{Version: Version{3, 0, 6, 1}, ISX: true}},
	{"Inno Setup Setup Data (4.0.0a)", KnownVersion{Version: ver(4, 0, 0)}},
	{"Inno Setup Setup Data (4.0.1)", KnownVersion{Version: ver(4, 0, 1)}},
	{"Inno Setup Setup Data (4.0.3)", KnownVersion{Version: ver(4, 0, 3)}},
	{"Inno Setup Setup Data (4.0.5)", KnownVersion{Version: ver(4, 0, 5)}},
	{"Inno Setup Setup Data (4.0.9)", KnownVersion{Version: ver(4, 0, 9)}},
	{"Inno Setup Setup Data (4.0.10)", KnownVersion{Version: ver(4, 0, 10)}},
	{"Inno Setup Setup Data (4.0.11)", KnownVersion{Version: ver(4, 0, 11)}},
	{"Inno Setup Setup Data (4.1.0)", KnownVersion{Version: ver(4, 1, 0)}},
	{"Inno Setup Setup Data (4.1.2)", KnownVersion{Version: ver(4, 1, 2)}},
	{"Inno Setup Setup Data (4.1.3)", KnownVersion{Version: ver(4, 1, 3)}},
	{"Inno Setup Setup Data (4.1.4)", KnownVersion{Version: ver(4, 1, 4)}},
	{"Inno Setup Setup Data (4.1.5)", KnownVersion{Version: ver(4, 1, 5)}},
	{"Inno Setup Setup Data (4.1.6)", KnownVersion{Version: ver(4, 1, 6)}},
	{"Inno Setup Setup Data (4.1.8)", KnownVersion{Version: ver(4, 1, 8)}},
	{"Inno Setup Setup Data (4.2.0)", KnownVersion{Version: ver(4, 2, 0)}},
	{"Inno Setup Setup Data (4.2.1)", KnownVersion{Version: ver(4, 2, 1)}},
	{"Inno Setup Setup Data (4.2.2)", KnownVersion{Version: ver(4, 2, 2)}},
	{"Inno Setup Setup Data (4.2.3)", KnownVersion{Version: ver(4, 2, 3)}},
	{"Inno Setup Setup Data (4.2.4)", KnownVersion{Version: ver(4, 2, 4)}},
	{"Inno Setup Setup Data (4.2.5)", KnownVersion{Version: ver(4, 2, 5)}},
	{"Inno Setup Setup Data (4.2.6)", KnownVersion{Version: ver(4, 2, 6)}},
	{"Inno Setup Setup Data (5.0.0)", KnownVersion{Version: ver(5, 0, 0)}},
	{"Inno Setup Setup Data (5.0.1)", KnownVersion{Version: ver(5, 0, 1)}},
	{"Inno Setup Setup Data (5.0.3)", KnownVersion{Version: ver(5, 0, 3)}},
	{"Inno Setup Setup Data (5.0.4)", KnownVersion{Version: ver(5, 0, 4)}},
	{"Inno Setup Setup Data (5.1.0)", KnownVersion{Version: ver(5, 1, 0)}},
	{"Inno Setup Setup Data (5.1.2)", KnownVersion{Version: ver(5, 1, 2)}},
	{"Inno Setup Setup Data (5.1.7)", KnownVersion{Version: ver(5, 1, 7)}},
	{"Inno Setup Setup Data (5.1.10)", KnownVersion{Version: ver(5, 1, 10)}},
	{"Inno Setup Setup Data (5.1.13)", KnownVersion{Version: ver(5, 1, 13)}},
	{"Inno Setup Setup Data (5.2.0)", KnownVersion{Version: ver(5, 2, 0)}},
	{"Inno Setup Setup Data (5.2.1)", KnownVersion{Version: ver(5, 2, 1)}},
	{"Inno Setup Setup Data (5.2.3)", KnownVersion{Version: ver(5, 2, 3)}},
	{"Inno Setup Setup Data (5.2.5)", KnownVersion{Version: ver(5, 2, 5)}},
	{"Inno Setup Setup Data (5.2.5) (u)", KnownVersion{Version: ver(5, 2, 5), Unicode: true}},
	{"Inno Setup Setup Data (5.3.0)", KnownVersion{Version: ver(5, 3, 0)}},
	{"Inno Setup Setup Data (5.3.0) (u)", KnownVersion{Version: ver(5, 3, 0), Unicode: true}},
	{"Inno Setup Setup Data (5.3.3)", KnownVersion{Version: ver(5, 3, 3)}},
	{"Inno Setup Setup Data (5.3.3) (u)", KnownVersion{Version: ver(5, 3, 3), Unicode: true}},
	{"Inno Setup Setup Data (5.3.5)", KnownVersion{Version: ver(5, 3, 5)}},
	{"Inno Setup Setup Data (5.3.5) (u)", KnownVersion{Version: ver(5, 3, 5), Unicode: true}},
	{"Inno Setup Setup Data (5.3.6)", KnownVersion{Version: ver(5, 3, 6)}},
	{"Inno Setup Setup Data (5.3.6) (u)", KnownVersion{Version: ver(5, 3, 6), Unicode: true}},
	{"Inno Setup Setup Data (5.3.7)", KnownVersion{Version: ver(5, 3, 7)}},
	{"Inno Setup Setup Data (5.3.7) (u)", KnownVersion{Version: ver(5, 3, 7), Unicode: true}},
	{"Inno Setup Setup Data (5.3.8)", KnownVersion{Version: ver(5, 3, 8)}},
	{"Inno Setup Setup Data (5.3.8) (u)", KnownVersion{Version: ver(5, 3, 8), Unicode: true}},
	{"Inno Setup Setup Data (5.3.9)", KnownVersion{Version: ver(5, 3, 9)}},
	{"Inno Setup Setup Data (5.3.9) (u)", KnownVersion{Version: ver(5, 3, 9), Unicode: true}},
	{"Inno Setup Setup Data (5.3.10)", KnownVersion{Version: ver(5, 3, 10)}},
	{"Inno Setup Setup Data (5.3.10) (u)", KnownVersion{Version: ver(5, 3, 10), Unicode: true}},
	{"Inno Setup Setup Data (5.4.2)", KnownVersion{Version: ver(5, 4, 2)}},
	{"Inno Setup Setup Data (5.4.2) (u)", KnownVersion{Version: ver(5, 4, 2), Unicode: true}},
	{"Inno Setup Setup Data (5.5.0)", KnownVersion{Version: ver(5, 5, 0)}},
	{"Inno Setup Setup Data (5.5.0) (u)", KnownVersion{Version: ver(5, 5, 0), Unicode: true}},
	{"Inno Setup Setup Data (5.5.6)", KnownVersion{Version: ver(5, 5, 6)}},
	{"Inno Setup Setup Data (5.5.6) (u)", KnownVersion{Version: ver(5, 5, 6), Unicode: true}},
	{"Inno Setup Setup Data (5.5.7)", KnownVersion{Version: ver(5, 5, 7)}},
	{"Inno Setup Setup Data (5.5.7) (u)", KnownVersion{Version: ver(5, 5, 7), Unicode: true}},
	// One 5.5.7 build in the wild capitalizes the unicode marker.
	{"Inno Setup Setup Data (5.5.7) (U)", KnownVersion{Version: ver(5, 5, 7), Unicode: true}},
	{"Inno Setup Setup Data (5.6.0)", KnownVersion{Version: ver(5, 6, 0)}},
	{"Inno Setup Setup Data (5.6.0) (u)", KnownVersion{Version: ver(5, 6, 0), Unicode: true}},
	{"Inno Setup Setup Data (5.6.2)", KnownVersion{Version: ver(5, 6, 2)}},
	{"Inno Setup Setup Data (5.6.2) (u)", KnownVersion{Version: ver(5, 6, 2), Unicode: true}},
	{"Inno Setup Setup Data (6.0.0) (u)", KnownVersion{Version: ver(6, 0, 0), Unicode: true}},
	{"Inno Setup Setup Data (6.1.0) (u)", KnownVersion{Version: ver(6, 1, 0), Unicode: true}},
	{"Inno Setup Setup Data (6.2.0) (u)", KnownVersion{Version: ver(6, 2, 0), Unicode: true}},
	{"Inno Setup Setup Data (6.3.0)", KnownVersion{Version: ver(6, 3, 0), Unicode: true}},
	{"Inno Setup Setup Data (6.4.0)", KnownVersion{Version: ver(6, 4, 0), Unicode: true}},
	{"Inno Setup Setup Data (6.4.0.1)", KnownVersion{Version: Version{6, 4, 0, 1}, Unicode: true}},
	{"Inno Setup Setup Data (6.4.2)", KnownVersion{Version: ver(6, 4, 2), Unicode: true}},
	{"Inno Setup Setup Data (6.4.3)", KnownVersion{Version: ver(6, 4, 3), Unicode: true}},
	{"Inno Setup Setup Data (6.5.0)", KnownVersion{Version: ver(6, 5, 0), Unicode: true}},
	{"Inno Setup Setup Data (6.5.2)", KnownVersion{Version: ver(6, 5, 2), Unicode: true}},
}

// lookupVersion resolves a raw 64-byte signature block to a known version.
// The block is truncated at the first NUL before matching.
func lookupVersion(raw []byte) (KnownVersion, error) {
	if len(raw) != versionSignatureLen {
		return KnownVersion{}, fmt.Errorf("%w: version signature is %d bytes, want %d",
			ErrTruncatedInput, len(raw), versionSignatureLen)
	}

	sig := raw
	if i := bytes.IndexByte(sig, 0); i >= 0 {
		sig = sig[:i]
	}

	for _, row := range knownVersions {
		if string(sig) == row.signature {
			return row.version, nil
		}
	}

	return KnownVersion{}, fmt.Errorf("%w: signature %q", ErrUnsupportedVersion, printable(sig))
}

// printable maps non-graphic signature bytes to '.' for error messages.
func printable(sig []byte) string {
	out := make([]byte, len(sig))
	for i, b := range sig {
		if b < 0x20 || b > 0x7e {
			b = '.'
		}
		out[i] = b
	}

	return string(out)
}
