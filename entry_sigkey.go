// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// SigKey is an ECDSA public key trusted for .issig file verification.
type SigKey struct {
	PublicX   string `json:"publicX,omitempty" yaml:"publicX,omitempty"`
	PublicY   string `json:"publicY,omitempty" yaml:"publicY,omitempty"`
	RuntimeID string `json:"runtimeId,omitempty" yaml:"runtimeId,omitempty"`
}

func readSigKey(fr *fieldReader) (SigKey, error) {
	var k SigKey
	var err error

	for _, dst := range []*string{&k.PublicX, &k.PublicY, &k.RuntimeID} {
		if *dst, err = fr.readString(); err != nil {
			return k, err
		}
	}

	return k, nil
}
