// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// Permission is one stored ACL blob, referenced from directory, file and
// registry entries by index.
type Permission struct {
	// Data is the raw security descriptor as stored.
	Data string `json:"data,omitempty" yaml:"data,omitempty"`
}

func readPermission(fr *fieldReader) (Permission, error) {
	data, err := fr.readString()
	if err != nil {
		return Permission{}, err
	}

	return Permission{Data: data}, nil
}
