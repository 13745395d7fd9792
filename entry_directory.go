// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// DirectoryFlags is the decoded directory entry flag byte.
type DirectoryFlags uint8

const (
	DirNeverUninstall DirectoryFlags = 1 << iota
	DirDeleteAfterInstall
	DirAlwaysUninstall
	DirSetNTFSCompression
	DirUnsetNTFSCompression
)

// Directory is one directory created during install.
type Directory struct {
	Name           string              `json:"name,omitempty" yaml:"name,omitempty"`
	Condition      Condition           `json:"condition" yaml:"condition"`
	Permissions    string              `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Attributes     uint32              `json:"attributes" yaml:"attributes"`
	WindowsVersion WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	// Permission indexes the permission list; -1 means none.
	Permission int16          `json:"permission" yaml:"permission"`
	Flags      DirectoryFlags `json:"flags" yaml:"flags"`
}

func readDirectory(fr *fieldReader) (Directory, error) {
	d := Directory{Permission: -1}
	var err error

	if d.Name, err = fr.readString(); err != nil {
		return d, err
	}

	if d.Condition, err = fr.readCondition(); err != nil {
		return d, err
	}

	if fr.caps.EntryHasPermString {
		if d.Permissions, err = fr.readString(); err != nil {
			return d, err
		}
	}

	if fr.caps.DirHasAttributes {
		if d.Attributes, err = fr.readU32(); err != nil {
			return d, err
		}
	}

	if d.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return d, err
	}

	if fr.caps.EntryHasPermIndex {
		if d.Permission, err = fr.readI16(); err != nil {
			return d, err
		}
	}

	flags, err := fr.readU8()
	if err != nil {
		return d, err
	}
	d.Flags = DirectoryFlags(flags)

	return d, nil
}
