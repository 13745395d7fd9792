// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// SetupType classifies a stored setup type entry.
type SetupType uint8

const (
	SetupTypeUser SetupType = iota
	SetupTypeDefaultFull
	SetupTypeDefaultCompact
	SetupTypeDefaultCustom
)

// TypeEntry is one selectable setup type.
type TypeEntry struct {
	Name           string              `json:"name" yaml:"name"`
	Description    string              `json:"description,omitempty" yaml:"description,omitempty"`
	Languages      string              `json:"languages,omitempty" yaml:"languages,omitempty"`
	Check          string              `json:"check,omitempty" yaml:"check,omitempty"`
	WindowsVersion WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	IsCustom       bool                `json:"isCustom,omitempty" yaml:"isCustom,omitempty"`
	Setup          SetupType           `json:"setup" yaml:"setup"`
	Size           uint64              `json:"size" yaml:"size"`
}

func readTypeEntry(fr *fieldReader) (TypeEntry, error) {
	var t TypeEntry
	var err error

	if t.Name, err = fr.readString(); err != nil {
		return t, err
	}
	if t.Description, err = fr.readString(); err != nil {
		return t, err
	}

	if fr.caps.CondLanguages {
		if t.Languages, err = fr.readString(); err != nil {
			return t, err
		}
	}
	if fr.caps.CondCheck {
		if t.Check, err = fr.readString(); err != nil {
			return t, err
		}
	}

	if t.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return t, err
	}

	flags, err := fr.readU8()
	if err != nil {
		return t, err
	}
	t.IsCustom = flags&1 != 0

	if fr.caps.TypeHasSetupKind {
		kind, err := fr.readEnumByte("setup type", uint8(SetupTypeDefaultCustom))
		if err != nil {
			return t, err
		}
		t.Setup = SetupType(kind)
	}

	if fr.caps.Sizes64 {
		if t.Size, err = fr.readU64(); err != nil {
			return t, err
		}
	} else {
		size, err := fr.readU32()
		if err != nil {
			return t, err
		}
		t.Size = uint64(size)
	}

	return t, nil
}
