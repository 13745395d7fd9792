// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// IniFlags is the decoded ini entry flag byte.
type IniFlags uint8

const (
	IniCreateKeyIfDoesntExist IniFlags = 1 << iota
	IniUninstallDeleteEntry
	IniUninstallDeleteEntireSection
	IniUninstallDeleteSectionIfEmpty
	IniHasValue
)

// defaultIniFile is assumed when an ini entry stores no target file.
const defaultIniFile = `{windows}\WIN.INI`

// IniEntry is one ini file modification.
type IniEntry struct {
	File           string              `json:"file" yaml:"file"`
	Section        string              `json:"section,omitempty" yaml:"section,omitempty"`
	Key            string              `json:"key,omitempty" yaml:"key,omitempty"`
	Value          string              `json:"value,omitempty" yaml:"value,omitempty"`
	Condition      Condition           `json:"condition" yaml:"condition"`
	WindowsVersion WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	Flags          IniFlags            `json:"flags" yaml:"flags"`
}

func readIniEntry(fr *fieldReader) (IniEntry, error) {
	var e IniEntry
	var err error

	if e.File, err = fr.readString(); err != nil {
		return e, err
	}
	if e.File == "" {
		e.File = defaultIniFile
	}

	for _, dst := range []*string{&e.Section, &e.Key, &e.Value} {
		if *dst, err = fr.readString(); err != nil {
			return e, err
		}
	}

	if e.Condition, err = fr.readCondition(); err != nil {
		return e, err
	}

	if e.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return e, err
	}

	flags, err := fr.readU8()
	if err != nil {
		return e, err
	}
	e.Flags = IniFlags(flags)

	return e, nil
}
