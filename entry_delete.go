// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// DeleteTargetType says what a delete entry removes.
type DeleteTargetType uint8

const (
	DeleteFiles DeleteTargetType = iota
	DeleteFilesAndSubdirs
	DeleteDirIfEmpty
)

// DeleteEntry is one path scheduled for removal at install or uninstall.
type DeleteEntry struct {
	Name           string              `json:"name,omitempty" yaml:"name,omitempty"`
	Condition      Condition           `json:"condition" yaml:"condition"`
	WindowsVersion WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	TargetType     DeleteTargetType    `json:"targetType" yaml:"targetType"`
}

func readDeleteEntry(fr *fieldReader) (DeleteEntry, error) {
	var e DeleteEntry
	var err error

	if e.Name, err = fr.readString(); err != nil {
		return e, err
	}

	if e.Condition, err = fr.readCondition(); err != nil {
		return e, err
	}

	if e.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return e, err
	}

	target, err := fr.readEnumByte("delete target type", uint8(DeleteDirIfEmpty))
	if err != nil {
		return e, err
	}
	e.TargetType = DeleteTargetType(target)

	return e, nil
}
