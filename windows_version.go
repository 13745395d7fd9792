// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// WinVersion is one Windows version triple as stored in entry conditions.
type WinVersion struct {
	Major uint8  `json:"major" yaml:"major"`
	Minor uint8  `json:"minor" yaml:"minor"`
	Build uint16 `json:"build,omitempty" yaml:"build,omitempty"`
}

// ServicePack is the minimum NT service pack of a version bound.
type ServicePack struct {
	Major uint8 `json:"major" yaml:"major"`
	Minor uint8 `json:"minor" yaml:"minor"`
}

// WindowsVersion is one bound of a supported-Windows range: the 9x line and
// the NT line are versioned independently.
type WindowsVersion struct {
	Win         WinVersion  `json:"win" yaml:"win"`
	NT          WinVersion  `json:"nt" yaml:"nt"`
	ServicePack ServicePack `json:"servicePack" yaml:"servicePack"`
}

// WindowsVersionRange is the inclusive begin and exclusive end of the
// Windows versions an item applies to.
type WindowsVersionRange struct {
	Begin WindowsVersion `json:"begin" yaml:"begin"`
	End   WindowsVersion `json:"end" yaml:"end"`
}

// On disk each version is build u16, minor u8, major u8 in that order.
func (fr *fieldReader) readWinVersion() (WinVersion, error) {
	var v WinVersion

	build, err := fr.readU16()
	if err != nil {
		return v, err
	}
	v.Build = build

	if v.Minor, err = fr.readU8(); err != nil {
		return v, err
	}
	if v.Major, err = fr.readU8(); err != nil {
		return v, err
	}

	return v, nil
}

func (fr *fieldReader) readWindowsVersion() (WindowsVersion, error) {
	var wv WindowsVersion
	var err error

	if wv.Win, err = fr.readWinVersion(); err != nil {
		return wv, err
	}
	if wv.NT, err = fr.readWinVersion(); err != nil {
		return wv, err
	}

	if wv.ServicePack.Minor, err = fr.readU8(); err != nil {
		return wv, err
	}
	if wv.ServicePack.Major, err = fr.readU8(); err != nil {
		return wv, err
	}

	return wv, nil
}

func (fr *fieldReader) readWindowsVersionRange() (WindowsVersionRange, error) {
	var r WindowsVersionRange
	var err error

	if r.Begin, err = fr.readWindowsVersion(); err != nil {
		return r, err
	}
	if r.End, err = fr.readWindowsVersion(); err != nil {
		return r, err
	}

	return r, nil
}
