// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// IconFlags is the decoded icon entry flag set.
type IconFlags uint8

const (
	IconNeverUninstall IconFlags = 1 << iota
	IconCreateOnlyIfFileExists
	IconUseAppPaths
	IconFolderShortcut
	IconExcludeFromShowInNewInstall
	IconPreventPinning
	IconHasToastActivatorCLSID
	IconRunMinimized
)

// CloseSetting controls the console window of a shortcut target.
type CloseSetting uint8

const (
	CloseNoSetting CloseSetting = iota
	CloseOnExit
	DontCloseOnExit
)

// Icon is one shortcut created during install.
type Icon struct {
	Name               string              `json:"name,omitempty" yaml:"name,omitempty"`
	Filename           string              `json:"filename,omitempty" yaml:"filename,omitempty"`
	Parameters         string              `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	WorkingDirectory   string              `json:"workingDirectory,omitempty" yaml:"workingDirectory,omitempty"`
	IconFile           string              `json:"iconFile,omitempty" yaml:"iconFile,omitempty"`
	Comment            string              `json:"comment,omitempty" yaml:"comment,omitempty"`
	Condition          Condition           `json:"condition" yaml:"condition"`
	AppUserModelID     string              `json:"appUserModelId,omitempty" yaml:"appUserModelId,omitempty"`
	ToastActivatorGUID []byte              `json:"-" yaml:"-"`
	WindowsVersion     WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	IconIndex          int32               `json:"iconIndex" yaml:"iconIndex"`
	ShowCommand        int32               `json:"showCommand" yaml:"showCommand"`
	CloseOnExit        CloseSetting        `json:"closeOnExit" yaml:"closeOnExit"`
	Hotkey             uint16              `json:"hotkey,omitempty" yaml:"hotkey,omitempty"`
	Flags              IconFlags           `json:"flags" yaml:"flags"`
}

// iconFlagGates is the icon bitfield in on-disk bit order.
var iconFlagGates = []flagGate{
	{flag: uint64(IconNeverUninstall)},
	{flag: uint64(IconRunMinimized), until: ver(1, 3, 26)},
	{flag: uint64(IconCreateOnlyIfFileExists)},
	{flag: uint64(IconUseAppPaths)},
	{flag: uint64(IconFolderShortcut), from: ver(5, 0, 3), until: ver(6, 3, 0)},
	{flag: uint64(IconExcludeFromShowInNewInstall), from: ver(5, 4, 2)},
	{flag: uint64(IconPreventPinning), from: ver(5, 5, 0)},
	{flag: uint64(IconHasToastActivatorCLSID), from: ver(6, 1, 0)},
}

func readIcon(fr *fieldReader) (Icon, error) {
	var ic Icon
	var err error

	for _, dst := range []*string{
		&ic.Name, &ic.Filename, &ic.Parameters, &ic.WorkingDirectory, &ic.IconFile, &ic.Comment,
	} {
		if *dst, err = fr.readString(); err != nil {
			return ic, err
		}
	}

	if ic.Condition, err = fr.readCondition(); err != nil {
		return ic, err
	}

	if fr.caps.IconHasAppUserModelID {
		if ic.AppUserModelID, err = fr.readString(); err != nil {
			return ic, err
		}
	}

	if fr.caps.IconHasToastCLSID {
		if ic.ToastActivatorGUID, err = fr.readN(16); err != nil {
			return ic, err
		}
	}

	if ic.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return ic, err
	}

	if ic.IconIndex, err = fr.readI32(); err != nil {
		return ic, err
	}

	if fr.caps.IconHasShowCommand {
		if ic.ShowCommand, err = fr.readI32(); err != nil {
			return ic, err
		}
	} else {
		ic.ShowCommand = 1
	}

	closeOnExit, err := fr.readEnumByte("close on exit", uint8(DontCloseOnExit))
	if err != nil {
		return ic, err
	}
	ic.CloseOnExit = CloseSetting(closeOnExit)

	if fr.caps.IconHasHotkey {
		if ic.Hotkey, err = fr.readU16(); err != nil {
			return ic, err
		}
	}

	flags, err := fr.readFlagSet(iconFlagGates)
	if err != nil {
		return ic, err
	}
	ic.Flags = IconFlags(flags)

	return ic, nil
}
