// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// RegistryFlags is the decoded registry entry flag set.
type RegistryFlags uint16

const (
	RegCreateValueIfDoesntExist RegistryFlags = 1 << iota
	RegUninstallDeleteValue
	RegUninstallClearValue
	RegUninstallDeleteEntireKey
	RegUninstallDeleteEntireKeyIfEmpty
	RegPreserveStringType
	RegDeleteKey
	RegDeleteValue
	RegNoError
	RegDontCreateKey
	Reg32Bit
	Reg64Bit
)

// RegistryValueType is the stored registry value type.
type RegistryValueType uint8

const (
	RegTypeNone RegistryValueType = iota
	RegTypeString
	RegTypeExpandString
	RegTypeDWord
	RegTypeBinary
	RegTypeMultiString
	RegTypeQWord
)

// registryFlagGates is the registry bitfield in on-disk bit order.
var registryFlagGates = []flagGate{
	{flag: uint64(RegCreateValueIfDoesntExist)},
	{flag: uint64(RegUninstallDeleteValue)},
	{flag: uint64(RegUninstallClearValue)},
	{flag: uint64(RegUninstallDeleteEntireKey)},
	{flag: uint64(RegUninstallDeleteEntireKeyIfEmpty)},
	{flag: uint64(RegPreserveStringType), from: ver(1, 2, 6)},
	{flag: uint64(RegDeleteKey), from: ver(1, 3, 9)},
	{flag: uint64(RegDeleteValue), from: ver(1, 3, 9)},
	{flag: uint64(RegNoError), from: ver(1, 3, 12)},
	{flag: uint64(RegDontCreateKey), from: ver(1, 3, 16)},
	{flag: uint64(Reg32Bit), from: ver(5, 1, 0)},
	{flag: uint64(Reg64Bit), from: ver(5, 1, 0)},
}

// RegistryEntry is one registry modification. The root is stored with its
// high bit set the way the Windows HKEY constants are.
type RegistryEntry struct {
	Key            string              `json:"key,omitempty" yaml:"key,omitempty"`
	Name           string              `json:"name,omitempty" yaml:"name,omitempty"`
	Value          string              `json:"value,omitempty" yaml:"value,omitempty"`
	Condition      Condition           `json:"condition" yaml:"condition"`
	Permissions    string              `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	WindowsVersion WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	Root           uint32              `json:"root" yaml:"root"`
	// Permission indexes the permission list; -1 means none.
	Permission int16             `json:"permission" yaml:"permission"`
	Type       RegistryValueType `json:"type" yaml:"type"`
	Flags      RegistryFlags     `json:"flags" yaml:"flags"`
}

func readRegistryEntry(fr *fieldReader) (RegistryEntry, error) {
	e := RegistryEntry{Permission: -1}
	var err error

	for _, dst := range []*string{&e.Key, &e.Name, &e.Value} {
		if *dst, err = fr.readString(); err != nil {
			return e, err
		}
	}

	if e.Condition, err = fr.readCondition(); err != nil {
		return e, err
	}

	if fr.caps.EntryHasPermString {
		if e.Permissions, err = fr.readString(); err != nil {
			return e, err
		}
	}

	if e.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return e, err
	}

	root, err := fr.readU32()
	if err != nil {
		return e, err
	}
	e.Root = root | 0x8000_0000

	if fr.caps.EntryHasPermIndex {
		if e.Permission, err = fr.readI16(); err != nil {
			return e, err
		}
	}

	valueType, err := fr.readEnumByte("registry value type", uint8(RegTypeQWord))
	if err != nil {
		return e, err
	}
	e.Type = RegistryValueType(valueType)

	flags, err := fr.readFlagSet(registryFlagGates)
	if err != nil {
		return e, err
	}
	e.Flags = RegistryFlags(flags)

	return e, nil
}
