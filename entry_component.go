// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// ComponentFlags is the decoded component entry flag byte.
type ComponentFlags uint8

const (
	ComponentFixed ComponentFlags = 1 << iota
	ComponentRestart
	ComponentDisableNoUninstallWarning
	ComponentExclusive
	ComponentDontInheritCheck
)

// Component is one installable component.
type Component struct {
	Name                   string              `json:"name,omitempty" yaml:"name,omitempty"`
	Description            string              `json:"description,omitempty" yaml:"description,omitempty"`
	Types                  string              `json:"types,omitempty" yaml:"types,omitempty"`
	Languages              string              `json:"languages,omitempty" yaml:"languages,omitempty"`
	Check                  string              `json:"check,omitempty" yaml:"check,omitempty"`
	ExtraDiskSpaceRequired uint64              `json:"extraDiskSpaceRequired" yaml:"extraDiskSpaceRequired"`
	Level                  uint32              `json:"level" yaml:"level"`
	Used                   bool                `json:"used" yaml:"used"`
	WindowsVersion         WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	Flags                  ComponentFlags      `json:"flags" yaml:"flags"`
	Size                   uint64              `json:"size" yaml:"size"`
}

func readComponent(fr *fieldReader) (Component, error) {
	var c Component
	var err error

	for _, dst := range []*string{&c.Name, &c.Description, &c.Types} {
		if *dst, err = fr.readString(); err != nil {
			return c, err
		}
	}

	if fr.caps.CondLanguages {
		if c.Languages, err = fr.readString(); err != nil {
			return c, err
		}
	}
	if fr.caps.CondCheck {
		if c.Check, err = fr.readString(); err != nil {
			return c, err
		}
	}

	if fr.caps.Sizes64 {
		if c.ExtraDiskSpaceRequired, err = fr.readU64(); err != nil {
			return c, err
		}
	} else {
		space, err := fr.readU32()
		if err != nil {
			return c, err
		}
		c.ExtraDiskSpaceRequired = uint64(space)
	}

	if fr.caps.EntryHasLevel {
		if c.Level, err = fr.readU32(); err != nil {
			return c, err
		}
	}

	if fr.caps.EntryHasUsed {
		used, err := fr.readU8()
		if err != nil {
			return c, err
		}
		c.Used = used != 0
	} else {
		c.Used = true
	}

	if c.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return c, err
	}

	flags, err := fr.readU8()
	if err != nil {
		return c, err
	}
	c.Flags = ComponentFlags(flags)

	if fr.caps.Sizes64 {
		if c.Size, err = fr.readU64(); err != nil {
			return c, err
		}
	} else if fr.caps.ComponentHasSize {
		size, err := fr.readU32()
		if err != nil {
			return c, err
		}
		c.Size = uint64(size)
	}

	return c, nil
}
