// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import "fmt"

// FileFlags is the decoded file entry flag set.
type FileFlags uint64

const (
	FileConfirmOverwrite FileFlags = 1 << iota
	FileNeverUninstall
	FileRestartReplace
	FileDeleteAfterInstall
	FileRegisterServer
	FileRegisterTypeLib
	FileSharedFile
	FileIsReadmeFile
	FileCompareTimeStamp
	FileFontIsNotTrueType
	FileSkipIfSourceDoesntExist
	FileOverwriteReadOnly
	FileOverwriteSameVersion
	FileCustomDestName
	FileOnlyIfDestFileExists
	FileNoRegError
	FileUninsRestartDelete
	FileOnlyIfDoesntExist
	FileIgnoreVersion
	FilePromptIfOlder
	FileDontCopy
	FileUninsRemoveReadOnly
	FileRecurseSubDirsExternal
	FileReplaceSameVersionIfContentsDiffer
	FileDontVerifyChecksum
	FileUninsNoSharedFilePrompt
	FileCreateAllSubDirs
	File32Bit
	File64Bit
	FileExternalSizePreset
	FileSetNTFSCompression
	FileUnsetNTFSCompression
	FileGacInstall
)

// FileKind classifies the file entry target.
type FileKind uint8

const (
	FileUserFile FileKind = iota
	FileUninstallExe
	FileRegSvrExe
)

// legacy copy mode byte, folded into flags since 3.0.5
type fileCopyMode uint8

const (
	copyModeNormal fileCopyMode = iota
	copyModeIfDoesntExist
	copyModeAlwaysOverwrite
	copyModeAlwaysSkipIfSameOrOlder
)

// fileFlagGates is the file bitfield in on-disk bit order.
var fileFlagGates = []flagGate{
	{flag: uint64(FileConfirmOverwrite)},
	{flag: uint64(FileNeverUninstall)},
	{flag: uint64(FileRestartReplace)},
	{flag: uint64(FileDeleteAfterInstall)},
	{flag: uint64(FileRegisterServer)},
	{flag: uint64(FileRegisterTypeLib)},
	{flag: uint64(FileSharedFile)},
	{flag: uint64(FileIsReadmeFile), cond: func(v KnownVersion) bool {
		return v.before(ver(2, 0, 0)) && !v.ISX
	}},
	{flag: uint64(FileCompareTimeStamp)},
	{flag: uint64(FileFontIsNotTrueType)},
	{flag: uint64(FileSkipIfSourceDoesntExist), from: ver(1, 2, 5)},
	{flag: uint64(FileOverwriteReadOnly), from: ver(1, 2, 6)},
	{flag: uint64(FileOverwriteSameVersion), from: ver(1, 3, 21)},
	{flag: uint64(FileCustomDestName), from: ver(1, 3, 21)},
	{flag: uint64(FileOnlyIfDestFileExists), from: ver(1, 3, 25)},
	{flag: uint64(FileNoRegError), from: ver(2, 0, 5)},
	{flag: uint64(FileUninsRestartDelete), from: ver(3, 0, 1)},
	{flag: uint64(FileOnlyIfDoesntExist), from: ver(3, 0, 5)},
	{flag: uint64(FileIgnoreVersion), from: ver(3, 0, 5)},
	{flag: uint64(FilePromptIfOlder), from: ver(3, 0, 5)},
	{flag: uint64(FileDontCopy), from: ver(4, 0, 0), isxFrom: ver(3, 0, 6)},
	{flag: uint64(FileUninsRemoveReadOnly), from: ver(4, 0, 5)},
	{flag: uint64(FileRecurseSubDirsExternal), from: ver(4, 1, 8)},
	{flag: uint64(FileReplaceSameVersionIfContentsDiffer), from: ver(4, 2, 1)},
	{flag: uint64(FileDontVerifyChecksum), from: ver(4, 2, 5)},
	{flag: uint64(FileUninsNoSharedFilePrompt), from: ver(5, 0, 3)},
	{flag: uint64(FileCreateAllSubDirs), from: ver(5, 1, 0)},
	{flag: uint64(File32Bit), from: ver(5, 1, 2)},
	{flag: uint64(File64Bit), from: ver(5, 1, 2)},
	{flag: uint64(FileExternalSizePreset), from: ver(5, 2, 0)},
	{flag: uint64(FileSetNTFSCompression), from: ver(5, 2, 0)},
	{flag: uint64(FileUnsetNTFSCompression), from: ver(5, 2, 0)},
	{flag: uint64(FileGacInstall), from: ver(5, 2, 5)},
}

// File is one file installed by the setup. Location points into the data
// entry list for internal files; external files have no location.
type File struct {
	Source             string              `json:"source,omitempty" yaml:"source,omitempty"`
	Destination        string              `json:"destination,omitempty" yaml:"destination,omitempty"`
	InstallFontName    string              `json:"installFontName,omitempty" yaml:"installFontName,omitempty"`
	StrongAssemblyName string              `json:"strongAssemblyName,omitempty" yaml:"strongAssemblyName,omitempty"`
	Condition          Condition           `json:"condition" yaml:"condition"`
	WindowsVersion     WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	// Location indexes the data entry list; the all-ones value marks an
	// external file with no stored data.
	Location     uint32 `json:"location" yaml:"location"`
	Attributes   uint32 `json:"attributes" yaml:"attributes"`
	ExternalSize uint64 `json:"externalSize" yaml:"externalSize"`
	// Permission indexes the permission list; -1 means none.
	Permission int16     `json:"permission" yaml:"permission"`
	Flags      FileFlags `json:"flags" yaml:"flags"`
	Kind       FileKind  `json:"kind" yaml:"kind"`
}

// noLocation marks file entries without stored data.
const noLocation = ^uint32(0)

// HasLocation reports whether the entry has stored data to extract.
func (f *File) HasLocation() bool {
	return f.Location != noLocation
}

func readFile(fr *fieldReader) (File, error) {
	f := File{Permission: -1}
	var err error

	for _, dst := range []*string{&f.Source, &f.Destination, &f.InstallFontName} {
		if *dst, err = fr.readString(); err != nil {
			return f, err
		}
	}

	if fr.caps.FileHasAssemblyName {
		if f.StrongAssemblyName, err = fr.readString(); err != nil {
			return f, err
		}
	}

	if f.Condition, err = fr.readCondition(); err != nil {
		return f, err
	}

	if f.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return f, err
	}

	if f.Location, err = fr.readU32(); err != nil {
		return f, err
	}
	if f.Attributes, err = fr.readU32(); err != nil {
		return f, err
	}

	if fr.caps.Sizes64 {
		if f.ExternalSize, err = fr.readU64(); err != nil {
			return f, err
		}
	} else {
		size, err := fr.readU32()
		if err != nil {
			return f, err
		}
		f.ExternalSize = uint64(size)
	}

	if fr.caps.FileHasCopyMode {
		mode, err := fr.readU8()
		if err != nil {
			return f, err
		}
		switch fileCopyMode(mode) {
		case copyModeNormal:
			f.Flags |= FilePromptIfOlder
		case copyModeIfDoesntExist:
			f.Flags |= FileOnlyIfDoesntExist | FilePromptIfOlder
		case copyModeAlwaysOverwrite:
			f.Flags |= FileIgnoreVersion | FilePromptIfOlder
		case copyModeAlwaysSkipIfSameOrOlder:
		default:
			fr.warnf("file copy mode byte %#02x out of range", mode)
		}
	}

	if fr.caps.EntryHasPermIndex {
		if f.Permission, err = fr.readI16(); err != nil {
			return f, err
		}
	}

	flags, err := fr.readFlagSet(fileFlagGates)
	if err != nil {
		return f, err
	}
	f.Flags |= FileFlags(flags)

	kind, err := fr.readEnumByte("file kind", uint8(FileRegSvrExe))
	if err != nil {
		return f, err
	}
	f.Kind = FileKind(kind)

	return f, nil
}

// validateFileLocations checks that every internal file points at an
// existing data entry.
func validateFileLocations(files []File, dataEntries int) error {
	for i := range files {
		f := &files[i]
		if f.HasLocation() && int64(f.Location) >= int64(dataEntries) {
			return fmt.Errorf("%w: file %d references data entry %d of %d",
				ErrDanglingReference, i, f.Location, dataEntries)
		}
	}

	return nil
}
