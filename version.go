// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import "fmt"

// Version is a numeric Inno Setup release version.
type Version struct {
	Major    uint8 `json:"major" yaml:"major"`
	Minor    uint8 `json:"minor" yaml:"minor"`
	Patch    uint8 `json:"patch" yaml:"patch"`
	Revision uint8 `json:"revision,omitempty" yaml:"revision,omitempty"`
}

// ver is a shorthand constructor for table literals.
func ver(major, minor, patch uint8) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// pack builds a single comparable integer from the version components.
func (v Version) pack() uint32 {
	return uint32(v.Major)<<24 | uint32(v.Minor)<<16 | uint32(v.Patch)<<8 | uint32(v.Revision)
}

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool {
	return v.pack() >= other.pack()
}

// Before reports whether v < other.
func (v Version) Before(other Version) bool {
	return v.pack() < other.pack()
}

// InRange reports whether from <= v < until.
func (v Version) InRange(from, until Version) bool {
	return v.AtLeast(from) && v.Before(until)
}

// String formats the version as dotted components, omitting a zero revision.
func (v Version) String() string {
	if v.Revision == 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}

	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Revision)
}

// KnownVersion is one resolved row of the version table: the numeric release
// plus the variant facts every decoder needs.
type KnownVersion struct {
	// Version is the numeric toolchain release that produced the file.
	Version Version `json:"version" yaml:"version"`
	// Unicode reports whether string fields are UTF-16LE rather than code-page bytes.
	Unicode bool `json:"unicode,omitempty" yaml:"unicode,omitempty"`
	// ISX reports the "My Inno Setup Extensions" fork variant.
	ISX bool `json:"isx,omitempty" yaml:"isx,omitempty"`
}

// atLeast reports v.Version >= other.
func (v KnownVersion) atLeast(other Version) bool {
	return v.Version.AtLeast(other)
}

// before reports v.Version < other.
func (v KnownVersion) before(other Version) bool {
	return v.Version.Before(other)
}

// inRange reports from <= v.Version < until.
func (v KnownVersion) inRange(from, until Version) bool {
	return v.Version.InRange(from, until)
}

// isxAtLeast reports the ISX variant at or above the given release.
func (v KnownVersion) isxAtLeast(other Version) bool {
	return v.ISX && v.Version.AtLeast(other)
}

// isBlackbox reports the modified "BlackBox" unicode builds that insert one
// extra header byte.
func (v KnownVersion) isBlackbox() bool {
	if !v.Unicode {
		return false
	}

	switch v.Version {
	case ver(5, 3, 10), ver(5, 4, 2), ver(5, 5, 0):
		return true
	default:
		return false
	}
}

// passwordHashKind selects the stored password digest layout.
type passwordHashKind uint8

const (
	passwordHashCRC32 passwordHashKind = iota
	passwordHashMD5
	passwordHashSHA1
	passwordHashPBKDF2
	passwordHashNone
)

// Caps is the capability descriptor resolved once per parse. Every field
// decoder branches on these bits instead of re-deriving version logic; the
// whole on-disk schema knowledge for non-flag fields lives in capsFor.
//
// The oldest tabulated data version is 1.3.21, so gates that switched before
// that release are folded away here rather than carried as always-true bits.
type Caps struct {
	// String encoding.
	Unicode bool

	// Setup header field presence.
	HasSupportPhone            bool // >= 5.1.13
	HasUninstallIconName       bool // < 3.0.0
	LicenseEarly               bool // < 5.2.5 (license/info trio before user info)
	LicenseLate                bool // >= 5.2.5 (trio after expression fields)
	HasUserInfo                bool // >= 3.0.0
	HasDefaultSerial           bool // >= 4.0.0
	CompiledCodeEarly          bool // [4.0.0, 5.2.5) or ISX >= 1.3.24
	CompiledCodeLate           bool // >= 5.2.5
	HasReadmeContact           bool // >= 4.2.4
	HasCreateUninstallRegKey   bool // >= 5.3.8
	HasUninstallable           bool // >= 5.3.10
	HasCloseApplicationsFilter bool // >= 5.5.0
	HasSetupMutex              bool // >= 5.5.6
	HasChangesEnvAssoc         bool // >= 5.6.1
	HasArchExpressions         bool // >= 6.3.0
	HasCloseAppsFilterExcludes bool // >= 6.4.2
	HasSevenZipLibraryName     bool // >= 6.5.0
	HasUninstallerSignature    bool // [5.2.1, 5.3.10)
	HasLeadBytes               bool // >= 2.0.6 and not unicode

	// Entry list counts.
	HasLanguageCount       bool // >= 4.0.0 (stored count)
	LanguageCountOne       bool // [2.0.1, 4.0.0): implicit single language
	HasMessageCount        bool // >= 4.2.1
	HasPermissionCount     bool // >= 4.1.0
	HasTypeComponentCounts bool // >= 2.0.0 or ISX
	HasTaskCount           bool // >= 2.0.0 or ISX >= 1.3.17

	// Setup header trailing fields.
	HasBackColor            bool // < 6.4.0.1
	HasBackColor2           bool // < 6.4.0.1
	HasImageBackColor       bool // < 5.5.7
	HasSmallImageBackColor  bool // [2.0.0, 5.0.4) or ISX
	HasBackColorsLate       bool // >= 6.5.2: image colors follow the password block
	HasWizardStyle          bool // >= 6.0.0
	HasImageAlphaFormat     bool // >= 5.5.7
	PasswordHash            passwordHashKind
	PasswordSaltLen         int  // 0, 8 or 44
	EncryptionPrelude       bool // >= 6.5.0: key material precedes the header stream
	HasSigKeyCount          bool // >= 6.5.0
	Sizes64                 bool // >= 4.0.0: 64-bit sizes and per-disk slices
	HasInstallVerbosity     bool // [2.0.0, 5.0.0) or ISX >= 1.3.4
	ReadUninstallStyle      bool // [2.0.0, 5.0.0) or ISX >= 1.3.13
	ISXCodeLineOffset       bool // ISX [2.0.10, 3.0.0)
	AlwaysRestartAutoBool   bool // [3.0.0, 3.0.3)
	HasPrivilegesRequired   bool // >= 3.0.4 or ISX >= 3.0.3
	HasPrivilegesOverrides  bool // >= 5.7.0
	HasShowLanguageDialog   bool // >= 4.0.10
	HasCompressionByte      bool // >= 5.3.9
	HasArchBytes            bool // [5.1.0, 6.3.0)
	HasSignedUninstaller    bool // [5.2.1, 5.3.10)
	HasDisableDirPage       bool // >= 5.3.3
	UninstallDisplaySize64  bool // >= 5.5.0
	UninstallDisplaySize32  bool // [5.3.6, 5.5.0)
	BlackboxExtraByte       bool
	CompressionFromFlags    bool // < 4.1.5
	PrivilegesFromFlags     bool // < 3.0.4
	LanguageOptionsFromFlag bool // < 4.0.10
	DisableDirPageFromFlags bool // < 5.3.3

	// Applicability conditions.
	CondComponents  bool // >= 2.0.0 or ISX >= 1.3.8
	CondTasks       bool // >= 2.0.0 or ISX >= 1.3.17
	CondLanguages   bool // >= 4.0.1
	CondCheck       bool // >= 4.0.0 or ISX >= 1.3.24
	CondBeforeAfter bool // >= 4.1.0

	// Language entries.
	LangInternalName   bool // >= 4.0.0
	LangData           bool // >= 4.0.0
	LangLicenseInfo    bool // >= 4.0.1
	LangCodepageFromID bool // < 4.2.2
	LangCodepageField  bool // >= 4.2.2 and not unicode
	LangSkipCodepage   bool // unicode and < 5.3.0 (reserved dword)
	LangDialogStdHt    bool // < 4.1.0
	LangRightToLeft    bool // >= 5.2.3

	// Component / task / type entries.
	EntryHasLevel      bool // >= 4.0.0 or ISX >= 3.0.3
	EntryHasUsed       bool // >= 4.0.0 or ISX >= 3.0.4
	ComponentHasSize   bool // >= 2.0.0 or ISX >= 1.3.24
	TypeHasSetupKind   bool // >= 4.0.3
	EntryHasPermIndex  bool // >= 4.1.0
	EntryHasPermString bool // [4.0.11, 4.1.0)
	DirHasAttributes   bool // >= 2.0.11

	// File entries.
	FileHasAssemblyName bool // >= 5.2.5
	FileHasCopyMode     bool // < 3.0.5

	// Icon entries.
	IconHasAppUserModelID bool // >= 5.3.5
	IconHasToastCLSID     bool // >= 6.1.0
	IconHasShowCommand    bool // >= 1.3.24
	IconHasHotkey         bool // >= 2.0.7

	// Run entries.
	RunHasStatusMessage bool // >= 2.0.2
	RunHasVerb          bool // >= 5.1.13
	RunHasDescription   bool // >= 2.0.0 or ISX
	RunHasShowCommand   bool // >= 1.3.24

	// Data entries.
	DataSliceDecrement bool // < 4.0.0: slice numbers are one-based
	DataSubOffset64    bool // >= 6.5.2
	DataHasFileOffset  bool // >= 4.0.1
	DataSizes64        bool // >= 4.0.0
	DataChecksum       ChecksumKind
	DataCompressedAll  bool // < 4.2.5: every chunk uses the header codec
	DataHasSignMode    bool // [6.3.0, 6.4.3)

	// Wizard data.
	WizardImageCount    bool // >= 5.6.0: stored image count
	WizardSmallImages   bool // >= 2.0.0 or ISX
	WizardAfterEntries  bool // >= 4.0.0: wizard data trails the entry lists
	WizardBeforeEntries bool // < 4.0.0: wizard data follows the language list

	// Stream framing.
	StreamHeaderSized bool // >= 4.0.9: size+flag stream header
	StreamLZMA        bool // >= 4.1.6: compressed streams are LZMA1
}

// Caps resolves the capability set for the version. Callers driving
// NewBlockReader directly use it to match the framing of the installer.
func (v KnownVersion) Caps() Caps {
	return capsFor(v)
}

// capsFor is the one place on-disk schema revisions are mapped to capability
// bits. Adding support for a new release means touching the version table and,
// when the layout changed, this function; decoders stay untouched.
func capsFor(v KnownVersion) Caps {
	c := Caps{
		Unicode: v.Unicode,

		HasSupportPhone:            v.atLeast(ver(5, 1, 13)),
		HasUninstallIconName:       v.before(ver(3, 0, 0)),
		LicenseEarly:               v.before(ver(5, 2, 5)),
		LicenseLate:                v.atLeast(ver(5, 2, 5)),
		HasUserInfo:                v.atLeast(ver(3, 0, 0)),
		HasDefaultSerial:           v.atLeast(ver(4, 0, 0)),
		CompiledCodeEarly:          v.inRange(ver(4, 0, 0), ver(5, 2, 5)) || v.isxAtLeast(ver(1, 3, 24)),
		CompiledCodeLate:           v.atLeast(ver(5, 2, 5)),
		HasReadmeContact:           v.atLeast(ver(4, 2, 4)),
		HasCreateUninstallRegKey:   v.atLeast(ver(5, 3, 8)),
		HasUninstallable:           v.atLeast(ver(5, 3, 10)),
		HasCloseApplicationsFilter: v.atLeast(ver(5, 5, 0)),
		HasSetupMutex:              v.atLeast(ver(5, 5, 6)),
		HasChangesEnvAssoc:         v.atLeast(ver(5, 6, 1)),
		HasArchExpressions:         v.atLeast(ver(6, 3, 0)),
		HasCloseAppsFilterExcludes: v.atLeast(ver(6, 4, 2)),
		HasSevenZipLibraryName:     v.atLeast(ver(6, 5, 0)),
		HasUninstallerSignature:    v.inRange(ver(5, 2, 1), ver(5, 3, 10)),
		HasLeadBytes:               v.atLeast(ver(2, 0, 6)) && !v.Unicode,

		HasLanguageCount:       v.atLeast(ver(4, 0, 0)),
		LanguageCountOne:       v.inRange(ver(2, 0, 1), ver(4, 0, 0)),
		HasMessageCount:        v.atLeast(ver(4, 2, 1)),
		HasPermissionCount:     v.atLeast(ver(4, 1, 0)),
		HasTypeComponentCounts: v.atLeast(ver(2, 0, 0)) || v.ISX,
		HasTaskCount:           v.atLeast(ver(2, 0, 0)) || v.isxAtLeast(ver(1, 3, 17)),

		HasBackColor:            v.before(Version{6, 4, 0, 1}),
		HasBackColor2:           v.before(Version{6, 4, 0, 1}),
		HasImageBackColor:       v.before(ver(5, 5, 7)),
		HasSmallImageBackColor:  v.inRange(ver(2, 0, 0), ver(5, 0, 4)) || v.ISX,
		HasBackColorsLate:       v.atLeast(ver(6, 5, 2)),
		HasWizardStyle:          v.atLeast(ver(6, 0, 0)),
		HasImageAlphaFormat:     v.atLeast(ver(5, 5, 7)),
		Sizes64:                 v.atLeast(ver(4, 0, 0)),
		HasInstallVerbosity:     v.inRange(ver(2, 0, 0), ver(5, 0, 0)) || v.isxAtLeast(ver(1, 3, 4)),
		ReadUninstallStyle:      v.inRange(ver(2, 0, 0), ver(5, 0, 0)) || v.isxAtLeast(ver(1, 3, 13)),
		ISXCodeLineOffset:       v.ISX && v.inRange(ver(2, 0, 10), ver(3, 0, 0)),
		AlwaysRestartAutoBool:   v.inRange(ver(3, 0, 0), ver(3, 0, 3)),
		HasPrivilegesRequired:   v.atLeast(ver(3, 0, 4)) || v.isxAtLeast(ver(3, 0, 3)),
		HasPrivilegesOverrides:  v.atLeast(ver(5, 7, 0)),
		HasShowLanguageDialog:   v.atLeast(ver(4, 0, 10)),
		HasCompressionByte:      v.atLeast(ver(5, 3, 9)),
		HasArchBytes:            v.inRange(ver(5, 1, 0), ver(6, 3, 0)),
		HasSignedUninstaller:    v.inRange(ver(5, 2, 1), ver(5, 3, 10)),
		HasDisableDirPage:       v.atLeast(ver(5, 3, 3)),
		UninstallDisplaySize64:  v.atLeast(ver(5, 5, 0)),
		UninstallDisplaySize32:  v.inRange(ver(5, 3, 6), ver(5, 5, 0)),
		BlackboxExtraByte:       v.isBlackbox(),
		CompressionFromFlags:    v.before(ver(4, 1, 5)),
		PrivilegesFromFlags:     v.before(ver(3, 0, 4)),
		LanguageOptionsFromFlag: v.before(ver(4, 0, 10)),
		DisableDirPageFromFlags: v.before(ver(5, 3, 3)),

		CondComponents:  v.atLeast(ver(2, 0, 0)) || v.isxAtLeast(ver(1, 3, 8)),
		CondTasks:       v.atLeast(ver(2, 0, 0)) || v.isxAtLeast(ver(1, 3, 17)),
		CondLanguages:   v.atLeast(ver(4, 0, 1)),
		CondCheck:       v.atLeast(ver(4, 0, 0)) || v.isxAtLeast(ver(1, 3, 24)),
		CondBeforeAfter: v.atLeast(ver(4, 1, 0)),

		LangInternalName:   v.atLeast(ver(4, 0, 0)),
		LangData:           v.atLeast(ver(4, 0, 0)),
		LangLicenseInfo:    v.atLeast(ver(4, 0, 1)),
		LangCodepageFromID: v.before(ver(4, 2, 2)),
		LangCodepageField:  v.atLeast(ver(4, 2, 2)) && !v.Unicode,
		LangSkipCodepage:   v.Unicode && v.before(ver(5, 3, 0)),
		LangDialogStdHt:    v.before(ver(4, 1, 0)),
		LangRightToLeft:    v.atLeast(ver(5, 2, 3)),

		EntryHasLevel:      v.atLeast(ver(4, 0, 0)) || v.isxAtLeast(ver(3, 0, 3)),
		EntryHasUsed:       v.atLeast(ver(4, 0, 0)) || v.isxAtLeast(ver(3, 0, 4)),
		ComponentHasSize:   v.atLeast(ver(2, 0, 0)) || v.isxAtLeast(ver(1, 3, 24)),
		TypeHasSetupKind:   v.atLeast(ver(4, 0, 3)),
		EntryHasPermIndex:  v.atLeast(ver(4, 1, 0)),
		EntryHasPermString: v.inRange(ver(4, 0, 11), ver(4, 1, 0)),
		DirHasAttributes:   v.atLeast(ver(2, 0, 11)),

		FileHasAssemblyName: v.atLeast(ver(5, 2, 5)),
		FileHasCopyMode:     v.before(ver(3, 0, 5)),

		IconHasAppUserModelID: v.atLeast(ver(5, 3, 5)),
		IconHasToastCLSID:     v.atLeast(ver(6, 1, 0)),
		IconHasShowCommand:    v.atLeast(ver(1, 3, 24)),
		IconHasHotkey:         v.atLeast(ver(2, 0, 7)),

		RunHasStatusMessage: v.atLeast(ver(2, 0, 2)),
		RunHasVerb:          v.atLeast(ver(5, 1, 13)),
		RunHasDescription:   v.atLeast(ver(2, 0, 0)) || v.ISX,
		RunHasShowCommand:   v.atLeast(ver(1, 3, 24)),

		DataSliceDecrement: v.before(ver(4, 0, 0)),
		DataSubOffset64:    v.atLeast(ver(6, 5, 2)),
		DataHasFileOffset:  v.atLeast(ver(4, 0, 1)),
		DataSizes64:        v.atLeast(ver(4, 0, 0)),
		DataCompressedAll:  v.before(ver(4, 2, 5)),
		DataHasSignMode:    v.inRange(ver(6, 3, 0), ver(6, 4, 3)),

		WizardImageCount:    v.atLeast(ver(5, 6, 0)),
		WizardSmallImages:   v.atLeast(ver(2, 0, 0)) || v.ISX,
		WizardAfterEntries:  v.atLeast(ver(4, 0, 0)),
		WizardBeforeEntries: v.before(ver(4, 0, 0)),

		StreamHeaderSized: v.atLeast(ver(4, 0, 9)),
		StreamLZMA:        v.atLeast(ver(4, 1, 6)),
	}

	switch {
	case v.atLeast(ver(6, 5, 0)):
		// The key material moved to the encryption prelude before the
		// header stream.
		c.PasswordHash = passwordHashNone
	case v.atLeast(ver(6, 4, 0)):
		c.PasswordHash = passwordHashPBKDF2
	case v.atLeast(ver(5, 3, 9)):
		c.PasswordHash = passwordHashSHA1
	case v.atLeast(ver(4, 2, 0)):
		c.PasswordHash = passwordHashMD5
	default:
		c.PasswordHash = passwordHashCRC32
	}

	switch {
	case v.atLeast(ver(6, 5, 0)):
	case v.atLeast(ver(6, 4, 0)):
		c.PasswordSaltLen = 44
	case v.atLeast(ver(4, 2, 2)):
		c.PasswordSaltLen = 8
	}

	c.EncryptionPrelude = v.atLeast(ver(6, 5, 0))
	c.HasSigKeyCount = v.atLeast(ver(6, 5, 0))

	switch {
	case v.atLeast(ver(6, 4, 0)):
		c.DataChecksum = ChecksumSHA256
	case v.atLeast(ver(5, 3, 9)):
		c.DataChecksum = ChecksumSHA1
	case v.atLeast(ver(4, 2, 0)):
		c.DataChecksum = ChecksumMD5
	case v.atLeast(ver(4, 0, 1)):
		c.DataChecksum = ChecksumCRC32
	default:
		c.DataChecksum = ChecksumAdler32
	}

	return c
}

// flagGate is one row of a packed-bitfield order table: the flag is present
// in the on-disk bitfield when the version matches the row.
type flagGate struct {
	// flag is the bit recorded when the on-disk bit is set.
	flag uint64
	// from is the first version carrying the bit (zero means always).
	from Version
	// until is the first version no longer carrying the bit (zero means open).
	until Version
	// isxFrom optionally admits the ISX variant from an earlier release.
	isxFrom Version
	// notUnicode restricts the bit to code-page builds.
	notUnicode bool
	// cond overrides range matching for irregular gates.
	cond func(KnownVersion) bool
}

var zeroVersion = Version{}

// applies reports whether the gate row is present for the given version.
func (g flagGate) applies(v KnownVersion) bool {
	if g.cond != nil {
		return g.cond(v)
	}

	if g.notUnicode && v.Unicode {
		return false
	}

	inMain := v.atLeast(g.from) && (g.until == zeroVersion || v.before(g.until))
	if inMain {
		return true
	}

	return g.isxFrom != zeroVersion && v.isxAtLeast(g.isxFrom)
}
