// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// AutoBool is a tri-state setting byte.
type AutoBool uint8

const (
	AutoBoolAuto AutoBool = iota
	AutoBoolNo
	AutoBoolYes
)

// autoBoolFromFlag lowers a legacy yes/no header flag into the tri-state
// field that replaced it.
func autoBoolFromFlag(flags HeaderFlags, flag HeaderFlags) AutoBool {
	if flags.Has(flag) {
		return AutoBoolYes
	}

	return AutoBoolNo
}

// WizardStyle selects the installer UI style.
type WizardStyle uint8

const (
	WizardClassic WizardStyle = iota
	WizardModern
)

// ImageAlphaFormat describes the wizard image alpha channel.
type ImageAlphaFormat uint8

const (
	AlphaIgnored ImageAlphaFormat = iota
	AlphaDefined
	AlphaPremultiplied
)

// InstallVerbosity is the forced install UI verbosity.
type InstallVerbosity uint8

const (
	VerbosityNormal InstallVerbosity = iota
	VerbositySilent
	VerbosityVerySilent
)

// LogMode controls how the uninstall log file is opened.
type LogMode uint8

const (
	LogAppend LogMode = iota
	LogNew
	LogOverwrite
)

// PrivilegeLevel is the elevation the installer requests.
type PrivilegeLevel uint8

const (
	PrivilegeNone PrivilegeLevel = iota
	PrivilegePowerUser
	PrivilegeAdmin
	PrivilegeLowest
)

// LanguageDetection selects how the installer picks its UI language.
type LanguageDetection uint8

const (
	DetectUILanguage LanguageDetection = iota
	DetectLocaleLanguage
	DetectNone
)

// PrivilegeOverrides is the set of command line overrides the installer
// permits for the requested privilege level.
type PrivilegeOverrides uint8

const (
	OverrideCommandline PrivilegeOverrides = 1 << iota
	OverrideDialog
)

// Header is the decoded setup header: global installer metadata plus the
// entry list counts that drive the rest of the stream.
type Header struct {
	AppName                       string `json:"appName,omitempty" yaml:"appName,omitempty"`
	AppVersionedName              string `json:"appVersionedName,omitempty" yaml:"appVersionedName,omitempty"`
	AppID                         string `json:"appId,omitempty" yaml:"appId,omitempty"`
	AppCopyright                  string `json:"appCopyright,omitempty" yaml:"appCopyright,omitempty"`
	AppPublisher                  string `json:"appPublisher,omitempty" yaml:"appPublisher,omitempty"`
	AppPublisherURL               string `json:"appPublisherUrl,omitempty" yaml:"appPublisherUrl,omitempty"`
	AppSupportPhone               string `json:"appSupportPhone,omitempty" yaml:"appSupportPhone,omitempty"`
	AppSupportURL                 string `json:"appSupportUrl,omitempty" yaml:"appSupportUrl,omitempty"`
	AppUpdatesURL                 string `json:"appUpdatesUrl,omitempty" yaml:"appUpdatesUrl,omitempty"`
	AppVersion                    string `json:"appVersion,omitempty" yaml:"appVersion,omitempty"`
	DefaultDirName                string `json:"defaultDirName,omitempty" yaml:"defaultDirName,omitempty"`
	DefaultGroupName              string `json:"defaultGroupName,omitempty" yaml:"defaultGroupName,omitempty"`
	UninstallIconName             string `json:"uninstallIconName,omitempty" yaml:"uninstallIconName,omitempty"`
	BaseFilename                  string `json:"baseFilename,omitempty" yaml:"baseFilename,omitempty"`
	LicenseText                   string `json:"licenseText,omitempty" yaml:"licenseText,omitempty"`
	InfoBefore                    string `json:"infoBefore,omitempty" yaml:"infoBefore,omitempty"`
	InfoAfter                     string `json:"infoAfter,omitempty" yaml:"infoAfter,omitempty"`
	UninstallFilesDir             string `json:"uninstallFilesDir,omitempty" yaml:"uninstallFilesDir,omitempty"`
	UninstallName                 string `json:"uninstallName,omitempty" yaml:"uninstallName,omitempty"`
	UninstallIcon                 string `json:"uninstallIcon,omitempty" yaml:"uninstallIcon,omitempty"`
	AppMutex                      string `json:"appMutex,omitempty" yaml:"appMutex,omitempty"`
	DefaultUserName               string `json:"defaultUserName,omitempty" yaml:"defaultUserName,omitempty"`
	DefaultUserOrganisation       string `json:"defaultUserOrganisation,omitempty" yaml:"defaultUserOrganisation,omitempty"`
	DefaultSerial                 string `json:"defaultSerial,omitempty" yaml:"defaultSerial,omitempty"`
	CompiledCode                  []byte `json:"-" yaml:"-"`
	AppReadmeFile                 string `json:"appReadmeFile,omitempty" yaml:"appReadmeFile,omitempty"`
	AppContact                    string `json:"appContact,omitempty" yaml:"appContact,omitempty"`
	AppComments                   string `json:"appComments,omitempty" yaml:"appComments,omitempty"`
	AppModifyPath                 string `json:"appModifyPath,omitempty" yaml:"appModifyPath,omitempty"`
	CreateUninstallRegKeyExpr     string `json:"createUninstallRegKey,omitempty" yaml:"createUninstallRegKey,omitempty"`
	UninstallableExpr             string `json:"uninstallable,omitempty" yaml:"uninstallable,omitempty"`
	CloseApplicationsFilter       string `json:"closeApplicationsFilter,omitempty" yaml:"closeApplicationsFilter,omitempty"`
	SetupMutex                    string `json:"setupMutex,omitempty" yaml:"setupMutex,omitempty"`
	ChangesEnvironmentExpr        string `json:"changesEnvironment,omitempty" yaml:"changesEnvironment,omitempty"`
	ChangesAssociationsExpr       string `json:"changesAssociations,omitempty" yaml:"changesAssociations,omitempty"`
	ArchitecturesAllowed          string `json:"architecturesAllowed,omitempty" yaml:"architecturesAllowed,omitempty"`
	ArchitecturesInstall64        string `json:"architecturesInstallIn64BitMode,omitempty" yaml:"architecturesInstallIn64BitMode,omitempty"`
	CloseApplicationsExcludes     string `json:"closeApplicationsFilterExcludes,omitempty" yaml:"closeApplicationsFilterExcludes,omitempty"`
	SevenZipLibraryName           string `json:"sevenZipLibraryName,omitempty" yaml:"sevenZipLibraryName,omitempty"`
	UninstallerSignature          string `json:"uninstallerSignature,omitempty" yaml:"uninstallerSignature,omitempty"`
	LeadBytes                     []byte `json:"-" yaml:"-"`
	LanguageCount                 uint32 `json:"languageCount" yaml:"languageCount"`
	MessageCount                  uint32 `json:"messageCount" yaml:"messageCount"`
	PermissionCount               uint32 `json:"permissionCount" yaml:"permissionCount"`
	TypeCount                     uint32 `json:"typeCount" yaml:"typeCount"`
	ComponentCount                uint32 `json:"componentCount" yaml:"componentCount"`
	TaskCount                     uint32 `json:"taskCount" yaml:"taskCount"`
	DirectoryCount                uint32 `json:"directoryCount" yaml:"directoryCount"`
	SigKeyCount                   uint32 `json:"sigKeyCount" yaml:"sigKeyCount"`
	FileCount                     uint32 `json:"fileCount" yaml:"fileCount"`
	DataEntryCount                uint32 `json:"dataEntryCount" yaml:"dataEntryCount"`
	IconCount                     uint32 `json:"iconCount" yaml:"iconCount"`
	IniEntryCount                 uint32 `json:"iniEntryCount" yaml:"iniEntryCount"`
	RegistryEntryCount            uint32 `json:"registryEntryCount" yaml:"registryEntryCount"`
	DeleteEntryCount              uint32 `json:"deleteEntryCount" yaml:"deleteEntryCount"`
	UninstallDeleteEntryCount     uint32 `json:"uninstallDeleteEntryCount" yaml:"uninstallDeleteEntryCount"`
	RunEntryCount                 uint32 `json:"runEntryCount" yaml:"runEntryCount"`
	UninstallRunEntryCount        uint32 `json:"uninstallRunEntryCount" yaml:"uninstallRunEntryCount"`
	WindowsVersionRange           WindowsVersionRange `json:"windowsVersionRange" yaml:"windowsVersionRange"`
	BackColor                     uint32 `json:"backColor,omitempty" yaml:"backColor,omitempty"`
	BackColor2                    uint32 `json:"backColor2,omitempty" yaml:"backColor2,omitempty"`
	ImageBackColor                uint32 `json:"imageBackColor,omitempty" yaml:"imageBackColor,omitempty"`
	SmallImageBackColor           uint32 `json:"smallImageBackColor,omitempty" yaml:"smallImageBackColor,omitempty"`
	WizardStyle                   WizardStyle `json:"wizardStyle" yaml:"wizardStyle"`
	WizardResizePercentX          uint32 `json:"wizardResizePercentX,omitempty" yaml:"wizardResizePercentX,omitempty"`
	WizardResizePercentY          uint32 `json:"wizardResizePercentY,omitempty" yaml:"wizardResizePercentY,omitempty"`
	ImageAlphaFormat              ImageAlphaFormat `json:"imageAlphaFormat" yaml:"imageAlphaFormat"`
	PasswordHash                  []byte `json:"-" yaml:"-"`
	PasswordSalt                  []byte `json:"-" yaml:"-"`
	ExtraDiskSpaceRequired        uint64 `json:"extraDiskSpaceRequired" yaml:"extraDiskSpaceRequired"`
	SlicesPerDisk                 uint32 `json:"slicesPerDisk" yaml:"slicesPerDisk"`
	InstallVerbosity              InstallVerbosity `json:"installVerbosity" yaml:"installVerbosity"`
	UninstallLogMode              LogMode `json:"uninstallLogMode" yaml:"uninstallLogMode"`
	UninstallStyle                WizardStyle `json:"uninstallStyle" yaml:"uninstallStyle"`
	DirExistsWarning              AutoBool `json:"dirExistsWarning" yaml:"dirExistsWarning"`
	PrivilegesRequired            PrivilegeLevel `json:"privilegesRequired" yaml:"privilegesRequired"`
	PrivilegesRequiredOverrides   PrivilegeOverrides `json:"privilegesRequiredOverrides" yaml:"privilegesRequiredOverrides"`
	ShowLanguageDialog            AutoBool `json:"showLanguageDialog" yaml:"showLanguageDialog"`
	LanguageDetection             LanguageDetection `json:"languageDetection" yaml:"languageDetection"`
	Compression                   CompressionMethod `json:"compression" yaml:"compression"`
	ArchitecturesAllowedBits      uint8 `json:"-" yaml:"-"`
	ArchitecturesInstall64Bits    uint8 `json:"-" yaml:"-"`
	SignedUninstallerOriginalSize uint32 `json:"signedUninstallerOriginalSize,omitempty" yaml:"signedUninstallerOriginalSize,omitempty"`
	SignedUninstallerChecksum     uint32 `json:"signedUninstallerHeaderChecksum,omitempty" yaml:"signedUninstallerHeaderChecksum,omitempty"`
	DisableDirPage                AutoBool `json:"disableDirPage" yaml:"disableDirPage"`
	DisableProgramGroupPage       AutoBool `json:"disableProgramGroupPage" yaml:"disableProgramGroupPage"`
	UninstallDisplaySize          uint64 `json:"uninstallDisplaySize" yaml:"uninstallDisplaySize"`
	Flags                         HeaderFlags `json:"flags" yaml:"flags"`
}

// readEnumByte reads one enum byte and warns when the value is outside the
// known range. The byte count is unaffected, so decoding continues.
func (fr *fieldReader) readEnumByte(name string, max uint8) (uint8, error) {
	b, err := fr.readU8()
	if err != nil {
		return 0, err
	}
	if b > max {
		fr.warnf("%s byte %#02x out of range, max %#02x", name, b, max)
	}

	return b, nil
}

// readHeader decodes the setup header. Field presence and layout are driven
// entirely by the capability bits resolved for the declared version.
func readHeader(fr *fieldReader) (*Header, error) {
	caps := fr.caps
	h := &Header{Compression: CompressionUnknown}

	strDst := []*string{
		&h.AppName, &h.AppVersionedName, &h.AppID, &h.AppCopyright,
		&h.AppPublisher, &h.AppPublisherURL,
	}
	for _, dst := range strDst {
		s, err := fr.readString()
		if err != nil {
			return nil, err
		}
		*dst = s
	}

	if caps.HasSupportPhone {
		s, err := fr.readString()
		if err != nil {
			return nil, err
		}
		h.AppSupportPhone = s
	}

	for _, dst := range []*string{
		&h.AppSupportURL, &h.AppUpdatesURL, &h.AppVersion,
		&h.DefaultDirName, &h.DefaultGroupName,
	} {
		s, err := fr.readString()
		if err != nil {
			return nil, err
		}
		*dst = s
	}

	var err error

	if caps.HasUninstallIconName {
		if h.UninstallIconName, err = fr.readAnsiString(); err != nil {
			return nil, err
		}
	}

	if h.BaseFilename, err = fr.readString(); err != nil {
		return nil, err
	}

	if caps.LicenseEarly {
		if err = readLicenseTrio(fr, h); err != nil {
			return nil, err
		}
	}

	for _, dst := range []*string{&h.UninstallFilesDir, &h.UninstallName, &h.UninstallIcon, &h.AppMutex} {
		if *dst, err = fr.readString(); err != nil {
			return nil, err
		}
	}

	if caps.HasUserInfo {
		if h.DefaultUserName, err = fr.readString(); err != nil {
			return nil, err
		}
		if h.DefaultUserOrganisation, err = fr.readString(); err != nil {
			return nil, err
		}
	}

	if caps.HasDefaultSerial {
		if h.DefaultSerial, err = fr.readString(); err != nil {
			return nil, err
		}
	}

	if caps.CompiledCodeEarly {
		if h.CompiledCode, err = fr.readBlob(); err != nil {
			return nil, err
		}
	}

	if caps.HasReadmeContact {
		for _, dst := range []*string{&h.AppReadmeFile, &h.AppContact, &h.AppComments, &h.AppModifyPath} {
			if *dst, err = fr.readString(); err != nil {
				return nil, err
			}
		}
	}

	if caps.HasCreateUninstallRegKey {
		if h.CreateUninstallRegKeyExpr, err = fr.readString(); err != nil {
			return nil, err
		}
	}
	if caps.HasUninstallable {
		if h.UninstallableExpr, err = fr.readString(); err != nil {
			return nil, err
		}
	}
	if caps.HasCloseApplicationsFilter {
		if h.CloseApplicationsFilter, err = fr.readString(); err != nil {
			return nil, err
		}
	}
	if caps.HasSetupMutex {
		if h.SetupMutex, err = fr.readString(); err != nil {
			return nil, err
		}
	}
	if caps.HasChangesEnvAssoc {
		if h.ChangesEnvironmentExpr, err = fr.readString(); err != nil {
			return nil, err
		}
		if h.ChangesAssociationsExpr, err = fr.readString(); err != nil {
			return nil, err
		}
	}
	if caps.HasArchExpressions {
		if h.ArchitecturesAllowed, err = fr.readString(); err != nil {
			return nil, err
		}
		if h.ArchitecturesInstall64, err = fr.readString(); err != nil {
			return nil, err
		}
	}
	if caps.HasCloseAppsFilterExcludes {
		if h.CloseApplicationsExcludes, err = fr.readString(); err != nil {
			return nil, err
		}
	}
	if caps.HasSevenZipLibraryName {
		if h.SevenZipLibraryName, err = fr.readString(); err != nil {
			return nil, err
		}
	}

	if caps.LicenseLate {
		if err = readLicenseTrio(fr, h); err != nil {
			return nil, err
		}
	}

	if caps.HasUninstallerSignature {
		if h.UninstallerSignature, err = fr.readString(); err != nil {
			return nil, err
		}
	}

	if caps.CompiledCodeLate {
		if h.CompiledCode, err = fr.readBlob(); err != nil {
			return nil, err
		}
	}

	if caps.HasLeadBytes {
		if h.LeadBytes, err = fr.readN(32); err != nil {
			return nil, err
		}
	}

	if caps.HasLanguageCount {
		if h.LanguageCount, err = fr.readU32(); err != nil {
			return nil, err
		}
	} else if caps.LanguageCountOne {
		h.LanguageCount = 1
	}

	if caps.HasMessageCount {
		if h.MessageCount, err = fr.readU32(); err != nil {
			return nil, err
		}
	}
	if caps.HasPermissionCount {
		if h.PermissionCount, err = fr.readU32(); err != nil {
			return nil, err
		}
	}
	if caps.HasTypeComponentCounts {
		if h.TypeCount, err = fr.readU32(); err != nil {
			return nil, err
		}
		if h.ComponentCount, err = fr.readU32(); err != nil {
			return nil, err
		}
	}
	if caps.HasTaskCount {
		if h.TaskCount, err = fr.readU32(); err != nil {
			return nil, err
		}
	}

	if h.DirectoryCount, err = fr.readU32(); err != nil {
		return nil, err
	}
	if caps.HasSigKeyCount {
		if h.SigKeyCount, err = fr.readU32(); err != nil {
			return nil, err
		}
	}
	for _, dst := range []*uint32{
		&h.FileCount, &h.DataEntryCount, &h.IconCount,
		&h.IniEntryCount, &h.RegistryEntryCount, &h.DeleteEntryCount,
		&h.UninstallDeleteEntryCount, &h.RunEntryCount, &h.UninstallRunEntryCount,
	} {
		if *dst, err = fr.readU32(); err != nil {
			return nil, err
		}
	}

	if h.WindowsVersionRange, err = fr.readWindowsVersionRange(); err != nil {
		return nil, err
	}

	if caps.HasBackColor {
		if h.BackColor, err = fr.readU32(); err != nil {
			return nil, err
		}
	}
	if caps.HasBackColor2 {
		if h.BackColor2, err = fr.readU32(); err != nil {
			return nil, err
		}
	}
	if caps.HasImageBackColor {
		if h.ImageBackColor, err = fr.readU32(); err != nil {
			return nil, err
		}
	}
	if caps.HasSmallImageBackColor {
		if h.SmallImageBackColor, err = fr.readU32(); err != nil {
			return nil, err
		}
	}

	if caps.HasWizardStyle {
		style, err := fr.readEnumByte("wizard style", uint8(WizardModern))
		if err != nil {
			return nil, err
		}
		h.WizardStyle = WizardStyle(style)

		if h.WizardResizePercentX, err = fr.readU32(); err != nil {
			return nil, err
		}
		if h.WizardResizePercentY, err = fr.readU32(); err != nil {
			return nil, err
		}
	}

	if caps.HasImageAlphaFormat {
		alpha, err := fr.readEnumByte("image alpha format", uint8(AlphaPremultiplied))
		if err != nil {
			return nil, err
		}
		h.ImageAlphaFormat = ImageAlphaFormat(alpha)
	}

	switch caps.PasswordHash {
	case passwordHashNone:
	case passwordHashPBKDF2:
		// Modern headers keep only a 32-bit tag here; the PBKDF2 material
		// lives with the salt below.
		if h.PasswordHash, err = fr.readN(4); err != nil {
			return nil, err
		}
	case passwordHashSHA1:
		if h.PasswordHash, err = fr.readN(20); err != nil {
			return nil, err
		}
	case passwordHashMD5:
		if h.PasswordHash, err = fr.readN(16); err != nil {
			return nil, err
		}
	default:
		if h.PasswordHash, err = fr.readN(4); err != nil {
			return nil, err
		}
	}

	if caps.PasswordSaltLen > 0 {
		if h.PasswordSalt, err = fr.readN(caps.PasswordSaltLen); err != nil {
			return nil, err
		}
	}

	if caps.HasBackColorsLate {
		if h.ImageBackColor, err = fr.readU32(); err != nil {
			return nil, err
		}
		if h.SmallImageBackColor, err = fr.readU32(); err != nil {
			return nil, err
		}
	}

	if caps.Sizes64 {
		if h.ExtraDiskSpaceRequired, err = fr.readU64(); err != nil {
			return nil, err
		}
		if h.SlicesPerDisk, err = fr.readU32(); err != nil {
			return nil, err
		}
	} else {
		space, err := fr.readU32()
		if err != nil {
			return nil, err
		}
		h.ExtraDiskSpaceRequired = uint64(space)
		h.SlicesPerDisk = 1
	}

	if caps.HasInstallVerbosity {
		v, err := fr.readEnumByte("install verbosity", uint8(VerbosityVerySilent))
		if err != nil {
			return nil, err
		}
		h.InstallVerbosity = InstallVerbosity(v)
	}

	logMode, err := fr.readEnumByte("uninstall log mode", uint8(LogOverwrite))
	if err != nil {
		return nil, err
	}
	h.UninstallLogMode = LogMode(logMode)

	if caps.ReadUninstallStyle {
		style, err := fr.readEnumByte("uninstall style", uint8(WizardModern))
		if err != nil {
			return nil, err
		}
		h.UninstallStyle = WizardStyle(style)
	} else {
		h.UninstallStyle = WizardModern
	}

	dirWarn, err := fr.readEnumByte("dir exists warning", uint8(AutoBoolYes))
	if err != nil {
		return nil, err
	}
	h.DirExistsWarning = AutoBool(dirWarn)

	if caps.ISXCodeLineOffset {
		if _, err = fr.readU32(); err != nil {
			return nil, err
		}
	}

	if caps.AlwaysRestartAutoBool {
		restart, err := fr.readEnumByte("always restart", uint8(AutoBoolYes))
		if err != nil {
			return nil, err
		}
		switch AutoBool(restart) {
		case AutoBoolYes:
			h.Flags |= FlagAlwaysRestart
		case AutoBoolAuto:
			h.Flags |= FlagRestartIfNeededByRun
		}
	}

	if caps.HasPrivilegesRequired {
		lvl, err := fr.readEnumByte("privileges required", uint8(PrivilegeLowest))
		if err != nil {
			return nil, err
		}
		h.PrivilegesRequired = PrivilegeLevel(lvl)
	}
	if caps.HasPrivilegesOverrides {
		ov, err := fr.readU8()
		if err != nil {
			return nil, err
		}
		h.PrivilegesRequiredOverrides = PrivilegeOverrides(ov)
	}

	if caps.HasShowLanguageDialog {
		show, err := fr.readEnumByte("show language dialog", uint8(AutoBoolYes))
		if err != nil {
			return nil, err
		}
		h.ShowLanguageDialog = AutoBool(show)

		detect, err := fr.readEnumByte("language detection", uint8(DetectNone))
		if err != nil {
			return nil, err
		}
		h.LanguageDetection = LanguageDetection(detect)
	}

	if caps.HasCompressionByte {
		method, err := fr.readEnumByte("compression method", uint8(CompressionLZMA2))
		if err != nil {
			return nil, err
		}
		h.Compression = CompressionMethod(method)
	}

	if caps.HasArchBytes {
		if h.ArchitecturesAllowedBits, err = fr.readU8(); err != nil {
			return nil, err
		}
		if h.ArchitecturesInstall64Bits, err = fr.readU8(); err != nil {
			return nil, err
		}
	}

	if caps.HasSignedUninstaller {
		if h.SignedUninstallerOriginalSize, err = fr.readU32(); err != nil {
			return nil, err
		}
		if h.SignedUninstallerChecksum, err = fr.readU32(); err != nil {
			return nil, err
		}
	}

	if caps.HasDisableDirPage {
		dirPage, err := fr.readEnumByte("disable dir page", uint8(AutoBoolYes))
		if err != nil {
			return nil, err
		}
		h.DisableDirPage = AutoBool(dirPage)

		groupPage, err := fr.readEnumByte("disable program group page", uint8(AutoBoolYes))
		if err != nil {
			return nil, err
		}
		h.DisableProgramGroupPage = AutoBool(groupPage)
	}

	switch {
	case caps.UninstallDisplaySize64:
		if h.UninstallDisplaySize, err = fr.readU64(); err != nil {
			return nil, err
		}
	case caps.UninstallDisplaySize32:
		size, err := fr.readU32()
		if err != nil {
			return nil, err
		}
		h.UninstallDisplaySize = uint64(size)
	}

	if caps.BlackboxExtraByte {
		if _, err = fr.readU8(); err != nil {
			return nil, err
		}
	}

	flags, err := fr.readFlagSet(headerFlagGates)
	if err != nil {
		return nil, err
	}
	h.Flags |= HeaderFlags(flags)

	// Settings that predate their dedicated fields are folded forward from
	// the flag set so callers see one canonical place.
	if !fr.caps.StreamHeaderSized {
		h.Flags |= FlagAllowCancelDuringInstall
	}
	if !caps.UninstallDisplaySize64 {
		h.Flags |= FlagAllowNetworkDrive
	}
	if caps.PrivilegesFromFlags {
		if h.Flags.Has(FlagAdminPrivilegesRequired) {
			h.PrivilegesRequired = PrivilegeAdmin
		}
	}
	if caps.LanguageOptionsFromFlag {
		h.ShowLanguageDialog = AutoBoolNo
		if h.Flags.Has(FlagDetectLanguageUsingLocale) {
			h.LanguageDetection = DetectLocaleLanguage
		}
	}
	if caps.CompressionFromFlags {
		if h.Flags.Has(FlagBzipUsed) {
			h.Compression = CompressionBZip2
		} else {
			h.Compression = CompressionZlib
		}
	}
	if caps.DisableDirPageFromFlags {
		h.DisableDirPage = autoBoolFromFlag(h.Flags, FlagDisableDirPage)
		h.DisableProgramGroupPage = autoBoolFromFlag(h.Flags, FlagDisableProgramGroupPage)
	}

	return h, nil
}

// readLicenseTrio reads the license and info texts, which stay code-page
// encoded on every build.
func readLicenseTrio(fr *fieldReader, h *Header) error {
	var err error

	if h.LicenseText, err = fr.readAnsiString(); err != nil {
		return err
	}
	if h.InfoBefore, err = fr.readAnsiString(); err != nil {
		return err
	}
	if h.InfoAfter, err = fr.readAnsiString(); err != nil {
		return err
	}

	return nil
}
