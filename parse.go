// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"errors"
	"fmt"
	"io"
)

// Setup is the fully decoded installer metadata: the loader offset table, the
// setup header and every entry list from both header streams.
type Setup struct {
	Loader  *Loader      `json:"loader" yaml:"loader"`
	Version KnownVersion `json:"version" yaml:"version"`

	Encryption *EncryptionHeader `json:"encryption,omitempty" yaml:"encryption,omitempty"`
	Header     *Header           `json:"header" yaml:"header"`

	Languages              []Language      `json:"languages,omitempty" yaml:"languages,omitempty"`
	Messages               []Message       `json:"messages,omitempty" yaml:"messages,omitempty"`
	Permissions            []Permission    `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Types                  []TypeEntry     `json:"types,omitempty" yaml:"types,omitempty"`
	Components             []Component     `json:"components,omitempty" yaml:"components,omitempty"`
	Tasks                  []Task          `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Directories            []Directory     `json:"directories,omitempty" yaml:"directories,omitempty"`
	SigKeys                []SigKey        `json:"sigKeys,omitempty" yaml:"sigKeys,omitempty"`
	Files                  []File          `json:"files,omitempty" yaml:"files,omitempty"`
	Icons                  []Icon          `json:"icons,omitempty" yaml:"icons,omitempty"`
	IniEntries             []IniEntry      `json:"iniEntries,omitempty" yaml:"iniEntries,omitempty"`
	RegistryEntries        []RegistryEntry `json:"registryEntries,omitempty" yaml:"registryEntries,omitempty"`
	DeleteEntries          []DeleteEntry   `json:"deleteEntries,omitempty" yaml:"deleteEntries,omitempty"`
	UninstallDeleteEntries []DeleteEntry   `json:"uninstallDeleteEntries,omitempty" yaml:"uninstallDeleteEntries,omitempty"`
	RunEntries             []RunEntry      `json:"runEntries,omitempty" yaml:"runEntries,omitempty"`
	UninstallRunEntries    []RunEntry      `json:"uninstallRunEntries,omitempty" yaml:"uninstallRunEntries,omitempty"`

	Wizard      WizardData  `json:"-" yaml:"-"`
	DataEntries []DataEntry `json:"dataEntries,omitempty" yaml:"dataEntries,omitempty"`

	// Warnings lists the malformed but recoverable field values met during
	// decoding. Positional failures abort with an error instead.
	Warnings []error `json:"-" yaml:"-"`
}

// listPrealloc caps the slice capacity reserved up front for an entry list so
// a forged count cannot force a giant allocation.
const listPrealloc = 4096

func readEntryList[T any](fr *fieldReader, count uint32, read func(*fieldReader) (T, error)) ([]T, error) {
	if count == 0 {
		return nil, nil
	}

	entries := make([]T, 0, min(count, listPrealloc))
	for i := uint32(0); i < count; i++ {
		e, err := read(fr)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// headerCodepage picks the page used for header and entry strings on
// code-page builds: Windows-1252 when any language carries it, the first
// language's page otherwise.
func headerCodepage(languages []Language) uint16 {
	for _, lang := range languages {
		if lang.Codepage == defaultCodepage {
			return defaultCodepage
		}
	}
	if len(languages) > 0 && languages[0].Codepage != 0 {
		return languages[0].Codepage
	}

	return defaultCodepage
}

// parseSetup decodes the whole embedded setup metadata from an installer
// image.
func parseSetup(src io.ReaderAt, size int64, maxValue uint32) (*Setup, error) {
	loader, err := findLoader(src, size)
	if err != nil {
		return nil, err
	}

	if loader.HeaderOffset < 0 || loader.HeaderOffset+versionSignatureLen > size {
		return nil, fmt.Errorf("%w: header offset %d outside file of %d bytes",
			ErrMalformedHeader, loader.HeaderOffset, size)
	}

	section := io.NewSectionReader(src, loader.HeaderOffset, size-loader.HeaderOffset)

	var rawVersion [versionSignatureLen]byte
	if _, err := io.ReadFull(section, rawVersion[:]); err != nil {
		return nil, fmt.Errorf("%w: version signature: %w", ErrTruncatedInput, err)
	}

	version, err := lookupVersion(rawVersion[:])
	if err != nil {
		return nil, err
	}
	caps := capsFor(version)

	setup := &Setup{Loader: loader, Version: version}

	preludeLen := int64(0)
	if caps.EncryptionPrelude {
		if setup.Encryption, err = readEncryptionPrelude(section); err != nil {
			return nil, err
		}
		preludeLen = 4 + 1 + 16 + 4 + 24 + 4
	}

	stream, err := NewBlockReader(section, caps)
	if err != nil {
		return nil, err
	}

	fr := newFieldReader(stream, version, caps, maxValue)

	if setup.Header, err = readHeader(fr); err != nil {
		return nil, fmt.Errorf("setup header: %w", err)
	}
	h := setup.Header

	if setup.Languages, err = readEntryList(fr, h.LanguageCount, readLanguage); err != nil {
		return nil, fmt.Errorf("language entries: %w", err)
	}

	if !caps.Unicode {
		fr.codepage = headerCodepage(setup.Languages)
	}

	if caps.WizardBeforeEntries {
		if setup.Wizard, err = readWizardData(fr, h); err != nil {
			return nil, fmt.Errorf("wizard data: %w", err)
		}
	}

	setup.Messages = make([]Message, 0, min(h.MessageCount, listPrealloc))
	for i := uint32(0); i < h.MessageCount; i++ {
		msg, err := readMessage(fr, setup.Languages)
		if err != nil {
			return nil, fmt.Errorf("message entry %d: %w", i, err)
		}
		setup.Messages = append(setup.Messages, msg)
	}

	if setup.Permissions, err = readEntryList(fr, h.PermissionCount, readPermission); err != nil {
		return nil, fmt.Errorf("permission entries: %w", err)
	}
	if setup.Types, err = readEntryList(fr, h.TypeCount, readTypeEntry); err != nil {
		return nil, fmt.Errorf("type entries: %w", err)
	}
	if setup.Components, err = readEntryList(fr, h.ComponentCount, readComponent); err != nil {
		return nil, fmt.Errorf("component entries: %w", err)
	}
	if setup.Tasks, err = readEntryList(fr, h.TaskCount, readTask); err != nil {
		return nil, fmt.Errorf("task entries: %w", err)
	}
	if setup.Directories, err = readEntryList(fr, h.DirectoryCount, readDirectory); err != nil {
		return nil, fmt.Errorf("directory entries: %w", err)
	}
	if setup.SigKeys, err = readEntryList(fr, h.SigKeyCount, readSigKey); err != nil {
		return nil, fmt.Errorf("signature key entries: %w", err)
	}
	if setup.Files, err = readEntryList(fr, h.FileCount, readFile); err != nil {
		return nil, fmt.Errorf("file entries: %w", err)
	}
	if setup.Icons, err = readEntryList(fr, h.IconCount, readIcon); err != nil {
		return nil, fmt.Errorf("icon entries: %w", err)
	}
	if setup.IniEntries, err = readEntryList(fr, h.IniEntryCount, readIniEntry); err != nil {
		return nil, fmt.Errorf("ini entries: %w", err)
	}
	if setup.RegistryEntries, err = readEntryList(fr, h.RegistryEntryCount, readRegistryEntry); err != nil {
		return nil, fmt.Errorf("registry entries: %w", err)
	}
	if setup.DeleteEntries, err = readEntryList(fr, h.DeleteEntryCount, readDeleteEntry); err != nil {
		return nil, fmt.Errorf("delete entries: %w", err)
	}
	if setup.UninstallDeleteEntries, err = readEntryList(fr, h.UninstallDeleteEntryCount, readDeleteEntry); err != nil {
		return nil, fmt.Errorf("uninstall delete entries: %w", err)
	}
	if setup.RunEntries, err = readEntryList(fr, h.RunEntryCount, readRunEntry); err != nil {
		return nil, fmt.Errorf("run entries: %w", err)
	}
	if setup.UninstallRunEntries, err = readEntryList(fr, h.UninstallRunEntryCount, readRunEntry); err != nil {
		return nil, fmt.Errorf("uninstall run entries: %w", err)
	}

	if caps.WizardAfterEntries {
		if setup.Wizard, err = readWizardData(fr, h); err != nil {
			return nil, fmt.Errorf("wizard data: %w", err)
		}
	}

	if err := expectStreamEnd(stream); err != nil {
		return nil, fmt.Errorf("header stream: %w", err)
	}

	// The data entry stream starts right after the first stream's raw bytes.
	dataStart := loader.HeaderOffset + versionSignatureLen + preludeLen + stream.headerStreamLen(caps)
	if dataStart > size {
		return nil, fmt.Errorf("%w: data entry stream starts at %d in file of %d bytes",
			ErrMalformedHeader, dataStart, size)
	}

	dataStream, err := NewBlockReader(io.NewSectionReader(src, dataStart, size-dataStart), caps)
	if err != nil {
		return nil, fmt.Errorf("data entry stream: %w", err)
	}

	dfr := newFieldReader(dataStream, version, caps, maxValue)
	dfr.codepage = fr.codepage

	setup.DataEntries = make([]DataEntry, 0, min(h.DataEntryCount, listPrealloc))
	for i := uint32(0); i < h.DataEntryCount; i++ {
		e, err := readDataEntry(dfr, h)
		if err != nil {
			return nil, fmt.Errorf("data entry %d: %w", i, err)
		}
		setup.DataEntries = append(setup.DataEntries, e)
	}

	if err := expectStreamEnd(dataStream); err != nil {
		return nil, fmt.Errorf("data entry stream: %w", err)
	}

	if err := validateFileLocations(setup.Files, len(setup.DataEntries)); err != nil {
		return nil, err
	}
	setup.checkPermissionRefs(fr)

	setup.Warnings = append(fr.warnings, dfr.warnings...)

	return setup, nil
}

// checkPermissionRefs records a warning for every permission index pointing
// outside the permission list. The indexes stay as stored.
func (s *Setup) checkPermissionRefs(fr *fieldReader) {
	count := len(s.Permissions)
	check := func(kind string, i int, perm int16) {
		if perm >= 0 && int(perm) >= count {
			fr.warnings = append(fr.warnings, fmt.Errorf(
				"%w: %s entry %d references permission %d of %d",
				ErrDanglingReference, kind, i, perm, count))
		}
	}

	for i := range s.Files {
		check("file", i, s.Files[i].Permission)
	}
	for i := range s.Directories {
		check("directory", i, s.Directories[i].Permission)
	}
	for i := range s.RegistryEntries {
		check("registry", i, s.RegistryEntries[i].Permission)
	}
}

// expectStreamEnd verifies the decoded stream has no bytes left past the
// fields the declared counts cover.
func expectStreamEnd(stream io.Reader) error {
	var b [1]byte
	n, err := stream.Read(b[:])
	if n > 0 {
		return fmt.Errorf("%w: trailing data after final field", ErrMalformedHeader)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
