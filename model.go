// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Format limits.
const (
	// DefaultMaxValueSize bounds a single length-prefixed value. License
	// texts and wizard bitmaps are the largest values seen in practice.
	DefaultMaxValueSize = 256 << 20
)

// ReaderOptions configures parse behavior.
type ReaderOptions struct {
	// MaxValueSize bounds a single length-prefixed string or blob in bytes.
	// Zero means DefaultMaxValueSize.
	MaxValueSize uint32 `json:"max_value_size,omitempty" yaml:"max_value_size,omitempty"`
}

// applyDefaults fills zero-valued reader options with defaults.
func (opts *ReaderOptions) applyDefaults() {
	if opts.MaxValueSize == 0 {
		opts.MaxValueSize = DefaultMaxValueSize
	}
}

// Reader provides read-only access to the decoded metadata of one installer.
type Reader struct {
	// ra is the underlying random-access reader.
	ra io.ReaderAt
	// file is set when Reader owns an *os.File opened via Open.
	file *os.File
	// setup holds the decoded metadata, immutable after parse.
	setup *Setup
	// size is total source size in bytes.
	size int64
	// mu guards closed state and close operation.
	mu sync.Mutex
	// closed reports whether Close was already called.
	closed bool
}

// Open opens an installer executable by path and decodes its metadata.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, ReaderOptions{})
}

// OpenWithOptions opens an installer executable by path and decodes its
// metadata using explicit reader options.
func OpenWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	opts.applyDefaults()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open installer: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}

	r, err := NewReaderFromReaderAtWithOptions(f, fi.Size(), opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	r.file = f
	return r, nil
}

// NewReaderFromReaderAt decodes installer metadata from an existing ReaderAt
// and known size.
func NewReaderFromReaderAt(ra io.ReaderAt, size int64) (*Reader, error) {
	return NewReaderFromReaderAtWithOptions(ra, size, ReaderOptions{})
}

// NewReaderFromReaderAtWithOptions decodes installer metadata from an
// existing ReaderAt and known size using explicit reader options.
func NewReaderFromReaderAtWithOptions(ra io.ReaderAt, size int64, opts ReaderOptions) (*Reader, error) {
	if ra == nil {
		return nil, ErrNilReader
	}
	opts.applyDefaults()

	setup, err := parseSetup(ra, size, opts.MaxValueSize)
	if err != nil {
		return nil, err
	}

	return &Reader{ra: ra, setup: setup, size: size}, nil
}

// Close releases the underlying file when Reader owns one. Close is
// idempotent.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if r.file != nil {
		return r.file.Close()
	}

	return nil
}

// Version returns the declared format revision.
func (r *Reader) Version() KnownVersion {
	return r.setup.Version
}

// Loader returns the decoded loader offset table.
func (r *Reader) Loader() Loader {
	return *r.setup.Loader
}

// Header returns the decoded setup header.
func (r *Reader) Header() *Header {
	return r.setup.Header
}

// EncryptionHeader returns the key derivation material, or nil when the
// installer is not encrypted or predates the standalone encryption header.
func (r *Reader) EncryptionHeader() *EncryptionHeader {
	return r.setup.Encryption
}

// Setup returns the complete decoded metadata.
func (r *Reader) Setup() *Setup {
	return r.setup
}

// Languages returns a copy of the decoded language entries.
func (r *Reader) Languages() []Language {
	return copySlice(r.setup.Languages)
}

// Messages returns a copy of the decoded custom message entries.
func (r *Reader) Messages() []Message {
	return copySlice(r.setup.Messages)
}

// Permissions returns a copy of the decoded permission entries.
func (r *Reader) Permissions() []Permission {
	return copySlice(r.setup.Permissions)
}

// Types returns a copy of the decoded setup type entries.
func (r *Reader) Types() []TypeEntry {
	return copySlice(r.setup.Types)
}

// Components returns a copy of the decoded component entries.
func (r *Reader) Components() []Component {
	return copySlice(r.setup.Components)
}

// Tasks returns a copy of the decoded task entries.
func (r *Reader) Tasks() []Task {
	return copySlice(r.setup.Tasks)
}

// Directories returns a copy of the decoded directory entries.
func (r *Reader) Directories() []Directory {
	return copySlice(r.setup.Directories)
}

// SigKeys returns a copy of the decoded signature verification keys.
func (r *Reader) SigKeys() []SigKey {
	return copySlice(r.setup.SigKeys)
}

// Files returns a copy of the decoded file entries.
func (r *Reader) Files() []File {
	return copySlice(r.setup.Files)
}

// Icons returns a copy of the decoded icon entries.
func (r *Reader) Icons() []Icon {
	return copySlice(r.setup.Icons)
}

// IniEntries returns a copy of the decoded ini entries.
func (r *Reader) IniEntries() []IniEntry {
	return copySlice(r.setup.IniEntries)
}

// RegistryEntries returns a copy of the decoded registry entries.
func (r *Reader) RegistryEntries() []RegistryEntry {
	return copySlice(r.setup.RegistryEntries)
}

// DeleteEntries returns a copy of the decoded install-time delete entries.
func (r *Reader) DeleteEntries() []DeleteEntry {
	return copySlice(r.setup.DeleteEntries)
}

// UninstallDeleteEntries returns a copy of the decoded uninstall-time delete
// entries.
func (r *Reader) UninstallDeleteEntries() []DeleteEntry {
	return copySlice(r.setup.UninstallDeleteEntries)
}

// RunEntries returns a copy of the decoded install-time run entries.
func (r *Reader) RunEntries() []RunEntry {
	return copySlice(r.setup.RunEntries)
}

// UninstallRunEntries returns a copy of the decoded uninstall-time run
// entries.
func (r *Reader) UninstallRunEntries() []RunEntry {
	return copySlice(r.setup.UninstallRunEntries)
}

// DataEntries returns a copy of the decoded data entries.
func (r *Reader) DataEntries() []DataEntry {
	return copySlice(r.setup.DataEntries)
}

// Warnings returns the malformed but recoverable field values met during
// decoding.
func (r *Reader) Warnings() []error {
	return copySlice(r.setup.Warnings)
}

// DataOffset returns the absolute offset of the compressed file data inside
// the installer image.
func (r *Reader) DataOffset() int64 {
	return r.setup.Loader.DataOffset
}

// DataReader returns a reader positioned at the compressed file data region.
// Extraction tools decode it with the records from DataEntries.
func (r *Reader) DataReader() (io.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}

	start := r.setup.Loader.DataOffset

	return io.NewSectionReader(r.ra, start, r.size-start), nil
}

func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}

	out := make([]T, len(src))
	copy(out, src)

	return out
}
