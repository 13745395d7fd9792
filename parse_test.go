package inno

import (
	"bytes"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// filetime of 1970-01-01 00:00:00 UTC.
const unixEpochFiletime = 116444736000000000

// buildLegacyHeaderPlain lays out a 1.3.21 setup header stream: header fields,
// no languages, wizard image blob, then any file entries.
func buildLegacyHeaderPlain(t *testing.T, version KnownVersion, fileEntries [][]byte, dataEntryCount uint32) []byte {
	t.Helper()

	var b fieldBuilder

	// AppName .. AppPublisherURL
	b.str("Test App")
	b.str("Test App 1.0")
	b.str("{TESTAPP}")
	b.str("Copyright (C) Test")
	b.str("Test Publisher")
	b.str("https://example.com")
	// AppSupportURL .. DefaultGroupName
	b.str("")
	b.str("")
	b.str("1.0")
	b.str(`{pf}\Test App`)
	b.str("Test App")
	b.str("") // uninstall icon name
	b.str("setup")
	// license trio
	b.str("license text")
	b.str("")
	b.str("")
	// UninstallFilesDir, UninstallName, UninstallIcon, AppMutex
	b.str("{app}")
	b.str("")
	b.str("")
	b.str("")

	// entry counts: directories, then files through uninstall run entries
	b.u32(0)
	b.u32(uint32(len(fileEntries)))
	b.u32(dataEntryCount)
	for range 7 {
		b.u32(0)
	}

	// windows version range: begin win 4.0, nt 4.0, no service pack; open end
	b.u16(0).u8(0).u8(4)
	b.u16(0).u8(0).u8(4)
	b.u8(0).u8(0)
	b.raw(make([]byte, 10))

	b.u32(0x00ff0000) // back color
	b.u32(0x000000ff) // back color 2
	b.u32(0x00c0c0c0) // image back color

	b.raw([]byte{0, 0, 0, 0}) // password crc32, unset

	b.u32(1 << 20) // extra disk space
	b.u8(0)        // uninstall log mode
	b.u8(0)        // dir exists warning

	b.raw(packFlags(t, headerFlagGates, version,
		uint64(FlagCreateAppDir|FlagWindowVisible|FlagUsePreviousAppDir)))

	// wizard data: single empty image blob
	b.u32(0)

	for _, fe := range fileEntries {
		b.raw(fe)
	}

	return b.bytes()
}

// buildLegacyFileEntry lays out one 1.3.21 file entry.
func buildLegacyFileEntry(t *testing.T, version KnownVersion, location uint32) []byte {
	t.Helper()

	var b fieldBuilder
	b.str("app.exe")           // source
	b.str(`{app}\app.exe`)     // destination
	b.str("")                  // install font name
	b.raw(make([]byte, 20))    // windows version range
	b.u32(location)            // data entry index
	b.u32(0x20)                // attributes
	b.u32(0)                   // external size
	b.u8(uint8(copyModeNormal))
	b.raw(packFlags(t, fileFlagGates, version, uint64(FileOverwriteReadOnly)))
	b.u8(uint8(FileUserFile))

	return b.bytes()
}

// buildLegacyDataEntry lays out one 1.3.21 data entry.
func buildLegacyDataEntry(t *testing.T, version KnownVersion) []byte {
	t.Helper()

	var b fieldBuilder
	b.u32(1).u32(1) // one-based slice numbers
	b.u32(4096)     // start offset
	b.u32(2000)     // size
	b.u32(1500)     // chunk size
	b.raw([]byte{0x11, 0x22, 0x33, 0x44})
	b.u64(unixEpochFiletime)
	b.u32(2).u32(3) // version ms/ls
	b.raw(packFlags(t, dataFlagGates, version, uint64(DataVersionInfoValid)))

	return b.bytes()
}

// buildSetupExe assembles a complete legacy installer image: loader pointer,
// offset table, version signature and both streams.
func buildSetupExe(t *testing.T, headerPlain, dataPlain []byte) []byte {
	t.Helper()

	const headerOffset = 0x80

	var table fieldBuilder
	table.raw([]byte("rDlPtS02\x87eVx"))
	table.u32(0)            // min setup size
	table.u32(0)            // exe offset
	table.u32(0)            // exe compressed size
	table.u32(0)            // exe uncompressed size
	table.u32(0)            // exe checksum
	table.u32(0)            // message offset
	table.u32(headerOffset) // header offset
	table.u32(0)            // data offset

	exe := buildLoaderExe(table.bytes())
	exe = append(exe, make([]byte, headerOffset-len(exe))...)

	sig := make([]byte, versionSignatureLen)
	copy(sig, "Inno Setup Setup Data (1.3.21)")
	exe = append(exe, sig...)

	exe = append(exe, buildLegacyStream(headerPlain)...)
	exe = append(exe, buildLegacyStream(dataPlain)...)

	return exe
}

// buildModernHeaderPlain lays out a 5.5.7 unicode setup header stream: header
// fields, any file entries, then the trailing wizard blobs.
func buildModernHeaderPlain(t *testing.T, version KnownVersion, fileEntries [][]byte, dataEntryCount uint32) []byte {
	t.Helper()

	var b fieldBuilder

	// AppName .. AppPublisherURL
	b.utf16str("Modern App")
	b.utf16str("Modern App 2.1")
	b.utf16str("{MODERNAPP}")
	b.utf16str("Copyright (C) Modern")
	b.utf16str("Modern Publisher")
	b.utf16str("https://example.com")
	b.utf16str("") // support phone
	// AppSupportURL .. DefaultGroupName
	b.utf16str("")
	b.utf16str("")
	b.utf16str("2.1")
	b.utf16str(`{pf}\Modern App`)
	b.utf16str("Modern App")
	b.utf16str("setup") // base filename
	// UninstallFilesDir, UninstallName, UninstallIcon, AppMutex
	b.utf16str("{app}")
	b.utf16str("")
	b.utf16str("")
	b.utf16str("")
	// DefaultUserName, DefaultUserOrganisation, DefaultSerial
	b.utf16str("")
	b.utf16str("")
	b.utf16str("")
	// AppReadmeFile, AppContact, AppComments, AppModifyPath
	b.utf16str("")
	b.utf16str("")
	b.utf16str("")
	b.utf16str("")
	b.utf16str("yes") // create uninstall registry key expression
	b.utf16str("yes") // uninstallable expression
	b.utf16str("")    // close applications filter
	b.utf16str("")    // setup mutex
	// license trio, codepage-encoded even on unicode builds
	b.str("modern license")
	b.str("")
	b.str("")
	b.u32(0) // compiled code blob

	// entry counts: language through directory, then file through
	// uninstall run entries
	for range 7 {
		b.u32(0)
	}
	b.u32(uint32(len(fileEntries)))
	b.u32(dataEntryCount)
	for range 7 {
		b.u32(0)
	}

	// windows version range: begin nt 5.1, no service pack; open end
	b.u16(0).u8(0).u8(0)
	b.u16(2600).u8(1).u8(5)
	b.u8(0).u8(0)
	b.raw(make([]byte, 10))

	b.u32(0x00ff0000) // back color
	b.u32(0x000000ff) // back color 2
	b.u8(uint8(AlphaIgnored))

	b.raw(make([]byte, 20)) // password sha-1, unset
	b.raw(make([]byte, 8))  // password salt

	b.u64(1 << 21) // extra disk space
	b.u32(1)       // slices per disk
	b.u8(0)        // uninstall log mode
	b.u8(0)        // dir exists warning
	b.u8(0)        // privileges required
	b.u8(0)        // show language dialog
	b.u8(0)        // language detection
	b.u8(uint8(CompressionLZMA1))
	b.u8(0).u8(0) // architecture bitmasks
	b.u8(0).u8(0) // disable dir and program group pages
	b.u64(0)      // uninstall display size

	b.raw(packFlags(t, headerFlagGates, version,
		uint64(FlagCreateAppDir|FlagWindowVisible|FlagUsePreviousAppDir)))

	for _, fe := range fileEntries {
		b.raw(fe)
	}

	// wizard data: one empty image blob and one empty small image blob
	b.u32(0)
	b.u32(0)

	return b.bytes()
}

// buildModernFileEntry lays out one 5.5.7 unicode file entry.
func buildModernFileEntry(t *testing.T, version KnownVersion, location uint32) []byte {
	t.Helper()

	var b fieldBuilder
	b.utf16str("modern.exe")
	b.utf16str(`{app}\modern.exe`)
	b.utf16str("") // install font name
	b.utf16str("") // strong assembly name
	// condition: components, tasks, languages, check, after and before install
	for range 6 {
		b.utf16str("")
	}
	b.raw(make([]byte, 20)) // windows version range
	b.u32(location)         // data entry index
	b.u32(0x20)             // attributes
	b.u64(0)                // external size
	b.u16(0xffff)           // permission index, unset
	b.raw(packFlags(t, fileFlagGates, version, uint64(FileOverwriteReadOnly|File64Bit)))
	b.u8(uint8(FileUserFile))

	return b.bytes()
}

// buildModernDataEntry lays out one 5.5.7 data entry with a compressed chunk.
func buildModernDataEntry(t *testing.T, version KnownVersion, sum []byte) []byte {
	t.Helper()

	var b fieldBuilder
	b.u32(0).u32(0) // slice range
	b.u32(4096)     // start offset
	b.u64(0)        // offset within the chunk
	b.u64(2000).u64(1500)
	b.raw(sum) // sha-1
	b.u64(unixEpochFiletime)
	b.u32(2).u32(3) // version ms/ls
	b.raw(packFlags(t, dataFlagGates, version,
		uint64(DataVersionInfoValid|DataChunkCompressed)))

	return b.bytes()
}

// buildModernSetupExe assembles a 5.5.7 unicode installer image: a
// crc-protected offset table and two sized LZMA1 streams stored without
// end-of-stream markers, the way the setup compiler writes them.
func buildModernSetupExe(t *testing.T, headerPlain, dataPlain []byte) []byte {
	t.Helper()

	const headerOffset = 0x80

	var covered fieldBuilder
	covered.raw([]byte("rDlPtS07\x87eVx"))
	covered.u32(0)            // min setup size
	covered.u32(0)            // exe offset
	covered.u32(0)            // exe uncompressed size
	covered.u32(0)            // exe checksum
	covered.u32(headerOffset) // header offset
	covered.u32(0)            // data offset

	var table fieldBuilder
	table.raw(covered.bytes())
	table.u32(crc32.ChecksumIEEE(covered.bytes()))

	exe := buildLoaderExe(table.bytes())
	exe = append(exe, make([]byte, headerOffset-len(exe))...)

	sig := make([]byte, versionSignatureLen)
	copy(sig, "Inno Setup Setup Data (5.5.7) (u)")
	exe = append(exe, sig...)

	exe = append(exe, buildSizedLZMAStream(t, headerPlain, false)...)
	exe = append(exe, buildSizedLZMAStream(t, dataPlain, false)...)

	return exe
}

func TestReader_ModernInstaller(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (5.5.7) (u)")

	sum := bytes.Repeat([]byte{0xab}, 20)
	fileEntry := buildModernFileEntry(t, version, 0)
	headerPlain := buildModernHeaderPlain(t, version, [][]byte{fileEntry}, 1)
	dataPlain := buildModernDataEntry(t, version, sum)
	exe := buildModernSetupExe(t, headerPlain, dataPlain)

	r, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if err != nil {
		t.Fatalf("NewReaderFromReaderAt: %v", err)
	}
	defer r.Close()

	if got := r.Version(); got != version {
		t.Errorf("version %+v, want %+v", got, version)
	}
	if !r.Version().Unicode {
		t.Error("version must be unicode")
	}
	loader := r.Loader()
	if loader.Version != ver(4, 1, 6) {
		t.Errorf("loader version %s", loader.Version)
	}
	if loader.HeaderOffset != 0x80 {
		t.Errorf("header offset %#x, want 0x80", loader.HeaderOffset)
	}

	h := r.Header()
	if h.AppName != "Modern App" {
		t.Errorf("app name %q", h.AppName)
	}
	if h.DefaultDirName != `{pf}\Modern App` {
		t.Errorf("default dir %q", h.DefaultDirName)
	}
	if h.LicenseText != "modern license" {
		t.Errorf("license %q", h.LicenseText)
	}
	if h.FileCount != 1 || h.DataEntryCount != 1 {
		t.Errorf("counts file=%d data=%d, want 1/1", h.FileCount, h.DataEntryCount)
	}
	if h.WindowsVersionRange.Begin.NT.Major != 5 || h.WindowsVersionRange.Begin.NT.Minor != 1 {
		t.Errorf("nt begin %d.%d, want 5.1", h.WindowsVersionRange.Begin.NT.Major, h.WindowsVersionRange.Begin.NT.Minor)
	}
	if h.Compression != CompressionLZMA1 {
		t.Errorf("compression %s, want lzma1", h.Compression)
	}
	if h.ImageAlphaFormat != AlphaIgnored {
		t.Errorf("image alpha format %d", h.ImageAlphaFormat)
	}
	if len(h.PasswordSalt) != 8 {
		t.Errorf("password salt %d bytes, want 8", len(h.PasswordSalt))
	}
	if h.ExtraDiskSpaceRequired != 1<<21 || h.SlicesPerDisk != 1 {
		t.Errorf("disk space %d, slices %d", h.ExtraDiskSpaceRequired, h.SlicesPerDisk)
	}
	if !h.Flags.Has(FlagCreateAppDir | FlagWindowVisible | FlagUsePreviousAppDir) {
		t.Errorf("flags %#x", h.Flags)
	}

	files := r.Files()
	if len(files) != 1 {
		t.Fatalf("%d files, want 1", len(files))
	}
	f := files[0]
	if f.Source != "modern.exe" || f.Destination != `{app}\modern.exe` {
		t.Errorf("file %q -> %q", f.Source, f.Destination)
	}
	if !f.HasLocation() || f.Location != 0 {
		t.Errorf("location %d", f.Location)
	}
	if f.Flags&FileOverwriteReadOnly == 0 || f.Flags&File64Bit == 0 {
		t.Errorf("file flags %#x", f.Flags)
	}
	if f.Permission != -1 {
		t.Errorf("permission %d, want -1", f.Permission)
	}

	entries := r.DataEntries()
	if len(entries) != 1 {
		t.Fatalf("%d data entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Checksum.Kind != ChecksumSHA1 || !bytes.Equal(e.Checksum.Sum, sum) {
		t.Errorf("checksum %s %x", e.Checksum.Kind, e.Checksum.Sum)
	}
	if e.StartOffset != 4096 || e.Size != 2000 || e.ChunkSize != 1500 {
		t.Errorf("layout %d/%d/%d", e.StartOffset, e.Size, e.ChunkSize)
	}
	if e.Compression != CompressionLZMA1 {
		t.Errorf("data compression %s, want lzma1", e.Compression)
	}
	if e.FileVersion != 2<<32|3 {
		t.Errorf("file version %#x", e.FileVersion)
	}

	if ws := r.Warnings(); len(ws) != 0 {
		t.Errorf("unexpected warnings %q", ws)
	}
}

func TestReader_LegacyInstaller(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	fileEntry := buildLegacyFileEntry(t, version, 0)
	headerPlain := buildLegacyHeaderPlain(t, version, [][]byte{fileEntry}, 1)
	dataPlain := buildLegacyDataEntry(t, version)
	exe := buildSetupExe(t, headerPlain, dataPlain)

	r, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if err != nil {
		t.Fatalf("NewReaderFromReaderAt: %v", err)
	}
	defer r.Close()

	if got := r.Version(); got != version {
		t.Errorf("version %+v, want %+v", got, version)
	}
	if loader := r.Loader(); loader.HeaderOffset != 0x80 {
		t.Errorf("header offset %#x, want 0x80", loader.HeaderOffset)
	}

	h := r.Header()
	if h.AppName != "Test App" {
		t.Errorf("app name %q", h.AppName)
	}
	if h.BaseFilename != "setup" {
		t.Errorf("base filename %q", h.BaseFilename)
	}
	if h.LicenseText != "license text" {
		t.Errorf("license %q", h.LicenseText)
	}
	if h.FileCount != 1 || h.DataEntryCount != 1 {
		t.Errorf("counts file=%d data=%d, want 1/1", h.FileCount, h.DataEntryCount)
	}
	if h.WindowsVersionRange.Begin.NT.Major != 4 {
		t.Errorf("nt major %d, want 4", h.WindowsVersionRange.Begin.NT.Major)
	}
	if h.Compression != CompressionZlib {
		t.Errorf("compression %s, want zlib", h.Compression)
	}
	if h.SlicesPerDisk != 1 {
		t.Errorf("slices per disk %d, want 1", h.SlicesPerDisk)
	}
	if h.ExtraDiskSpaceRequired != 1<<20 {
		t.Errorf("extra disk space %d", h.ExtraDiskSpaceRequired)
	}
	if h.UninstallStyle != WizardModern {
		t.Error("uninstall style must default to modern")
	}
	if h.ShowLanguageDialog != AutoBoolNo {
		t.Errorf("show language dialog %d, want no", h.ShowLanguageDialog)
	}
	if h.DisableDirPage != AutoBoolNo || h.DisableProgramGroupPage != AutoBoolNo {
		t.Error("dir page settings must fold from unset flags")
	}

	wantFlags := FlagCreateAppDir | FlagWindowVisible | FlagUsePreviousAppDir |
		FlagAllowCancelDuringInstall | FlagAllowNetworkDrive
	if !h.Flags.Has(wantFlags) {
		t.Errorf("flags %#x missing %#x", h.Flags, wantFlags)
	}
	if h.Flags.Has(FlagPassword) {
		t.Error("password flag set unexpectedly")
	}

	files := r.Files()
	if len(files) != 1 {
		t.Fatalf("%d files, want 1", len(files))
	}
	f := files[0]
	if f.Source != "app.exe" || f.Destination != `{app}\app.exe` {
		t.Errorf("file %q -> %q", f.Source, f.Destination)
	}
	if !f.HasLocation() || f.Location != 0 {
		t.Errorf("location %d", f.Location)
	}
	if f.Flags&FileOverwriteReadOnly == 0 || f.Flags&FilePromptIfOlder == 0 {
		t.Errorf("file flags %#x, want overwrite-readonly and folded prompt-if-older", f.Flags)
	}
	if f.Kind != FileUserFile {
		t.Errorf("file kind %d", f.Kind)
	}
	if f.Permission != -1 {
		t.Errorf("permission %d, want -1", f.Permission)
	}

	entries := r.DataEntries()
	if len(entries) != 1 {
		t.Fatalf("%d data entries, want 1", len(entries))
	}
	e := entries[0]
	if e.FirstSlice != 0 || e.LastSlice != 0 {
		t.Errorf("slices %d..%d, want 0..0 after one-based decrement", e.FirstSlice, e.LastSlice)
	}
	if e.StartOffset != 4096 || e.Size != 2000 || e.ChunkSize != 1500 {
		t.Errorf("layout %d/%d/%d", e.StartOffset, e.Size, e.ChunkSize)
	}
	if e.Checksum.Kind != ChecksumAdler32 || !bytes.Equal(e.Checksum.Sum, []byte{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("checksum %s %x", e.Checksum.Kind, e.Checksum.Sum)
	}
	if e.FileVersion != 2<<32|3 {
		t.Errorf("file version %#x", e.FileVersion)
	}
	if e.Flags&DataVersionInfoValid == 0 || e.Flags&DataChunkCompressed == 0 {
		t.Errorf("data flags %#x", e.Flags)
	}
	if e.Compression != CompressionZlib {
		t.Errorf("data compression %s, want zlib", e.Compression)
	}
	if got := e.ModTime(); !got.Equal(time.Unix(0, 0)) {
		t.Errorf("mod time %v, want unix epoch", got)
	}

	if w := r.Warnings(); len(w) != 0 {
		t.Errorf("unexpected warnings: %v", w)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestOpen_File(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	headerPlain := buildLegacyHeaderPlain(t, version, nil, 0)
	exe := buildSetupExe(t, headerPlain, nil)

	path := filepath.Join(t.TempDir(), "setup.exe")
	if err := os.WriteFile(path, exe, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.Header().AppName != "Test App" {
		t.Errorf("app name %q", r.Header().AppName)
	}
	if len(r.DataEntries()) != 0 {
		t.Errorf("%d data entries, want none", len(r.DataEntries()))
	}
}

func TestParse_TrailingHeaderData(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	headerPlain := buildLegacyHeaderPlain(t, version, nil, 0)
	headerPlain = append(headerPlain, 0xAA)
	exe := buildSetupExe(t, headerPlain, nil)

	_, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("got %v, want ErrMalformedHeader", err)
	}
}

func TestParse_DanglingFileLocation(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	fileEntry := buildLegacyFileEntry(t, version, 5)
	headerPlain := buildLegacyHeaderPlain(t, version, [][]byte{fileEntry}, 1)
	dataPlain := buildLegacyDataEntry(t, version)
	exe := buildSetupExe(t, headerPlain, dataPlain)

	_, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if !errors.Is(err, ErrDanglingReference) {
		t.Fatalf("got %v, want ErrDanglingReference", err)
	}
}

func TestParse_ExternalFileLocation(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	fileEntry := buildLegacyFileEntry(t, version, noLocation)
	headerPlain := buildLegacyHeaderPlain(t, version, [][]byte{fileEntry}, 0)
	exe := buildSetupExe(t, headerPlain, nil)

	r, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if err != nil {
		t.Fatalf("NewReaderFromReaderAt: %v", err)
	}
	defer r.Close()

	if r.Files()[0].HasLocation() {
		t.Error("external file must have no location")
	}
}

func TestDataReader_AfterClose(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	headerPlain := buildLegacyHeaderPlain(t, version, nil, 0)
	exe := buildSetupExe(t, headerPlain, nil)

	r, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if err != nil {
		t.Fatalf("NewReaderFromReaderAt: %v", err)
	}

	if _, err := r.DataReader(); err != nil {
		t.Fatalf("DataReader: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := r.DataReader(); !errors.Is(err, ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestParse_Deterministic(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	fileEntry := buildLegacyFileEntry(t, version, 0)
	headerPlain := buildLegacyHeaderPlain(t, version, [][]byte{fileEntry}, 1)
	dataPlain := buildLegacyDataEntry(t, version)
	exe := buildSetupExe(t, headerPlain, dataPlain)

	first, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	defer first.Close()

	second, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	defer second.Close()

	if !reflect.DeepEqual(first.Setup(), second.Setup()) {
		t.Error("repeated decodes disagree")
	}
}

func TestParse_UnknownVersionSignature(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")

	headerPlain := buildLegacyHeaderPlain(t, version, nil, 0)
	exe := buildSetupExe(t, headerPlain, nil)
	copy(exe[0x80:], "Inno Setup Setup Data (9.9.9)\x00")

	_, err := NewReaderFromReaderAt(bytes.NewReader(exe), int64(len(exe)))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("got %v, want ErrUnsupportedVersion", err)
	}
}
