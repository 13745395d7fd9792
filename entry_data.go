// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import "time"

// DataFlags is the decoded data entry flag set.
type DataFlags uint16

const (
	DataVersionInfoValid DataFlags = 1 << iota
	DataVersionInfoNotValid
	DataTimestampInUTC
	DataIsUninstallerExe
	DataCallInstructionOptimized
	DataTouch
	DataChunkEncrypted
	DataChunkCompressed
	DataSolidBreak
	DataSign
	DataSignOnce

	DataBzipped DataFlags = 1 << 15
)

// ChecksumKind identifies the digest algorithm guarding a stored file.
type ChecksumKind uint8

const (
	ChecksumAdler32 ChecksumKind = iota
	ChecksumCRC32
	ChecksumMD5
	ChecksumSHA1
	ChecksumSHA256
)

func (k ChecksumKind) String() string {
	switch k {
	case ChecksumAdler32:
		return "adler32"
	case ChecksumCRC32:
		return "crc32"
	case ChecksumMD5:
		return "md5"
	case ChecksumSHA1:
		return "sha1"
	case ChecksumSHA256:
		return "sha256"
	default:
		return "unknown"
	}
}

// digestLen is the stored digest size in bytes.
func (k ChecksumKind) digestLen() int {
	switch k {
	case ChecksumMD5:
		return 16
	case ChecksumSHA1:
		return 20
	case ChecksumSHA256:
		return 32
	default:
		return 4
	}
}

// Checksum is the stored digest of one file's uncompressed bytes.
type Checksum struct {
	Kind ChecksumKind `json:"kind" yaml:"kind"`
	Sum  []byte       `json:"sum" yaml:"sum"`
}

// EncryptionMethod identifies the cipher protecting a chunk.
type EncryptionMethod uint8

const (
	EncryptionNone EncryptionMethod = iota
	EncryptionARC4MD5
	EncryptionARC4SHA1
	EncryptionXChaCha20
)

func (m EncryptionMethod) String() string {
	switch m {
	case EncryptionNone:
		return "none"
	case EncryptionARC4MD5:
		return "arc4-md5"
	case EncryptionARC4SHA1:
		return "arc4-sha1"
	case EncryptionXChaCha20:
		return "xchacha20"
	default:
		return "unknown"
	}
}

// CompressionFilter is the executable call-instruction filter applied before
// compression.
type CompressionFilter uint8

const (
	FilterNone CompressionFilter = iota
	FilterInstruction4108
	FilterInstruction5200
	FilterInstruction5309
)

// SignMode controls Authenticode signing of the extracted file.
type SignMode uint8

const (
	SignNoSetting SignMode = iota
	SignYes
	SignOnce
	SignCheck
)

var dataFlagGates = []flagGate{
	{flag: uint64(DataVersionInfoValid)},
	{flag: uint64(DataVersionInfoNotValid), until: ver(6, 4, 3)},
	{flag: uint64(DataBzipped), from: ver(2, 0, 17), until: ver(4, 0, 1)},
	{flag: uint64(DataTimestampInUTC), from: ver(4, 0, 10)},
	{flag: uint64(DataIsUninstallerExe), from: ver(4, 2, 0), until: ver(6, 4, 3)},
	{flag: uint64(DataCallInstructionOptimized), from: ver(4, 1, 8)},
	{flag: uint64(DataTouch), from: ver(4, 2, 0), until: ver(6, 4, 3)},
	{flag: uint64(DataChunkEncrypted), from: ver(4, 2, 2)},
	{flag: uint64(DataChunkCompressed), from: ver(4, 2, 5)},
	{flag: uint64(DataSolidBreak), from: ver(5, 1, 13), until: ver(6, 4, 3)},
	{flag: uint64(DataSign), from: ver(5, 5, 7), until: ver(6, 3, 0)},
	{flag: uint64(DataSignOnce), from: ver(5, 5, 7), until: ver(6, 3, 0)},
}

// DataEntry locates one stored file inside the data section. Files sharing a
// chunk are solid-compressed together; Offset addresses the file within the
// decompressed chunk.
type DataEntry struct {
	FirstSlice uint32 `json:"firstSlice" yaml:"firstSlice"`
	LastSlice  uint32 `json:"lastSlice" yaml:"lastSlice"`
	// StartOffset is the chunk's position within its slice.
	StartOffset uint64 `json:"startOffset" yaml:"startOffset"`
	// Offset is the file's position inside the decompressed chunk.
	Offset uint64 `json:"offset" yaml:"offset"`
	// Size is the file size before any instruction filter is undone.
	Size uint64 `json:"size" yaml:"size"`
	// ChunkSize is the stored (compressed) size of the whole chunk.
	ChunkSize   uint64            `json:"chunkSize" yaml:"chunkSize"`
	Checksum    Checksum          `json:"checksum" yaml:"checksum"`
	FileTime    uint64            `json:"fileTime" yaml:"fileTime"`
	FileVersion uint64            `json:"fileVersion" yaml:"fileVersion"`
	Flags       DataFlags         `json:"flags" yaml:"flags"`
	Compression CompressionMethod `json:"compression" yaml:"compression"`
	Encryption  EncryptionMethod  `json:"encryption" yaml:"encryption"`
	Filter      CompressionFilter `json:"filter" yaml:"filter"`
	Sign        SignMode          `json:"sign" yaml:"sign"`
}

// filetimeEpoch is the Win32 FILETIME epoch as Unix seconds (1601-01-01).
const filetimeEpoch = -11644473600

// ModTime converts the stored Win32 FILETIME to wall-clock time.
func (e *DataEntry) ModTime() time.Time {
	secs := int64(e.FileTime/10_000_000) + filetimeEpoch
	nanos := int64(e.FileTime%10_000_000) * 100

	return time.Unix(secs, nanos).UTC()
}

func readDataEntry(fr *fieldReader, h *Header) (DataEntry, error) {
	var e DataEntry
	var err error

	if e.FirstSlice, err = fr.readU32(); err != nil {
		return e, err
	}
	if e.LastSlice, err = fr.readU32(); err != nil {
		return e, err
	}
	if fr.caps.DataSliceDecrement && e.FirstSlice >= 1 && e.LastSlice >= 1 {
		e.FirstSlice--
		e.LastSlice--
	}

	if fr.caps.DataSubOffset64 {
		if e.StartOffset, err = fr.readU64(); err != nil {
			return e, err
		}
	} else {
		off, err := fr.readU32()
		if err != nil {
			return e, err
		}
		e.StartOffset = uint64(off)
	}

	if fr.caps.DataHasFileOffset {
		if e.Offset, err = fr.readU64(); err != nil {
			return e, err
		}
	}

	if fr.caps.DataSizes64 {
		if e.Size, err = fr.readU64(); err != nil {
			return e, err
		}
		if e.ChunkSize, err = fr.readU64(); err != nil {
			return e, err
		}
	} else {
		size, err := fr.readU32()
		if err != nil {
			return e, err
		}
		chunkSize, err := fr.readU32()
		if err != nil {
			return e, err
		}
		e.Size, e.ChunkSize = uint64(size), uint64(chunkSize)
	}

	e.Checksum.Kind = fr.caps.DataChecksum
	if e.Checksum.Sum, err = fr.readN(e.Checksum.Kind.digestLen()); err != nil {
		return e, err
	}

	if e.FileTime, err = fr.readU64(); err != nil {
		return e, err
	}

	versionMS, err := fr.readU32()
	if err != nil {
		return e, err
	}
	versionLS, err := fr.readU32()
	if err != nil {
		return e, err
	}
	e.FileVersion = uint64(versionMS)<<32 | uint64(versionLS)

	flags, err := fr.readFlagSet(dataFlagGates)
	if err != nil {
		return e, err
	}
	e.Flags = DataFlags(flags)

	if fr.caps.DataCompressedAll {
		e.Flags |= DataChunkCompressed
	}

	if fr.caps.DataHasSignMode {
		mode, err := fr.readEnumByte("sign mode", uint8(SignCheck))
		if err != nil {
			return e, err
		}
		e.Sign = SignMode(mode)
	} else if e.Flags&DataSignOnce != 0 {
		e.Sign = SignOnce
	} else if e.Flags&DataSign != 0 {
		e.Sign = SignYes
	}

	if e.Flags&DataChunkCompressed != 0 {
		e.Compression = h.Compression
	} else {
		e.Compression = CompressionStored
	}
	if e.Flags&DataBzipped != 0 {
		e.Flags |= DataChunkCompressed
		e.Compression = CompressionBZip2
	}

	if e.Flags&DataChunkEncrypted != 0 {
		switch {
		case fr.version.atLeast(ver(6, 4, 0)):
			e.Encryption = EncryptionXChaCha20
		case fr.version.atLeast(ver(5, 3, 9)):
			e.Encryption = EncryptionARC4SHA1
		default:
			e.Encryption = EncryptionARC4MD5
		}
	}

	if e.Flags&DataCallInstructionOptimized != 0 {
		switch {
		case fr.version.before(ver(5, 2, 0)):
			e.Filter = FilterInstruction4108
		case fr.version.before(ver(5, 3, 9)):
			e.Filter = FilterInstruction5200
		default:
			e.Filter = FilterInstruction5309
		}
	}

	return e, nil
}
