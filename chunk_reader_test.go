package inno

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestChunkReader_MultiChunk(t *testing.T) {
	plain := bytes.Repeat([]byte("setup data "), 1000) // > 2 chunks
	region := chunkRegion(plain)

	cr := newChunkReader(bytes.NewReader(region), int64(len(region)))
	got, err := io.ReadAll(cr)
	if err != nil {
		t.Fatalf("read chunked region: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("reassembled %d bytes, want %d", len(got), len(plain))
	}
}

func TestChunkReader_ShortFinalChunk(t *testing.T) {
	plain := []byte("short")
	region := chunkRegion(plain)

	cr := newChunkReader(bytes.NewReader(region), int64(len(region)))
	got, err := io.ReadAll(cr)
	if err != nil {
		t.Fatalf("read chunked region: %v", err)
	}
	if string(got) != "short" {
		t.Fatalf("got %q, want %q", got, "short")
	}
}

func TestChunkReader_ChecksumMismatch(t *testing.T) {
	plain := []byte("payload under test")
	region := chunkRegion(plain)
	region[5] ^= 0xff // corrupt payload, keep stored checksum

	cr := newChunkReader(bytes.NewReader(region), int64(len(region)))
	if _, err := io.ReadAll(cr); !errors.Is(err, ErrChunkChecksumMismatch) {
		t.Fatalf("got %v, want ErrChunkChecksumMismatch", err)
	}
}

func TestChunkReader_TrailingBytes(t *testing.T) {
	plain := bytes.Repeat([]byte{0xab}, chunkSize) // exactly one full chunk
	region := chunkRegion(plain)
	region = append(region, 0, 0, 0) // not enough for another checksum

	cr := newChunkReader(bytes.NewReader(region), int64(len(region)))
	if _, err := io.ReadAll(cr); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("got %v, want ErrTruncatedInput", err)
	}
}

func TestChunkReader_TruncatedPayload(t *testing.T) {
	plain := []byte("payload that gets cut off mid chunk")
	region := chunkRegion(plain)

	cr := newChunkReader(bytes.NewReader(region[:len(region)-4]), int64(len(region)))
	if _, err := io.ReadAll(cr); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("got %v, want ErrTruncatedInput", err)
	}
}
