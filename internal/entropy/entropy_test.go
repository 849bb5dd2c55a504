package entropy

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDeviceReadFull(t *testing.T) {
	src := NewDevice()
	buf := make([]byte, 64)
	if err := src.ReadFull(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Equal(buf, make([]byte, 64)) {
		t.Error("64 bytes from the OS CSPRNG should not all be zero")
	}
}

func TestSeededDeterminism(t *testing.T) {
	a, err := NewSeeded([]byte("seed material"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSeeded([]byte("seed material"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bufA := make([]byte, 128)
	bufB := make([]byte, 128)
	if err := a.ReadFull(bufA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.ReadFull(bufB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(bufA, bufB) {
		t.Error("same seed must produce the same stream")
	}

	c, err := NewSeeded([]byte("different seed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bufC := make([]byte, 128)
	if err := c.ReadFull(bufC); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Equal(bufA, bufC) {
		t.Error("different seeds must produce different streams")
	}
}

func TestSeededStreamAdvances(t *testing.T) {
	src, err := NewSeeded([]byte("seed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := make([]byte, 32)
	second := make([]byte, 32)
	if err := src.ReadFull(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := src.ReadFull(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Error("consecutive reads should advance the keystream")
	}
}

func TestByte(t *testing.T) {
	src, err := NewSeeded([]byte("seed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stream := make([]byte, 3)
	ref, _ := NewSeeded([]byte("seed"))
	if err := ref.ReadFull(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		b, err := Byte(src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b != stream[i] {
			t.Errorf("Byte() draw %d = %#x, want %#x", i, b, stream[i])
		}
	}
}

func TestNewSeededFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed")
	if err := os.WriteFile(path, []byte("file seed"), 0o600); err != nil {
		t.Fatal(err)
	}

	fromFile, err := NewSeededFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	direct, err := NewSeeded([]byte("file seed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := make([]byte, 16)
	b := make([]byte, 16)
	if err := fromFile.ReadFull(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := direct.ReadFull(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("file-seeded stream must match a stream seeded with the file contents")
	}
}

func TestNewSeededFromFileMissing(t *testing.T) {
	_, err := NewSeededFromFile(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing seed file")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error should wrap ErrUnavailable, got %v", err)
	}
}
