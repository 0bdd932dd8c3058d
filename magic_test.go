package magickit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// These tests exercise the real libmagic binding and need a system
// magic database, which every libmagic installation ships with.

func newTestMagic(t *testing.T, opts ...Option) *Magic {
	t.Helper()
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestVersion(t *testing.T) {
	if v := Version(); v <= 0 {
		t.Errorf("Version() = %d, want > 0", v)
	}
}

func TestBuffer(t *testing.T) {
	m := newTestMagic(t)

	desc, err := m.Buffer([]byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if !strings.HasPrefix(desc, "PDF document") {
		t.Errorf("Buffer(pdf header) = %q, want PDF document prefix", desc)
	}
	if !(TypeInfo{Description: desc}).IsPDF() {
		t.Errorf("IsPDF() = false for %q", desc)
	}
}

func TestBufferEmpty(t *testing.T) {
	m := newTestMagic(t)

	desc, err := m.Buffer(nil)
	if err != nil {
		t.Fatalf("Buffer(nil): %v", err)
	}
	if desc != "empty" {
		t.Errorf("Buffer(nil) = %q, want %q", desc, "empty")
	}
}

func TestBufferMIME(t *testing.T) {
	m := newTestMagic(t, WithMIMEType())

	mime, err := m.Buffer([]byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if mime != "application/pdf" {
		t.Errorf("Buffer(pdf header) = %q, want application/pdf", mime)
	}

	mime, err = m.Buffer([]byte("plain old text\n"))
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if !strings.HasPrefix(mime, "text/plain") {
		t.Errorf("Buffer(text) = %q, want text/plain prefix", mime)
	}
}

func TestFile(t *testing.T) {
	m := newTestMagic(t)

	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n%fake minimal pdf\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	desc, err := m.File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if !strings.HasPrefix(desc, "PDF document") {
		t.Errorf("File(pdf) = %q, want PDF document prefix", desc)
	}
}

func TestFileMissing(t *testing.T) {
	m := newTestMagic(t)

	_, err := m.File(filepath.Join(t.TempDir(), "missing.bin"))
	if !os.IsNotExist(err) {
		t.Errorf("File(missing) = %v, want not-exist error", err)
	}
}

func TestSetFlags(t *testing.T) {
	m := newTestMagic(t)

	if err := m.SetFlags(FlagMIMEType); err != nil {
		t.Fatalf("SetFlags: %v", err)
	}
	if m.Flags() != FlagMIMEType {
		t.Errorf("Flags() = %s, want %s", m.Flags(), FlagMIMEType)
	}

	mime, err := m.Buffer([]byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if mime != "application/pdf" {
		t.Errorf("Buffer after SetFlags = %q, want application/pdf", mime)
	}
}

func TestClose(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if _, err := m.Buffer([]byte("x")); !IsClosed(err) {
		t.Errorf("Buffer after Close = %v, want ErrClosed", err)
	}

	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := m.File(path); !IsClosed(err) {
		t.Errorf("File after Close = %v, want ErrClosed", err)
	}
	if err := m.SetFlags(FlagMIMEType); !IsClosed(err) {
		t.Errorf("SetFlags after Close = %v, want ErrClosed", err)
	}
}

func TestLoadInvalidDatabase(t *testing.T) {
	_, err := New(WithDatabase(filepath.Join(t.TempDir(), "nonexistent.mgc")))
	if err == nil {
		t.Fatal("New with nonexistent database succeeded")
	}

	var magicErr *MagicError
	if !errors.As(err, &magicErr) {
		t.Fatalf("error type = %T, want *MagicError", err)
	}
	if magicErr.Op != "load" {
		t.Errorf("Op = %q, want load", magicErr.Op)
	}
}

func TestFromBuffer(t *testing.T) {
	info, err := FromBuffer([]byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("FromBuffer: %v", err)
	}
	if !info.IsPDF() {
		t.Errorf("IsPDF() = false for %q", info.Description)
	}
	if info.Category() != CategoryPDF {
		t.Errorf("Category() = %q, want pdf", info.Category())
	}

	mime, err := MIMEFromBuffer([]byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("MIMEFromBuffer: %v", err)
	}
	if mime != "application/pdf" {
		t.Errorf("MIMEFromBuffer = %q, want application/pdf", mime)
	}
}

func TestScanWithRealMagic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("some plain text\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := newTestMagic(t)
	result, err := NewScanner(m).Scan(t.Context(), dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if result.Tally[CategoryPDF] != 1 {
		t.Errorf("Tally[pdf] = %d, want 1", result.Tally[CategoryPDF])
	}
	if result.Tally[CategoryText] != 1 {
		t.Errorf("Tally[text] = %d, want 1", result.Tally[CategoryText])
	}
}
