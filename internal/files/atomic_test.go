package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWrite_ReplacesAndCleansUp(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.ass")

	if err := AtomicWrite(path, []byte("first"), 0644); err != nil {
		t.Fatalf("initial write failed: %v", err)
	}
	if err := AtomicWrite(path, []byte("second"), 0644); err != nil {
		t.Fatalf("replacement write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected replaced content, got %q", string(data))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "assctx-") && strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("leaked temp file: %s", entry.Name())
		}
	}
}

func TestAtomicWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.ass")
	if err := AtomicWrite(path, []byte("x"), 0644); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
