package ops

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBackupRestoreSaves_RoundTrip(t *testing.T) {
	src := filepath.Join(t.TempDir(), "data")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("mkdir src: %v", err)
	}

	saves := map[string]string{
		"save.json":                    `{"saved_at":"2026-08-31T10:00:00Z","current_stage":42,"gold":100}`,
		"save-20260830T090000Z.json":   `{"saved_at":"2026-08-30T09:00:00Z","current_stage":40,"gold":90}`,
	}
	for name, content := range saves {
		if err := os.WriteFile(filepath.Join(src, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	// Non-save files must not land in the archive.
	if err := os.WriteFile(filepath.Join(src, "save.json.tmp-123"), []byte("partial"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("scratch"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	if err := BackupSaves(src, archive); err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	restoreDir := filepath.Join(t.TempDir(), "restore")
	if err := RestoreSaves(archive, restoreDir); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	got := map[string]string{}
	entries, err := os.ReadDir(restoreDir)
	if err != nil {
		t.Fatalf("read restore dir: %v", err)
	}
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(restoreDir, e.Name()))
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		got[e.Name()] = string(b)
	}

	if !reflect.DeepEqual(saves, got) {
		t.Fatalf("restored files mismatch:\nwant=%v\ngot=%v", saves, got)
	}

	srcDigest, err := DirDigest(src)
	if err != nil {
		t.Fatalf("digest src: %v", err)
	}
	restoreDigest, err := DirDigest(restoreDir)
	if err != nil {
		t.Fatalf("digest restore: %v", err)
	}
	if srcDigest != restoreDigest {
		t.Fatalf("digest mismatch: src=%s restored=%s", srcDigest, restoreDigest)
	}
}

func TestBackupSaves_EmptyDataDir(t *testing.T) {
	if err := BackupSaves(t.TempDir(), filepath.Join(t.TempDir(), "out.tar.gz")); err == nil {
		t.Fatalf("expected backup of empty data dir to fail")
	}
}

func TestVerifySave(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "save.json")
	if err := os.WriteFile(good, []byte(`{"saved_at":"2026-08-31T10:00:00Z","current_stage":3}`), 0o644); err != nil {
		t.Fatalf("write good save: %v", err)
	}
	if err := VerifySave(good); err != nil {
		t.Fatalf("expected good save to verify: %v", err)
	}

	truncated := filepath.Join(dir, "truncated.json")
	if err := os.WriteFile(truncated, []byte(`{"saved_at":`), 0o644); err != nil {
		t.Fatalf("write truncated save: %v", err)
	}
	if err := VerifySave(truncated); err == nil {
		t.Fatalf("expected truncated save to fail verification")
	}

	missing := filepath.Join(dir, "missing-fields.json")
	if err := os.WriteFile(missing, []byte(`{"gold":5}`), 0o644); err != nil {
		t.Fatalf("write save: %v", err)
	}
	if err := VerifySave(missing); err == nil {
		t.Fatalf("expected save without snapshot fields to fail verification")
	}
}

func TestRestoreSaves_RejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.tar.gz")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	if err := tw.WriteHeader(&tar.Header{
		Name:     "../escape.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len("bad")),
	}); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if _, err := tw.Write([]byte("bad")); err != nil {
		t.Fatalf("write body: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	if err := RestoreSaves(archive, filepath.Join(t.TempDir(), "out")); err == nil {
		t.Fatalf("expected restore to reject path traversal archive")
	}
}
