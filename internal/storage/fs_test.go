package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsDir(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fs.IsDir(dir) {
		t.Errorf("IsDir(%q) = false", dir)
	}
	if fs.IsDir(file) {
		t.Error("regular file reported as directory")
	}
	if fs.IsDir(filepath.Join(dir, "missing")) {
		t.Error("missing path reported as directory")
	}
	if fs.IsDir("") {
		t.Error("empty path reported as directory")
	}
}

func TestIsDir_Symlink(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if !fs.IsDir(link) {
		t.Error("symlink to directory should count as directory")
	}
}

func TestCanEnter(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	if !fs.CanEnter(dir) {
		t.Errorf("CanEnter(%q) = false", dir)
	}
	file := filepath.Join(dir, "file")
	_ = os.WriteFile(file, []byte("x"), 0o755)
	if fs.CanEnter(file) {
		t.Error("executable file is not enterable")
	}
	if fs.CanEnter(filepath.Join(dir, "missing")) {
		t.Error("missing dir is not enterable")
	}
}

func TestCanEnter_NoSearchPermission(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	fs := NewFS()
	locked := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(locked, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o755) })
	if fs.CanEnter(locked) {
		t.Error("directory without x permission should not be enterable")
	}
}

func TestGetwd(t *testing.T) {
	wd, err := NewFS().Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if !filepath.IsAbs(wd) {
		t.Errorf("Getwd = %q, want absolute", wd)
	}
}
