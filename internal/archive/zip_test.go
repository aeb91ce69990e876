package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// writeTestZip builds a zip archive at path with the given entries.
// Entries ending in "/" become directories.
func writeTestZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		if name[len(name)-1] == '/' {
			if _, err := zw.Create(name); err != nil {
				t.Fatalf("create dir entry: %v", err)
			}
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

func TestUnzip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "demo.zip")
	writeTestZip(t, src, map[string]string{
		"demo/":                  "",
		"demo/pom.xml":           "<project/>",
		"demo/src/main/App.java": "class App {}",
		"demo/HELP.md":           "# Getting Started",
	})

	dest := filepath.Join(dir, "demo")
	if err := Unzip(src, dest); err != nil {
		t.Fatalf("Unzip: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "demo", "pom.xml"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(data) != "<project/>" {
		t.Errorf("pom.xml = %q", data)
	}

	if _, err := os.Stat(filepath.Join(dest, "demo", "src", "main", "App.java")); err != nil {
		t.Errorf("nested file missing: %v", err)
	}
}

func TestUnzip_RejectsEscapingEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "evil.zip")
	writeTestZip(t, src, map[string]string{
		"../escape.txt": "nope",
	})

	dest := filepath.Join(dir, "out")
	if err := Unzip(src, dest); err == nil {
		t.Fatal("expected error for entry escaping the destination")
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); !os.IsNotExist(err) {
		t.Error("escaping entry must not be written")
	}
}

func TestUnzip_MissingArchive(t *testing.T) {
	t.Parallel()

	if err := Unzip(filepath.Join(t.TempDir(), "absent.zip"), t.TempDir()); err == nil {
		t.Fatal("expected error for missing archive")
	}
}
