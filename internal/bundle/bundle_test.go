package bundle

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spec-kit/internal/config"
	"spec-kit/internal/copier"
)

func TestEmbeddedContainsTemplateTree(t *testing.T) {
	fsys := Embedded()

	for _, dir := range []string{"memory", "modes", "scripts", "templates"} {
		info, err := fs.Stat(fsys, dir)
		if err != nil {
			t.Errorf("bundled %s missing: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("bundled %s is not a directory", dir)
		}
	}
	for _, file := range []string{".kilocodemodes", ".clinerules/spec-kit.md", "memory/constitution.md"} {
		if _, err := fs.Stat(fsys, file); err != nil {
			t.Errorf("bundled %s missing: %v", file, err)
		}
	}
}

func TestMetadataParses(t *testing.T) {
	info, err := config.ParsePackageInfo(Metadata())
	if err != nil {
		t.Fatalf("bundled package.yaml: %v", err)
	}
	if info.Name != "spec-kit" {
		t.Errorf("name = %q, want spec-kit", info.Name)
	}
}

func TestOpenEmptyUsesEmbedded(t *testing.T) {
	src, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if _, err := fs.Stat(src.FS, "templates/spec-template.md"); err != nil {
		t.Errorf("embedded template missing: %v", err)
	}
}

func TestOpenDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "memory", "constitution.md"), "local")

	src, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	data, err := fs.ReadFile(src.FS, "memory/constitution.md")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "local" {
		t.Errorf("content = %q, want local", data)
	}
}

func TestOpenMissingSource(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, copier.ErrMissingSource) {
		t.Fatalf("err = %v, want ErrMissingSource", err)
	}
}

func TestOpenUnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.rar")
	writeFile(t, path, "not an archive we know")

	_, err := Open(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported source") {
		t.Fatalf("err = %v, want unsupported source", err)
	}
}

func TestOpenZipArchiveWithTopLevelFolder(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "spec-kit-templates.zip")
	writeZip(t, archive, map[string]string{
		"spec-kit-1.2.0/memory/constitution.md": "zipped",
		"spec-kit-1.2.0/.kilocodemodes":         "modes",
	})

	src, err := Open(archive)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	data, err := fs.ReadFile(src.FS, "memory/constitution.md")
	if err != nil {
		t.Fatalf("read from archive root: %v", err)
	}
	if string(data) != "zipped" {
		t.Errorf("content = %q, want zipped", data)
	}

	tmp := src.tmpDir
	if err := src.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Errorf("extraction directory %s not removed", tmp)
	}
}

func TestOpenTarGzArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "templates.tar.gz")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	files := map[string]string{
		"scripts/setup-plan.sh":  "#!/bin/sh\n",
		"memory/constitution.md": "tarred",
	}
	for name, body := range files {
		hdr := &tar.Header{Name: name, Mode: 0755, Size: int64(len(body)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	for _, c := range []interface{ Close() error }{tw, gw, f} {
		if err := c.Close(); err != nil {
			t.Fatal(err)
		}
	}

	src, err := Open(archive)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	// Two top-level folders: the extraction directory itself is the root.
	for name, want := range files {
		data, err := fs.ReadFile(src.FS, name)
		if err != nil {
			t.Errorf("read %s: %v", name, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", name, data, want)
		}
	}
}

func TestOpenArchiveWithSingleTemplateFolder(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "memory-only.zip")
	writeZip(t, archive, map[string]string{"memory/constitution.md": "partial"})

	src, err := Open(archive)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	info, err := fs.Stat(src.FS, "memory")
	if err != nil {
		t.Fatalf("memory folder not at archive root: %v", err)
	}
	if !info.IsDir() {
		t.Error("memory is not a directory")
	}
	data, err := fs.ReadFile(src.FS, "memory/constitution.md")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "partial" {
		t.Errorf("content = %q, want partial", data)
	}
}

// The testdata archives each wrap a small template tree in spec-kit-templates/.
func TestOpenCompressedArchives(t *testing.T) {
	tests := []string{
		"templates.7z",
		"templates.tar.xz",
		"templates.tar.bz2",
	}
	want := map[string]string{
		"memory/constitution.md":     "# Constitution\n",
		"modes/specify.md":           "# Specify\n",
		"scripts/common.sh":          "#!/bin/sh\necho ok\n",
		"templates/spec-template.md": "# Spec\n",
		".kilocodemodes":             "customModes: []\n",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			src, err := Open(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer src.Close()

			for file, body := range want {
				data, err := fs.ReadFile(src.FS, file)
				if err != nil {
					t.Errorf("read %s: %v", file, err)
					continue
				}
				if string(data) != body {
					t.Errorf("%s = %q, want %q", file, data, body)
				}
			}
		})
	}
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "evil.zip")
	writeZip(t, archive, map[string]string{"../../evil.sh": "rm -rf"})

	dest := t.TempDir()
	if _, err := ExtractArchive(archive, dest); err == nil {
		t.Fatal("expected error for entry outside destination")
	}
}

func TestIsArchive(t *testing.T) {
	tests := map[string]bool{
		"t.zip":     true,
		"t.7z":      true,
		"t.tar":     true,
		"t.tgz":     true,
		"t.tar.gz":  true,
		"t.tar.bz2": true,
		"t.tar.xz":  true,
		"t.rar":     false,
		"templates": false,
	}
	for name, want := range tests {
		if got := IsArchive(name); got != want {
			t.Errorf("IsArchive(%q) = %v, want %v", name, got, want)
		}
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}
