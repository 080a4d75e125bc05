package scaffold

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/suf-labs/suf-gen/internal/ui"
)

func TestWriteCreatesParentChain(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	w := &Writer{Fs: fs, Root: "demo", Console: ui.New(&out)}

	if err := w.Write("src/components/deep/file.tsx", "content"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := afero.ReadFile(fs, filepath.Join("demo", "src", "components", "deep", "file.tsx"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "content" {
		t.Errorf("content = %q", got)
	}
	if !strings.Contains(out.String(), "Created file: ./demo/src/components/deep/file.tsx") {
		t.Errorf("console output = %q", out.String())
	}
}

func TestWriteOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := &Writer{Fs: fs, Root: "demo"}

	if err := w.Write("a.txt", "a much longer first version"); err != nil {
		t.Fatal(err)
	}
	if err := w.Write("a.txt", "second"); err != nil {
		t.Fatal(err)
	}
	got, _ := afero.ReadFile(fs, filepath.Join("demo", "a.txt"))
	if string(got) != "second" {
		t.Errorf("content = %q, want second", got)
	}
}

func TestWriteOnRealFilesystem(t *testing.T) {
	root := filepath.Join(t.TempDir(), "fresh")
	w := NewWriter(root, nil)

	if err := w.Write("public/index.html", "<html>"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := afero.ReadFile(w.Fs, filepath.Join(root, "public", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<html>" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteError(t *testing.T) {
	w := &Writer{Fs: afero.NewReadOnlyFs(afero.NewMemMapFs()), Root: "demo"}
	if err := w.Write("package.json", "{}"); err == nil {
		t.Fatal("expected error on read-only filesystem")
	}
}

func TestDisplayPath(t *testing.T) {
	tests := map[string]string{
		"demo/package.json":   "./demo/package.json",
		"./demo/package.json": "./demo/package.json",
		"/tmp/x/package.json": "/tmp/x/package.json",
	}
	for in, want := range tests {
		if got := displayPath(in); got != want {
			t.Errorf("displayPath(%q) = %q, want %q", in, got, want)
		}
	}
}
