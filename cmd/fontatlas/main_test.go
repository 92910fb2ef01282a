package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePositional(t *testing.T) {
	def := defaultOutputPath()
	tests := []struct {
		name string
		args []string
		want invocation
	}{
		{"none", nil, invocation{outputPath: def, cellWidth: 16, cellHeight: 16, fontSize: 16, padding: 1}},
		{"font only", []string{"a.ttf"}, invocation{fontPath: "a.ttf", outputPath: def, cellWidth: 16, cellHeight: 16, fontSize: 16, padding: 1}},
		{"width", []string{"a.ttf", "o.png", "10"}, invocation{fontPath: "a.ttf", outputPath: "o.png", cellWidth: 10, cellHeight: 10, fontSize: 10, padding: 1}},
		{"width height", []string{"a.ttf", "o.png", "8", "12"}, invocation{fontPath: "a.ttf", outputPath: "o.png", cellWidth: 8, cellHeight: 12, fontSize: 12, padding: 1}},
		{"all", []string{"a.ttf", "o.png", "8", "12", "11", "0"}, invocation{fontPath: "a.ttf", outputPath: "o.png", cellWidth: 8, cellHeight: 12, fontSize: 11, padding: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePositional(tt.args)
			if err != nil {
				t.Fatalf("parsePositional: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(invocation{})); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := parsePositional([]string{"a", "b", "wide"}); err == nil || !strings.Contains(err.Error(), "cell_width") {
		t.Errorf("non-integer width: err = %v", err)
	}
	if _, err := parsePositional([]string{"a", "b", "1", "2", "3", "4", "5"}); err == nil {
		t.Error("seven arguments accepted")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "atlas.png")
	manifest := filepath.Join(dir, "atlas.json")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-q", "-manifest", manifest, "-preview", "Hi", "", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	for _, p := range []string{out, filepath.Join(dir, "atlas_metadata.h"), manifest} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}
	if !strings.Contains(stdout.String(), "#") {
		t.Errorf("preview printed nothing:\n%s", stdout.String())
	}
}

func TestRun_MissingFont(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(dir, "missing.ttf"), filepath.Join(dir, "atlas.png")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Font file not found") || !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("outputs written: %v", entries)
	}
}

func TestRun_InvalidGeometry(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"", filepath.Join(dir, "atlas.png"), "0"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "CellWidth") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_ManifestAuto(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-q", "-manifest", "auto", "", filepath.Join(dir, "atlas.png")}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "atlas_manifest.json")); err != nil {
		t.Errorf("manifest not written next to the image: %v", err)
	}
}

func TestRun_FontPathUnreadable(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "file")
	if err := os.WriteFile(notDir, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Stat fails with ENOTDIR, which is not a missing file.
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(notDir, "font.ttf"), filepath.Join(dir, "atlas.png")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if strings.Contains(stderr.String(), "Font file not found") {
		t.Errorf("stat failure reported as missing font: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "not a directory") {
		t.Errorf("stderr = %q, want the stat error", stderr.String())
	}
}
