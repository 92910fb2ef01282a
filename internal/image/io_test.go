package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testCanvas() *image.Alpha {
	a := image.NewAlpha(image.Rect(0, 0, 8, 4))
	a.SetAlpha(1, 1, color.Alpha{A: 255})
	a.SetAlpha(6, 2, color.Alpha{A: 128})
	return a
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"font_atlas.png", FormatPNG},
		{"out/ATLAS.PNG", FormatPNG},
		{"atlas.bmp", FormatBMP},
		{"atlas.tif", FormatTIFF},
		{"atlas.tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("FormatFromPath(%q) error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"atlas.jpg", "atlas", "atlas.gif"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestEncode_PNGIsSingleChannel(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testCanvas(), FormatPNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.ColorModel != color.GrayModel {
		t.Errorf("ColorModel = %v, want GrayModel", cfg.ColorModel)
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	if gray.GrayAt(1, 1).Y != 255 || gray.GrayAt(6, 2).Y != 128 || gray.GrayAt(0, 0).Y != 0 {
		t.Errorf("pixels = %d %d %d, want 255 128 0",
			gray.GrayAt(1, 1).Y, gray.GrayAt(6, 2).Y, gray.GrayAt(0, 0).Y)
	}
}

func TestEncode_RoundTripOtherFormats(t *testing.T) {
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}
	for f, decode := range decoders {
		data, err := EncodeBytes(testCanvas(), f)
		if err != nil {
			t.Fatalf("EncodeBytes(%v): %v", f, err)
		}
		img, err := decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode %v: %v", f, err)
		}
		if img.Bounds() != image.Rect(0, 0, 8, 4) {
			t.Errorf("%v bounds = %v, want 8x4", f, img.Bounds())
		}
		y := color.GrayModel.Convert(img.At(1, 1)).(color.Gray).Y
		if y != 255 {
			t.Errorf("%v pixel (1,1) = %d, want 255", f, y)
		}
	}
}

func TestEncode_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, FormatPNG); !errors.Is(err, ErrNilImage) {
		t.Errorf("Encode(nil) error = %v, want ErrNilImage", err)
	}
	if err := Encode(&buf, testCanvas(), Format(42)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(42)) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := EncodeBytes(testCanvas(), FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeBytes(testCanvas(), FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodings of the same canvas differ")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []File{
		{Path: filepath.Join(dir, "a.png"), Data: []byte("image")},
		{Path: filepath.Join(dir, "a_metadata.h"), Data: []byte("header")},
	}
	if err := WriteFiles(files...); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	for _, f := range files {
		got, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(got) != string(f.Data) {
			t.Errorf("%s = %q, want %q", f.Path, got, f.Data)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("directory has %d entries, want 2 (temporary files left behind?)", len(entries))
	}
}

func TestWriteFiles_NothingWrittenOnFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.png")
	bad := filepath.Join(dir, "missing", "a_metadata.h")

	err := WriteFiles(File{Path: good, Data: []byte("image")}, File{Path: bad, Data: []byte("header")})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := os.Stat(good); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("%s exists after failed WriteFiles", good)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory has %d entries, want 0", len(entries))
	}
}

// readDir returns the names in dir.
func readDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteFiles_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "a.png")
	if err := os.WriteFile(img, []byte("old image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFiles(File{Path: img, Data: []byte("new image")}); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if got, _ := os.ReadFile(img); string(got) != "new image" {
		t.Errorf("a.png = %q, want %q", got, "new image")
	}
	if names := readDir(t, dir); len(names) != 1 {
		t.Errorf("directory has %v, want only a.png (backup left behind?)", names)
	}
}

func TestWriteFiles_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "a.png")
	header := filepath.Join(dir, "a_metadata.h")
	if err := os.WriteFile(img, []byte("old image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(header, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := WriteFiles(File{Path: img, Data: []byte("image")}, File{Path: header, Data: []byte("header")})
	if err == nil {
		t.Fatal("expected error when a destination is a directory")
	}
	if got, _ := os.ReadFile(img); string(got) != "old image" {
		t.Errorf("a.png = %q after failed WriteFiles, want the previous contents", got)
	}
	if names := readDir(t, dir); len(names) != 2 {
		t.Errorf("directory has %v, want only a.png and a_metadata.h", names)
	}
}

func TestWriteFiles_RollbackOnRenameFailure(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "a.png")
	header := filepath.Join(dir, "a_metadata.h")
	if err := os.WriteFile(img, []byte("old image"), 0o644); err != nil {
		t.Fatal(err)
	}

	errRename := errors.New("rename failed")
	placed := 0
	rename = func(oldpath, newpath string) error {
		if strings.HasSuffix(oldpath, ".tmp") {
			placed++
			if placed == 2 {
				return errRename
			}
		}
		return os.Rename(oldpath, newpath)
	}
	t.Cleanup(func() { rename = os.Rename })

	err := WriteFiles(File{Path: img, Data: []byte("new image")}, File{Path: header, Data: []byte("header")})
	if !errors.Is(err, errRename) {
		t.Fatalf("WriteFiles() = %v, want rename error", err)
	}
	if placed != 2 {
		t.Fatalf("expected the second rename to fail, got %d renames", placed)
	}

	if got, _ := os.ReadFile(img); string(got) != "old image" {
		t.Errorf("a.png = %q after rollback, want the previous contents", got)
	}
	if _, err := os.Stat(header); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("%s exists after rollback", header)
	}
	if names := readDir(t, dir); len(names) != 1 {
		t.Errorf("directory has %v, want only a.png", names)
	}
}
