package backdrop

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	got := Filename(time.Unix(1700000000, 999))
	if want := "artistic_background_1700000000.png"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestEncodePNGIsRGB(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(RGB(1, 2, 3))
	pm.SetPixel(0, 0, Color{200, 100, 50, 128})

	var buf bytes.Buffer
	if err := EncodePNG(&buf, pm); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	// IHDR color type 2 is truecolor without alpha.
	if colorType := buf.Bytes()[25]; colorType != 2 {
		t.Errorf("PNG color type = %d, want 2 (RGB)", colorType)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 100 || g>>8 != 50 || b>>8 != 25 || a != 0xffff {
		t.Errorf("flattened pixel = (%d, %d, %d, %d), want (100, 50, 25, opaque)", r>>8, g>>8, b>>8, a>>8)
	}
	if pm.Opaque() {
		t.Error("EncodePNG must not flatten its input")
	}
}

func TestEncodePNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, NewPixmap(0, 5)); !errors.Is(err, ErrEmptyPixmap) {
		t.Errorf("err = %v, want ErrEmptyPixmap", err)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Desktop")
	pm := RadialGradient(20, 10, Black, White)

	path, err := Save(pm, dir, "out.png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("path %q is not absolute", path)
	}
	if filepath.Base(path) != "out.png" {
		t.Errorf("path = %q, want base out.png", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("saved size = %v, want 20x10", img.Bounds())
	}
}

func TestSaveReusesDirectory(t *testing.T) {
	dir := t.TempDir()
	pm := RadialGradient(8, 8, Black, White)

	if _, err := Save(pm, dir, "a.png"); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := Save(pm, dir, "b.png"); err != nil {
		t.Fatalf("second Save into existing dir: %v", err)
	}
	if _, err := Save(pm, dir, "a.png"); err != nil {
		t.Fatalf("overwriting Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only a.png and b.png", names)
	}
}

func TestSaveDirectoryIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Save(RadialGradient(2, 2, Black, White), filepath.Join(blocker, "sub"), "x.png")
	if err == nil {
		t.Fatal("Save under a regular file should fail")
	}
}

func TestSaveEmptyLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Save(NewPixmap(0, 0), dir, "empty.png"); !errors.Is(err, ErrEmptyPixmap) {
		t.Fatalf("err = %v, want ErrEmptyPixmap", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("failed save left %d entries behind", len(entries))
	}
}

// TestSaveFileModeFollowsUmask compares the saved file's permissions with a
// file created the same way os.Create would.
func TestSaveFileModeFollowsUmask(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "reference")
	f, err := os.OpenFile(ref, os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		t.Fatal(err)
	}
	_ = f.Close()
	refInfo, err := os.Stat(ref)
	if err != nil {
		t.Fatal(err)
	}

	path, err := Save(RadialGradient(4, 4, Black, White), dir, "mode.png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := info.Mode().Perm(), refInfo.Mode().Perm(); got != want {
		t.Errorf("saved mode = %v, want %v", got, want)
	}
}

func TestTempNameIsHiddenSibling(t *testing.T) {
	path := filepath.Join("/tmp", "out", "artistic_background_1.png")
	got := tempName(path)
	if filepath.Dir(got) != filepath.Dir(path) {
		t.Errorf("tempName(%q) = %q, want same directory", path, got)
	}
	if base := filepath.Base(got); base[0] != '.' || filepath.Ext(base) != ".tmp" {
		t.Errorf("tempName base = %q, want hidden .tmp file", base)
	}
}
