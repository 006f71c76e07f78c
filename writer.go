package backdrop

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrEmptyPixmap is returned when encoding a pixmap with no pixels.
var ErrEmptyPixmap = errors.New("backdrop: empty pixmap")

// Filename returns the output file name for a run started at t:
// artistic_background_<unix seconds>.png.
func Filename(t time.Time) string {
	return fmt.Sprintf("artistic_background_%d.png", t.Unix())
}

// DesktopDir returns the Desktop folder in the user's home directory.
func DesktopDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("backdrop: locate home directory: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

// EncodePNG writes pm to w as an 8-bit RGB PNG. Translucent pixels are
// flattened over black; pm itself is not modified.
func EncodePNG(w io.Writer, pm *Pixmap) error {
	if pm.width == 0 || pm.height == 0 {
		return ErrEmptyPixmap
	}
	if !pm.Opaque() {
		pm = pm.Clone()
		pm.Flatten()
	}
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, pm.RGBAImage()); err != nil {
		return fmt.Errorf("backdrop: encode png: %w", err)
	}
	return nil
}

// Save writes pm as a PNG named filename inside dir and returns the absolute
// path of the written file. dir is created, with parents, if missing.
//
// The image is encoded into a temporary file in dir and renamed into place,
// so a failed save never leaves a partial file under the final name.
func Save(pm *Pixmap, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("backdrop: create directory: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("backdrop: resolve path: %w", err)
	}

	// Created with 0666 so the process umask decides the final mode.
	tmpName := tempName(path)
	_ = os.Remove(tmpName)
	tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return "", fmt.Errorf("backdrop: create file: %w", err)
	}
	defer func() {
		// No-op once the rename has succeeded.
		_ = os.Remove(tmpName)
	}()

	bw := bufio.NewWriterSize(tmp, 1<<20)
	if err := EncodePNG(bw, pm); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("backdrop: write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("backdrop: close file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("backdrop: rename file: %w", err)
	}

	if info, err := os.Stat(path); err == nil {
		Logger().Info("backdrop: image written",
			"path", path, "size", humanize.Bytes(uint64(info.Size())))
	}
	return path, nil
}

// tempName returns the hidden staging path used while writing path.
func tempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%d.tmp", base, os.Getpid()))
}
