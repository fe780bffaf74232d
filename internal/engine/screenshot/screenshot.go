// Package screenshot writes the rendered frame to PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

const timeLayout = "2006-01-02_15-04-05"

// Capturer names and writes screenshot files.
type Capturer struct {
	dir    string
	prefix string
	now    func() time.Time
}

// New returns a Capturer writing prefix_<timestamp>.png files into dir.
func New(dir, prefix string) *Capturer {
	if prefix == "" {
		prefix = "screenshot"
	}
	return &Capturer{dir: dir, prefix: prefix, now: time.Now}
}

// FromPixels builds an image from bottom-up RGBA rows as returned by
// glReadPixels.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screenshot size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save encodes img as PNG and returns the file name. A numeric suffix is
// added when a file for the same second already exists.
func (c *Capturer) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name, file, err := c.create()
	if err != nil {
		return "", err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(name)
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}

func (c *Capturer) create() (string, *os.File, error) {
	stamp := c.now().Format(timeLayout)
	for n := 0; ; n++ {
		base := fmt.Sprintf("%s_%s.png", c.prefix, stamp)
		if n > 0 {
			base = fmt.Sprintf("%s_%s_%d.png", c.prefix, stamp, n)
		}
		name := filepath.Join(c.dir, base)
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("creating file: %w", err)
		}
		return name, f, nil
	}
}
