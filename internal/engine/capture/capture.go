// Package capture saves framebuffer screenshots as timestamped PNGs.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Screenshot writes captures of the default framebuffer.
type Screenshot struct {
	outputDir string
	prefix    string
}

// New creates a screenshot writer. An empty outputDir writes to the
// working directory.
func New(outputDir, prefix string) *Screenshot {
	return &Screenshot{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// Grab reads the current framebuffer and saves it as a PNG. Returns
// the written filename. Must run on the GL thread after the frame is
// rendered and before the buffer swap.
func (s *Screenshot) Grab(width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid capture size %dx%d", width, height)
	}

	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	return s.save(pixels, width, height)
}

func (s *Screenshot) save(pixels []byte, width, height int) (string, error) {
	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", s.prefix, timestamp)
	if s.outputDir != "" {
		filename = filepath.Join(s.outputDir, filename)
	}

	// GL reads rows bottom-up; flip while copying into the image.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
