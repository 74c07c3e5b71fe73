package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	_ "image/gif"

	"golang.org/x/image/draw"
)

// Processor recompresses uploaded images: decode, cap the longest edge,
// re-encode. Small images are not upscaled.
type Processor struct {
	quality int // JPEG quality (1-100)
	maxEdge int // longest edge after resize
}

func NewProcessor(quality, maxEdge int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxEdge <= 0 {
		maxEdge = 1600
	}
	return &Processor{quality: quality, maxEdge: maxEdge}
}

// Process decodes the image, scales it down if either edge exceeds maxEdge,
// and re-encodes it in its source format. Returns the processed bytes and
// the detected MIME type.
func (p *Processor) Process(reader io.Reader) ([]byte, string, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	img = p.capEdge(img)

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	default:
		// jpeg, gif and everything else re-encode as jpeg
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}
}

func (p *Processor) capEdge(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= p.maxEdge && height <= p.maxEdge {
		return img
	}

	newWidth, newHeight := p.maxEdge, p.maxEdge
	if width > height {
		newHeight = height * p.maxEdge / width
	} else {
		newWidth = width * p.maxEdge / height
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// IsValidImage reports whether the bytes decode as a supported image.
func IsValidImage(data []byte) bool {
	_, _, err := image.Decode(bytes.NewReader(data))
	return err == nil
}
