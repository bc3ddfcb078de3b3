// Package image renders warranty-claim photo attachments inline using the
// kitty graphics protocol. Terminals without the protocol simply show the
// textual claim detail; callers treat a load failure as cosmetic.
package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	goimage "image"
	"image/png"
	"os"
	"strings"
	"sync/atomic"

	"github.com/disintegration/imaging"
)

var imageIDCounter uint32

// KittyImage is a photo prepared for kitty protocol rendering.
type KittyImage struct {
	data   string // base64 encoded PNG
	width  int    // pixels
	height int    // pixels
	id     uint32
}

// Supported reports whether the terminal is likely to understand the kitty
// graphics protocol. It is a heuristic; rendering to an unsupporting
// terminal prints escape garbage, so screens check first.
func Supported() bool {
	term := os.Getenv("TERM")
	return strings.Contains(term, "kitty") || os.Getenv("KITTY_WINDOW_ID") != ""
}

// LoadAndScale loads a photo from disk, scales it to fit within
// maxWidth x maxHeight cells, and prepares it for rendering.
// Assumes ~10 pixels per cell width, ~20 pixels per cell height.
func LoadAndScale(path string, maxWidthCells, maxHeightCells int) (*KittyImage, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("photo not found: %s", path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	return scale(img, maxWidthCells, maxHeightCells)
}

// FromBytes prepares an already-downloaded photo (e.g. fetched from the
// backend) for rendering.
func FromBytes(raw []byte, maxWidthCells, maxHeightCells int) (*KittyImage, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return scale(img, maxWidthCells, maxHeightCells)
}

func scale(img goimage.Image, maxWidthCells, maxHeightCells int) (*KittyImage, error) {
	maxWidthPx := maxWidthCells * 10
	maxHeightPx := maxHeightCells * 20

	bounds := img.Bounds()
	origWidth := bounds.Dx()
	origHeight := bounds.Dy()

	scaleW := float64(maxWidthPx) / float64(origWidth)
	scaleH := float64(maxHeightPx) / float64(origHeight)
	factor := scaleW
	if scaleH < scaleW {
		factor = scaleH
	}

	newWidth := int(float64(origWidth) * factor)
	newHeight := int(float64(origHeight) * factor)

	resized := imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	id := atomic.AddUint32(&imageIDCounter, 1)

	return &KittyImage{
		data:   base64.StdEncoding.EncodeToString(buf.Bytes()),
		width:  newWidth,
		height: newHeight,
		id:     id,
	}, nil
}

// Render returns the escape sequence to transmit and display the photo.
// Caller is responsible for cursor positioning.
func (img *KittyImage) Render() string {
	// Kitty graphics protocol: \x1b_G<key>=<value>,...;<payload>\x1b\\
	// a=T transmit+display, f=100 PNG, t=d direct, i=<id>, s/v pixel size,
	// q=2 suppress responses. Payload is chunked at 4096 bytes with m=1
	// continuation markers.
	const chunkSize = 4096

	var result bytes.Buffer

	data := img.data
	first := true
	for len(data) > 0 {
		chunk := data
		more := 0
		if len(data) > chunkSize {
			chunk = data[:chunkSize]
			data = data[chunkSize:]
			more = 1
		} else {
			data = ""
		}

		result.WriteString("\x1b_G")
		if first {
			result.WriteString(fmt.Sprintf("a=T,f=100,t=d,i=%d,s=%d,v=%d,q=2,m=%d;",
				img.id, img.width, img.height, more))
			first = false
		} else {
			result.WriteString(fmt.Sprintf("m=%d;", more))
		}
		result.WriteString(chunk)
		result.WriteString("\x1b\\")
	}

	return result.String()
}

// Clear returns the escape sequence to delete an image by ID.
func Clear(id uint32) string {
	return fmt.Sprintf("\x1b_Ga=d,d=I,i=%d,q=2\x1b\\", id)
}

// ClearAll returns the escape sequence to delete all images.
func ClearAll() string {
	return "\x1b_Ga=d,d=A,q=2\x1b\\"
}

// ID returns the image's unique identifier.
func (img *KittyImage) ID() uint32 {
	return img.id
}

// CellHeight estimates the height in terminal cells.
func (img *KittyImage) CellHeight() int {
	return (img.height + 19) / 20
}

// CellWidth estimates the width in terminal cells.
func (img *KittyImage) CellWidth() int {
	return (img.width + 9) / 10
}
