// Package watermark renders the protective overlay applied to public photo
// downloads: tiled diagonal text across the frame plus a caption in the
// bottom-right corner.
package watermark

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	// Registers WebP decoding; JPEG, PNG and GIF come in through imaging.
	_ "golang.org/x/image/webp"

	"gallery-api/pkg/config"
)

const (
	tileAngle      = -30.0
	tileOpacity    = 0.15
	captionOpacity = 0.40
	jpegQuality    = 90
)

// Compositor applies the watermark overlay and re-encodes to JPEG.
type Compositor struct {
	text    string
	caption string
}

func New(cfg config.WatermarkConfig) *Compositor {
	return &Compositor{
		text:    cfg.Text,
		caption: cfg.Caption,
	}
}

// Apply decodes src, composites the watermark and returns a JPEG at the
// source dimensions.
func (c *Compositor) Apply(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Scale the text with the image so the overlay reads the same on
	// thumbnails and full-size photos.
	fontSize := int(0.04 * float64(min(w, h)))
	if fontSize < 16 {
		fontSize = 16
	}

	result := imaging.Clone(img)

	if c.text != "" {
		tiled := c.tiledOverlay(w, h, fontSize)
		result = imaging.Overlay(result, tiled, image.Pt(0, 0), tileOpacity)
	}

	if c.caption != "" {
		captionSize := fontSize * 3 / 4
		if captionSize < 12 {
			captionSize = 12
		}
		stamp := renderText(c.caption, captionSize)
		margin := fontSize / 2
		pos := image.Pt(w-stamp.Bounds().Dx()-margin, h-stamp.Bounds().Dy()-margin)
		result = imaging.Overlay(result, stamp, pos, captionOpacity)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, result, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode watermarked image: %w", err)
	}
	return buf.Bytes(), nil
}

// tiledOverlay builds a w x h transparent layer covered in rotated copies of
// the watermark text. The tile canvas is sized to the image diagonal so the
// rotation leaves no uncovered corners.
func (c *Compositor) tiledOverlay(w, h, fontSize int) image.Image {
	stamp := renderText(c.text, fontSize)
	stampW := stamp.Bounds().Dx()
	stampH := stamp.Bounds().Dy()

	diag := int(math.Ceil(math.Hypot(float64(w), float64(h))))
	canvas := image.NewNRGBA(image.Rect(0, 0, diag, diag))

	stepX := stampW + fontSize*2
	stepY := stampH + fontSize*2

	row := 0
	for y := 0; y < diag; y += stepY {
		// Offset alternate rows so the pattern does not form columns.
		offset := 0
		if row%2 == 1 {
			offset = -stepX / 2
		}
		for x := offset; x < diag; x += stepX {
			target := image.Rect(x, y, x+stampW, y+stampH)
			draw.Draw(canvas, target, stamp, image.Pt(0, 0), draw.Over)
		}
		row++
	}

	rotated := imaging.Rotate(canvas, tileAngle, color.NRGBA{})
	return imaging.CropCenter(rotated, w, h)
}

// renderText rasterizes text in white at the given pixel height. The fixed
// 7x13 face is drawn at its native size and resized, which is plenty for a
// translucent overlay.
func renderText(text string, size int) *image.NRGBA {
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil()
	if width < 1 {
		width = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, face.Height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	scaled := float64(size) / float64(face.Height)
	return imaging.Resize(img, int(float64(width)*scaled), size, imaging.Lanczos)
}
