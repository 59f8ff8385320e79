package ebitendraw

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/imui"
)

// captureScreenshots writes screen as one PNG per requested label into dir.
// Files are named "frame<N>_<label>.png" so captures of a script sort in
// the order they were taken.
func captureScreenshots(screen *ebiten.Image, dir string, frame uint64, labels []string) {
	if len(labels) == 0 {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		imui.Logger().Error("ebitendraw: screenshot", "dir", dir, "err", err)
		return
	}

	size := screen.Bounds().Size()
	pixels := make([]byte, 4*size.X*size.Y)
	screen.ReadPixels(pixels)

	var buf bytes.Buffer
	if err := png.Encode(&buf, unpremultiply(pixels, size.X, size.Y)); err != nil {
		imui.Logger().Error("ebitendraw: screenshot", "err", err)
		return
	}
	for _, label := range labels {
		path := filepath.Join(dir, fmt.Sprintf("frame%06d_%s.png", frame, sanitizeLabel(label)))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			imui.Logger().Error("ebitendraw: screenshot", "path", path, "err", err)
			continue
		}
		imui.Logger().Info("ebitendraw: screenshot saved", "path", path)
	}
}

// unpremultiply converts the premultiplied pixels ReadPixels returns into a
// straight-alpha image for PNG encoding.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		c := color.NRGBAModel.Convert(color.RGBA{
			R: pixels[i],
			G: pixels[i+1],
			B: pixels[i+2],
			A: pixels[i+3],
		}).(color.NRGBA)
		copy(img.Pix[i:i+4], []byte{c.R, c.G, c.B, c.A})
	}
	return img
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
