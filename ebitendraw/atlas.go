package ebitendraw

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/imui"
)

// Atlas is a set of named sprites cut from one or more page images.
type Atlas struct {
	// Pages are the page images, indexed by page number.
	Pages   []*ebiten.Image
	sprites map[string]Sprite
}

// Sprite returns the sprite called name, or the magenta Placeholder with a
// logged warning when there is none.
func (a *Atlas) Sprite(name string) Sprite {
	if s, ok := a.sprites[name]; ok {
		return s
	}
	imui.Logger().Warn("ebitendraw: atlas has no such sprite, drawing placeholder", "name", name)
	return Placeholder()
}

// Has reports whether the atlas has a sprite called name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.sprites[name]
	return ok
}

// Len returns the number of sprites.
func (a *Atlas) Len() int {
	return len(a.sprites)
}

type packedRect struct {
	X, Y, W, H int
}

type packedFrame struct {
	Frame   packedRect `json:"frame"`
	Rotated bool       `json:"rotated"`
}

type packedPage struct {
	Frames map[string]packedFrame `json:"frames"`
}

// packedSheet accepts both TexturePacker layouts: a single page with a
// top-level "frames" object, or multiple pages under "textures".
type packedSheet struct {
	Frames   map[string]packedFrame `json:"frames"`
	Textures []packedPage           `json:"textures"`
}

// LoadAtlas parses TexturePacker JSON in the hash or multi-page array
// layout. pages holds the page images in the order the JSON lists them.
// Trimmed frames are drawn at their trimmed size.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var sheet packedSheet
	if err := json.Unmarshal(jsonData, &sheet); err != nil {
		return nil, fmt.Errorf("ebitendraw: failed to parse atlas JSON: %w", err)
	}

	layout := sheet.Textures
	if layout == nil {
		if sheet.Frames == nil {
			return nil, errors.New(`ebitendraw: atlas JSON has neither "frames" nor "textures" key`)
		}
		layout = []packedPage{{Frames: sheet.Frames}}
	}

	a := &Atlas{Pages: pages, sprites: make(map[string]Sprite)}
	for page, p := range layout {
		if len(p.Frames) == 0 {
			continue
		}
		if page >= len(pages) || pages[page] == nil {
			return nil, fmt.Errorf("ebitendraw: atlas page %d not provided", page)
		}
		for name, f := range p.Frames {
			a.sprites[name] = packedSprite(pages[page], f)
		}
	}
	return a, nil
}

// packedSprite cuts f out of page. A rotated frame occupies its height
// horizontally on the page.
func packedSprite(page *ebiten.Image, f packedFrame) Sprite {
	w, h := f.Frame.W, f.Frame.H
	if f.Rotated {
		w, h = h, w
	}
	return Sprite{
		Page:    page,
		Rect:    image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+w, f.Frame.Y+h),
		Rotated: f.Rotated,
	}
}
