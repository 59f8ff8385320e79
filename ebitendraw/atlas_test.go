package ebitendraw

import (
	"image"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const singlePageJSON = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false
    },
    "button.png": {
      "frame": {"x": 64, "y": 0, "w": 32, "h": 16},
      "rotated": false
    },
    "banner.png": {
      "frame": {"x": 200, "y": 0, "w": 48, "h": 32},
      "rotated": true
    }
  },
  "meta": {"image": "atlas.png", "size": {"w": 256, "h": 256}}
}`

const multiPageJSON = `{
  "textures": [
    {"image": "ui-0.png", "frames": {"a.png": {"frame": {"x": 0, "y": 0, "w": 10, "h": 10}}}},
    {"image": "ui-1.png", "frames": {"b.png": {"frame": {"x": 5, "y": 5, "w": 20, "h": 10}}}}
  ]
}`

func TestLoadAtlas_HashFormat(t *testing.T) {
	page := ebiten.NewImage(256, 256)
	atlas, err := LoadAtlas([]byte(singlePageJSON), []*ebiten.Image{page})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Len() != 3 {
		t.Fatalf("Len = %d, want 3", atlas.Len())
	}

	button := atlas.Sprite("button.png")
	if button.Page != page || button.Rect != image.Rect(64, 0, 96, 16) {
		t.Errorf("button = %+v", button)
	}
	if got := button.WidthPerHeight(); got != 2 {
		t.Errorf("button WidthPerHeight = %v, want 2", got)
	}

	banner := atlas.Sprite("banner.png")
	if !banner.Rotated || banner.Rect != image.Rect(200, 0, 232, 48) {
		t.Errorf("banner = %+v", banner)
	}
	if got := banner.WidthPerHeight(); got != 1.5 {
		t.Errorf("banner WidthPerHeight = %v, want 1.5", got)
	}
}

func TestLoadAtlas_ArrayFormat(t *testing.T) {
	p0 := ebiten.NewImage(32, 32)
	p1 := ebiten.NewImage(32, 32)
	atlas, err := LoadAtlas([]byte(multiPageJSON), []*ebiten.Image{p0, p1})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Sprite("a.png").Page != p0 {
		t.Error("a.png should be on page 0")
	}
	b := atlas.Sprite("b.png")
	if b.Page != p1 || b.Rect != image.Rect(5, 5, 25, 15) {
		t.Errorf("b.png = %+v", b)
	}
}

func TestLoadAtlas_MissingPage(t *testing.T) {
	_, err := LoadAtlas([]byte(multiPageJSON), []*ebiten.Image{ebiten.NewImage(32, 32)})
	if err == nil || !strings.Contains(err.Error(), "page 1") {
		t.Errorf("err = %v, want missing page 1", err)
	}
}

func TestLoadAtlas_Errors(t *testing.T) {
	if _, err := LoadAtlas([]byte("{"), nil); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadAtlas([]byte(`{"meta": {}}`), nil); err == nil {
		t.Error("expected error when frames and textures are missing")
	}
}

func TestAtlasSprite_MissingIsPlaceholder(t *testing.T) {
	atlas, err := LoadAtlas([]byte(singlePageJSON), []*ebiten.Image{ebiten.NewImage(256, 256)})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Has("nope.png") {
		t.Error("Has reported a missing region")
	}
	s := atlas.Sprite("nope.png")
	if s != Placeholder() {
		t.Errorf("missing region = %+v, want placeholder", s)
	}
}
