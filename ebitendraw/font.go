package ebitendraw

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/imui"
)

// fontGlyph is a glyph's metrics in EMs and where to find its pixels.
type fontGlyph struct {
	info   imui.GlyphInfos
	sprite Sprite

	// mask holds the rasterized pixels of a TrueType glyph until the
	// first draw uploads them to sprite.
	mask *image.RGBA
}

// Font is a BMFont or TrueType font. All metrics are reported in EMs, the
// font's nominal size. Use LoadBitmapFont or LoadTTFFont.
type Font struct {
	mu         sync.Mutex
	lineHeight float64
	glyphs     map[rune]*fontGlyph
	kernings   map[[2]rune]float64

	// face is set for TrueType fonts, which rasterize glyphs on first use.
	face font.Face
	size float64
}

// LineHeight returns the vertical distance between baselines, in EMs.
func (f *Font) LineHeight() float64 {
	return f.lineHeight
}

// GlyphInfos returns the metrics of r. Runes the font lacks fall back to
// '?', and to empty metrics when that is missing too.
func (f *Font) GlyphInfos(r rune) imui.GlyphInfos {
	if g := f.glyph(r); g != nil {
		return g.info
	}
	return imui.GlyphInfos{}
}

// Kerning returns the pen adjustment between first and second, in EMs.
func (f *Font) Kerning(first, second rune) float64 {
	if f.face != nil {
		return fixedToFloat(f.face.Kern(first, second)) / f.size
	}
	return f.kernings[[2]rune{first, second}]
}

// sprite returns the pixels of r, uploading a TrueType glyph on first use.
func (f *Font) sprite(r rune) (Sprite, bool) {
	g := f.glyph(r)
	if g == nil {
		return Sprite{}, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if g.mask != nil {
		g.sprite = NewSprite(ebiten.NewImageFromImage(g.mask))
		g.mask = nil
	}
	return g.sprite, !g.sprite.Empty()
}

func (f *Font) glyph(r rune) *fontGlyph {
	if g := f.lookup(r); g != nil {
		return g
	}
	return f.lookup('?')
}

func (f *Font) lookup(r rune) *fontGlyph {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	if f.face == nil {
		return nil
	}
	g := f.rasterize(r)
	f.glyphs[r] = g
	return g
}

// rasterize renders r with the TrueType face, pen at the origin. It returns
// nil when the face has no such glyph.
func (f *Font) rasterize(r rune) *fontGlyph {
	if _, hasGlyph := f.face.GlyphAdvance(r); !hasGlyph {
		return nil
	}
	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil
	}
	g := &fontGlyph{
		info: imui.GlyphInfos{
			Width:    float64(dr.Dx()) / f.size,
			Height:   float64(dr.Dy()) / f.size,
			XOffset:  float64(dr.Min.X) / f.size,
			YOffset:  float64(-dr.Min.Y) / f.size,
			XAdvance: fixedToFloat(advance) / f.size,
		},
	}
	if !dr.Empty() {
		rgba := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
		draw.DrawMask(rgba, rgba.Bounds(), image.White, image.Point{}, mask, maskp, draw.Over)
		g.mask = rgba
	}
	return g
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// LoadTTFFont loads a TrueType or OpenType font from raw data. size is the
// pixel size glyphs are rasterized at; it does not affect metrics, which are
// in EMs.
func LoadTTFFont(ttfData []byte, size float64) (*Font, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("ebitendraw: font size must be positive, got %v", size)
	}
	parsed, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("ebitendraw: failed to parse TTF data: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("ebitendraw: failed to create TTF face: %w", err)
	}

	m := face.Metrics()
	return &Font{
		lineHeight: fixedToFloat(m.Height) / size,
		glyphs:     make(map[rune]*fontGlyph),
		face:       face,
		size:       size,
	}, nil
}

// LoadBitmapFont parses BMFont .fnt text-format data. pages holds the glyph
// atlas images, indexed by the page numbers of the .fnt file.
//
// Metrics are divided by the "info size" of the font, or by the line height
// when size is absent.
func LoadBitmapFont(fntData []byte, pages []*ebiten.Image) (*Font, error) {
	f := &Font{
		glyphs:   make(map[rune]*fontGlyph),
		kernings: make(map[[2]rune]float64),
	}

	type rawGlyph struct {
		id       rune
		x, y     int
		w, h     int
		xOffset  int
		yOffset  int
		xAdvance int
		page     int
	}
	var size, lineHeight, base float64
	var chars []rawGlyph
	kerns := make(map[[2]rune]int)

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "info":
			if v, ok := fields["size"]; ok {
				size, _ = strconv.ParseFloat(v, 64)
				size = math.Abs(size)
			}

		case "common":
			if v, ok := fields["lineHeight"]; ok {
				lineHeight, _ = strconv.ParseFloat(v, 64)
			}
			if v, ok := fields["base"]; ok {
				base, _ = strconv.ParseFloat(v, 64)
			}

		case "char":
			chars = append(chars, rawGlyph{
				id:       rune(atoi(fields["id"])),
				x:        atoi(fields["x"]),
				y:        atoi(fields["y"]),
				w:        atoi(fields["width"]),
				h:        atoi(fields["height"]),
				xOffset:  atoi(fields["xoffset"]),
				yOffset:  atoi(fields["yoffset"]),
				xAdvance: atoi(fields["xadvance"]),
				page:     atoi(fields["page"]),
			})

		case "kerning":
			first := rune(atoi(fields["first"]))
			second := rune(atoi(fields["second"]))
			kerns[[2]rune{first, second}] = atoi(fields["amount"])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ebitendraw: error reading .fnt data: %w", err)
	}
	if lineHeight == 0 {
		return nil, fmt.Errorf("ebitendraw: .fnt data missing common lineHeight")
	}
	if len(chars) == 0 {
		return nil, fmt.Errorf("ebitendraw: .fnt data has no char definitions")
	}
	if size == 0 {
		size = lineHeight
	}

	f.lineHeight = lineHeight / size
	for _, c := range chars {
		if c.page < 0 || c.page >= len(pages) || pages[c.page] == nil {
			return nil, fmt.Errorf("ebitendraw: .fnt char %d uses missing page %d", c.id, c.page)
		}
		f.glyphs[c.id] = &fontGlyph{
			info: imui.GlyphInfos{
				Width:    float64(c.w) / size,
				Height:   float64(c.h) / size,
				XOffset:  float64(c.xOffset) / size,
				YOffset:  (base - float64(c.yOffset)) / size,
				XAdvance: float64(c.xAdvance) / size,
			},
			sprite: Sprite{
				Page: pages[c.page],
				Rect: image.Rect(c.x, c.y, c.x+c.w, c.y+c.h),
			},
		}
	}
	for pair, amount := range kerns {
		f.kernings[pair] = float64(amount) / size
	}

	return f, nil
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}
