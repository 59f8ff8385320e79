// Package record provides a headless imui backend that records every draw
// call instead of rasterizing it. Images and fonts are plain names.
//
// Use it to test layouts and widgets, or to replay scripted pointer sessions
// without a window.
package record

import (
	"fmt"
	"strings"

	"github.com/phanxgames/imui"
)

// CommandType identifies the kind of recorded command.
type CommandType uint8

const (
	CommandTriangle CommandType = iota // DrawTriangle
	CommandGlyph                       // DrawGlyph
)

func (t CommandType) String() string {
	if t == CommandGlyph {
		return "glyph"
	}
	return "triangle"
}

// Command is a single recorded draw instruction.
type Command struct {
	Type      CommandType
	Resource  string // image or font name
	Glyph     rune   // CommandGlyph only
	Transform imui.Matrix
	UV        [3]imui.Vec2 // CommandTriangle only
}

// String returns a compact one-line description, for logs and test output.
func (c Command) String() string {
	if c.Type == CommandGlyph {
		return fmt.Sprintf("glyph %s %q %v", c.Resource, c.Glyph, c.Transform)
	}
	return fmt.Sprintf("triangle %s %v uv=%v", c.Resource, c.Transform, c.UV)
}

// Recorder implements imui.Backend[string, string].
//
// Every image has a width/height ratio of 1 unless listed in Ratios. Every
// glyph uses Glyph metrics unless listed in Glyphs. Kerning is looked up in
// Kernings by the two-rune string of the pair.
type Recorder struct {
	Ratios       map[string]float64
	Glyph        imui.GlyphInfos
	Glyphs       map[rune]imui.GlyphInfos
	Kernings     map[string]float64
	LineHeightEM float64

	Commands []Command
}

var _ imui.Backend[string, string] = (*Recorder)(nil)

// DefaultGlyph is the metric set a new Recorder uses for every glyph: a
// half-EM wide, one-EM tall box sitting on the baseline.
var DefaultGlyph = imui.GlyphInfos{
	Width:    0.5,
	Height:   1,
	XOffset:  0,
	YOffset:  1,
	XAdvance: 0.6,
}

// New returns a Recorder with DefaultGlyph metrics and a line height of 1.2.
func New() *Recorder {
	return &Recorder{
		Ratios:       make(map[string]float64),
		Glyph:        DefaultGlyph,
		Glyphs:       make(map[rune]imui.GlyphInfos),
		Kernings:     make(map[string]float64),
		LineHeightEM: 1.2,
	}
}

// DrawTriangle implements imui.ImageDrawer.
func (r *Recorder) DrawTriangle(img string, m imui.Matrix, uv [3]imui.Vec2) {
	r.Commands = append(r.Commands, Command{
		Type:      CommandTriangle,
		Resource:  img,
		Transform: m,
		UV:        uv,
	})
}

// ImageWidthPerHeight implements imui.ImageDrawer.
func (r *Recorder) ImageWidthPerHeight(img string) float64 {
	if v, ok := r.Ratios[img]; ok {
		return v
	}
	return 1
}

// DrawGlyph implements imui.TextDrawer.
func (r *Recorder) DrawGlyph(font string, glyph rune, m imui.Matrix) {
	r.Commands = append(r.Commands, Command{
		Type:      CommandGlyph,
		Resource:  font,
		Glyph:     glyph,
		Transform: m,
	})
}

// LineHeight implements imui.TextDrawer.
func (r *Recorder) LineHeight(string) float64 {
	return r.LineHeightEM
}

// GlyphInfos implements imui.TextDrawer.
func (r *Recorder) GlyphInfos(_ string, glyph rune) imui.GlyphInfos {
	if g, ok := r.Glyphs[glyph]; ok {
		return g
	}
	return r.Glyph
}

// Kerning implements imui.TextDrawer.
func (r *Recorder) Kerning(_ string, first, second rune) float64 {
	return r.Kernings[string([]rune{first, second})]
}

// Reset drops every recorded command.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Triangles returns the recorded triangles, in draw order.
func (r *Recorder) Triangles() []Command {
	return r.filter(CommandTriangle)
}

// GlyphCommands returns the recorded glyphs, in draw order.
func (r *Recorder) GlyphCommands() []Command {
	return r.filter(CommandGlyph)
}

// Text returns the drawn glyphs as a string.
func (r *Recorder) Text() string {
	var b strings.Builder
	for _, c := range r.Commands {
		if c.Type == CommandGlyph {
			b.WriteRune(c.Glyph)
		}
	}
	return b.String()
}

// Images returns the resource of every quad drawn with imui.DrawImage, one
// entry per pair of triangles.
func (r *Recorder) Images() []string {
	tris := r.Triangles()
	out := make([]string, 0, len(tris)/2)
	for i := 0; i+1 < len(tris); i += 2 {
		out = append(out, tris[i].Resource)
	}
	return out
}

func (r *Recorder) filter(t CommandType) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
