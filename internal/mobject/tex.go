package mobject

import (
	"fmt"

	"go-trig-proof/internal/mathtex"
	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

// DefaultEmSize is the em height of math text at scale 1, in scene units.
const DefaultEmSize = 0.65

// MathTex is typeset math: one filled submobject per glyph, centred on the
// origin when created.
type MathTex struct {
	*VMobject
	Tex string
}

// NewMathTex typesets markup with the default fonts.
func NewMathTex(markup string, opts ...StyleOption) (*MathTex, error) {
	fonts, err := mathtex.DefaultFonts()
	if err != nil {
		return nil, err
	}
	return NewMathTexWithFonts(markup, fonts, opts...)
}

// NewMathTexWithFonts typesets markup with the given fonts.
func NewMathTexWithFonts(markup string, fonts *mathtex.Fonts, opts ...StyleOption) (*MathTex, error) {
	layout, err := mathtex.Typeset(markup, fonts)
	if err != nil {
		return nil, fmt.Errorf("failed to typeset %q: %w", markup, err)
	}
	style := Style{StrokeColor: render.White, FillColor: render.White, FillOpacity: 1, StrokeOpacity: 1}
	for _, o := range opts {
		o(&style)
	}
	tex := &MathTex{VMobject: &VMobject{Name: "MathTex"}, Tex: markup}
	for _, g := range layout.Glyphs {
		outline, err := fonts.Outline(g.Rune, g.Italic)
		if err != nil {
			return nil, err
		}
		glyph := &VMobject{Name: string(g.Rune), Paths: outline, Style: style}
		k := g.Scale * DefaultEmSize
		origin := g.Origin.Mul(DefaultEmSize)
		glyph.ApplyFunction(func(p geom.Vec) geom.Vec { return origin.Add(p.Mul(k)) })
		tex.Submobjects = append(tex.Submobjects, glyph)
	}
	tex.MoveTo(geom.Origin)
	return tex, nil
}

// Glyphs returns the per-character submobjects.
func (t *MathTex) Glyphs() []*VMobject { return t.Submobjects }

// String returns the markup the object was built from.
func (t *MathTex) String() string { return t.Tex }
