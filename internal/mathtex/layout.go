package mathtex

import "go-trig-proof/pkg/geom"

const (
	mu = 1.0 / 18 // TeX math unit in em

	supScale  = 0.7
	supRaise  = 0.8 // superscript baseline, in x-heights of the base font
	italicCor = 0.04
)

// spacing between adjacent atom kinds in mu, following TeX's table for
// display/text style (script-style entries are not needed here).
var spacing = map[[2]Kind]float64{
	{Ord, Op}: 3, {Ord, Bin}: 4, {Ord, Rel}: 5,
	{Op, Ord}: 3, {Op, Op}: 3, {Op, Rel}: 5,
	{Bin, Ord}: 4, {Bin, Op}: 4,
	{Rel, Ord}: 5, {Rel, Op}: 5,
}

// Glyph is a positioned character. Origin is the pen position on the
// baseline, in em units; Scale is relative to the base font size.
type Glyph struct {
	Rune   rune
	Italic bool
	Scale  float64
	Origin geom.Vec
}

// Layout is the result of typesetting one formula.
type Layout struct {
	Glyphs []Glyph
	Width  float64

	raise float64
}

// Typeset parses and lays out markup on a single baseline at y = 0.
func Typeset(src string, fonts *Fonts) (Layout, error) {
	atoms, err := Parse(src)
	if err != nil {
		return Layout{}, err
	}
	l := Layout{raise: supRaise * fonts.XHeight()}
	x, err := l.place(atoms, fonts, 0, 0, 1, true)
	if err != nil {
		return Layout{}, err
	}
	l.Width = x
	return l, nil
}

func (l *Layout) place(atoms []Atom, fonts *Fonts, x, y, scale float64, spaced bool) (float64, error) {
	for i, a := range atoms {
		if spaced && i > 0 {
			x += spacing[[2]Kind{atoms[i-1].Kind, a.Kind}] * mu * scale
		}
		for _, r := range a.Runes {
			adv, err := fonts.Advance(r, a.Italic)
			if err != nil {
				return 0, err
			}
			if r != ' ' {
				l.Glyphs = append(l.Glyphs, Glyph{Rune: r, Italic: a.Italic, Scale: scale, Origin: geom.Vec{X: x, Y: y}})
			}
			x += adv * scale
		}
		if len(a.Sup) > 0 {
			if a.Italic {
				x += italicCor * scale
			}
			// scripts use tighter spacing: no glue between their atoms
			nx, err := l.place(a.Sup, fonts, x, y+l.raise*scale, scale*supScale, false)
			if err != nil {
				return 0, err
			}
			x = nx
		}
	}
	return x, nil
}
