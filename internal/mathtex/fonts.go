package mathtex

import (
	"fmt"
	"sync"

	"go-trig-proof/pkg/geom"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Glyphs are loaded at this many pixels per em; results are divided back to
// em units so the value only affects precision.
const emPixels = 1024

// Fonts holds the upright and italic faces used for math markup.
// Methods are safe for concurrent use.
type Fonts struct {
	mu      sync.Mutex
	upright *sfnt.Font
	italic  *sfnt.Font
	buf     sfnt.Buffer
}

var (
	defaultFonts    *Fonts
	defaultFontsErr error
	defaultOnce     sync.Once
)

// DefaultFonts returns the Go Regular / Go Italic pair, parsed once.
func DefaultFonts() (*Fonts, error) {
	defaultOnce.Do(func() {
		defaultFonts, defaultFontsErr = NewFonts(goregular.TTF, goitalic.TTF)
	})
	return defaultFonts, defaultFontsErr
}

// NewFonts parses an upright and an italic TrueType/OpenType font.
func NewFonts(upright, italic []byte) (*Fonts, error) {
	u, err := sfnt.Parse(upright)
	if err != nil {
		return nil, fmt.Errorf("failed to parse upright font: %w", err)
	}
	i, err := sfnt.Parse(italic)
	if err != nil {
		return nil, fmt.Errorf("failed to parse italic font: %w", err)
	}
	return &Fonts{upright: u, italic: i}, nil
}

func (f *Fonts) face(italic bool) *sfnt.Font {
	if italic {
		return f.italic
	}
	return f.upright
}

// index resolves r, falling back to an ASCII look-alike when the face has
// no glyph for it.
func (f *Fonts) index(face *sfnt.Font, r rune) (sfnt.GlyphIndex, error) {
	idx, err := face.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, err
	}
	if idx == 0 {
		if alt, ok := fallbacks[r]; ok {
			return face.GlyphIndex(&f.buf, alt)
		}
	}
	return idx, nil
}

var fallbacks = map[rune]rune{'−': '-', 'θ': '0', '·': '.'}

// Advance returns the horizontal advance of r in em units.
func (f *Fonts) Advance(r rune, italic bool) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(italic)
	idx, err := f.index(face, r)
	if err != nil {
		return 0, err
	}
	adv, err := face.GlyphAdvance(&f.buf, idx, fixed.I(emPixels), font.HintingNone)
	if err != nil {
		return 0, err
	}
	return fromFixed(adv), nil
}

// XHeight returns the height of lowercase letters in em units.
func (f *Fonts) XHeight() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.upright.Metrics(&f.buf, fixed.I(emPixels), font.HintingNone)
	if err != nil || m.XHeight == 0 {
		return 0.5
	}
	return fromFixed(m.XHeight)
}

// Outline returns the contours of r in em units with y pointing up and the
// origin on the baseline at the glyph's pen position.
func (f *Fonts) Outline(r rune, italic bool) ([]geom.Path, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(italic)
	idx, err := f.index(face, r)
	if err != nil {
		return nil, err
	}
	segs, err := face.LoadGlyph(&f.buf, idx, fixed.I(emPixels), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load glyph %q: %w", r, err)
	}
	pt := func(p fixed.Point26_6) geom.Vec {
		return geom.Vec{X: fromFixed(p.X), Y: -fromFixed(p.Y)}
	}
	var paths []geom.Path
	var cur *geom.Path
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			paths = append(paths, geom.Path{Closed: true})
			cur = &paths[len(paths)-1]
			cur.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			cur.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cur.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			cur.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	return paths, nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64 / emPixels
}
