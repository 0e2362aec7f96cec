package mathtex

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestParse(t *testing.T) {
	atoms, err := Parse(`\sin^2\theta + \cos^2\theta = 1`)
	if err != nil {
		t.Fatal(err)
	}
	kinds := []Kind{Op, Ord, Bin, Op, Ord, Rel, Ord}
	if len(atoms) != len(kinds) {
		t.Fatalf("got %d atoms: %s", len(atoms), Plain(atoms))
	}
	for i, k := range kinds {
		if atoms[i].Kind != k {
			t.Errorf("atom %d (%s) kind %d, want %d", i, atoms[i], atoms[i].Kind, k)
		}
	}
	if got := Plain(atoms); got != "sin^{2}θ+cos^{2}θ=1" {
		t.Fatalf("plain = %q", got)
	}
	if !atoms[1].Italic || atoms[0].Italic {
		t.Fatal("theta should be italic, sin upright")
	}
}

func TestParseText(t *testing.T) {
	atoms, err := Parse(`\text{horizontal}^2`)
	if err != nil {
		t.Fatal(err)
	}
	if len(atoms) != 1 || string(atoms[0].Runes) != "horizontal" || atoms[0].Italic {
		t.Fatalf("text atom %+v", atoms)
	}
	if len(atoms[0].Sup) != 1 {
		t.Fatal("superscript lost")
	}
}

func TestParseLeadingMinus(t *testing.T) {
	atoms, err := Parse("-1")
	if err != nil {
		t.Fatal(err)
	}
	if atoms[0].Kind != Ord {
		t.Fatal("leading minus should be ordinary")
	}
	atoms, err = Parse("a - b")
	if err != nil {
		t.Fatal(err)
	}
	if atoms[1].Kind != Bin {
		t.Fatal("minus between operands should be binary")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(`\frac{a}{b}`); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("\\frac: %v", err)
	}
	for _, src := range []string{"{a", "a}", `a^`, `\`, `\text{a`} {
		if _, err := Parse(src); !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestTypeset(t *testing.T) {
	fonts, err := DefaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	l, err := Typeset("a^2 = b", fonts)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Glyphs) != 4 {
		t.Fatalf("%d glyphs", len(l.Glyphs))
	}
	sup := l.Glyphs[1]
	if !scalar.EqualWithinAbs(sup.Scale, supScale, 1e-12) || sup.Origin.Y <= 0 {
		t.Fatalf("superscript %+v", sup)
	}
	// the exponent sits on a baseline tied to the base font's x-height
	if want := supRaise * fonts.XHeight(); !scalar.EqualWithinAbs(sup.Origin.Y, want, 1e-12) {
		t.Fatalf("superscript raised %v, want %v", sup.Origin.Y, want)
	}
	if sup.Origin.Y < 0.3 || sup.Origin.Y > 0.5 {
		t.Fatalf("superscript raise %v em out of range", sup.Origin.Y)
	}
	for i := 1; i < len(l.Glyphs); i++ {
		if l.Glyphs[i].Origin.X <= l.Glyphs[i-1].Origin.X {
			t.Fatalf("glyph %d is not right of glyph %d", i, i-1)
		}
	}
	if l.Width <= l.Glyphs[3].Origin.X {
		t.Fatalf("width %v", l.Width)
	}
	// relations get thick spaces on both sides
	plain, _ := Typeset("a=b", fonts)
	spaced, _ := Typeset("a=", fonts)
	if plain.Width <= spaced.Width {
		t.Fatal("no spacing")
	}
}

func TestTypesetSpaces(t *testing.T) {
	fonts, err := DefaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	l, err := Typeset(`\text{a b}`, fonts)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Glyphs) != 2 {
		t.Fatalf("spaces must not become glyphs: %d", len(l.Glyphs))
	}
}

func TestOutline(t *testing.T) {
	fonts, err := DefaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	paths, err := fonts.Outline('o', false)
	if err != nil {
		t.Fatal(err)
	}
	// o has an outer contour and a counter
	if len(paths) != 2 {
		t.Fatalf("o has %d contours", len(paths))
	}
	for _, r := range []rune{'θ', '−'} {
		if p, err := fonts.Outline(r, true); err != nil || len(p) == 0 {
			t.Errorf("%q: %d contours, %v", r, len(p), err)
		}
	}
	if fonts.XHeight() <= 0 || fonts.XHeight() >= 1 {
		t.Fatalf("x height %v", fonts.XHeight())
	}
}
