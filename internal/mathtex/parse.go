// Package mathtex typesets the small subset of TeX math markup the scene
// uses: italic math letters, \text{}, operator names, Greek letters and
// superscripts. It is not a TeX engine.
package mathtex

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	ErrUnknownCommand = errors.New("mathtex: unknown command")
	ErrSyntax         = errors.New("mathtex: syntax error")
)

// Kind is the TeX atom class; it drives inter-atom spacing.
type Kind int

const (
	Ord Kind = iota
	Op
	Bin
	Rel
)

// Atom is one typeset unit: a run of runes in one font with an optional
// superscript.
type Atom struct {
	Kind   Kind
	Runes  []rune
	Italic bool
	Sup    []Atom
}

func (a Atom) String() string {
	s := string(a.Runes)
	if len(a.Sup) > 0 {
		s += "^{" + Plain(a.Sup) + "}"
	}
	return s
}

// Plain flattens atoms back to readable text, e.g. "sin²θ" becomes "sin^{2}θ".
func Plain(atoms []Atom) string {
	s := ""
	for _, a := range atoms {
		s += a.String()
	}
	return s
}

var operatorNames = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true, "log": true,
}

var greek = map[string]rune{
	"alpha": 'α', "beta": 'β', "gamma": 'γ', "delta": 'δ', "theta": 'θ',
	"phi": 'φ', "pi": 'π', "sigma": 'σ', "omega": 'ω',
}

// Parse turns markup into atoms.
func Parse(src string) ([]Atom, error) {
	p := &parser{src: []rune(src)}
	atoms, err := p.list(false)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, p.src[p.pos], p.pos)
	}
	return classify(atoms), nil
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool  { return p.pos >= len(p.src) }
func (p *parser) peek() rune { return p.src[p.pos] }

// list parses atoms until end of input or, inside a group, a closing brace.
func (p *parser) list(inGroup bool) ([]Atom, error) {
	var out []Atom
	for !p.eof() {
		r := p.peek()
		switch {
		case r == '}':
			if !inGroup {
				return nil, fmt.Errorf("%w: unbalanced '}' at %d", ErrSyntax, p.pos)
			}
			return out, nil
		case unicode.IsSpace(r):
			p.pos++ // spaces are ignored in math mode
		case r == '^':
			p.pos++
			if len(out) == 0 {
				out = append(out, Atom{Kind: Ord})
			}
			sup, err := p.argument()
			if err != nil {
				return nil, err
			}
			out[len(out)-1].Sup = append(out[len(out)-1].Sup, sup...)
		case r == '{':
			p.pos++
			group, err := p.list(true)
			if err != nil {
				return nil, err
			}
			if err := p.expect('}'); err != nil {
				return nil, err
			}
			out = append(out, group...)
		case r == '\\':
			atoms, err := p.command()
			if err != nil {
				return nil, err
			}
			out = append(out, atoms...)
		default:
			p.pos++
			out = append(out, symbolAtom(r))
		}
	}
	if inGroup {
		return nil, fmt.Errorf("%w: missing '}'", ErrSyntax)
	}
	return out, nil
}

// argument parses a superscript argument: a braced group or a single token.
func (p *parser) argument() ([]Atom, error) {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
	if p.eof() {
		return nil, fmt.Errorf("%w: missing superscript", ErrSyntax)
	}
	switch r := p.peek(); r {
	case '{':
		p.pos++
		group, err := p.list(true)
		if err != nil {
			return nil, err
		}
		return group, p.expect('}')
	case '\\':
		return p.command()
	default:
		p.pos++
		return []Atom{symbolAtom(r)}, nil
	}
}

func (p *parser) expect(r rune) error {
	if p.eof() || p.peek() != r {
		return fmt.Errorf("%w: expected %q at %d", ErrSyntax, r, p.pos)
	}
	p.pos++
	return nil
}

func (p *parser) command() ([]Atom, error) {
	p.pos++ // backslash
	if p.eof() {
		return nil, fmt.Errorf("%w: trailing backslash", ErrSyntax)
	}
	start := p.pos
	for !p.eof() && unicode.IsLetter(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		// control symbol such as \, or \;
		r := p.peek()
		p.pos++
		switch r {
		case ',':
			return []Atom{{Kind: Ord, Runes: []rune{' '}}}, nil
		case ' ', ';':
			return []Atom{{Kind: Ord, Runes: []rune{' '}}}, nil
		}
		return nil, fmt.Errorf("%w: \\%c", ErrUnknownCommand, r)
	}
	name := string(p.src[start:p.pos])
	switch {
	case name == "text":
		return p.text()
	case operatorNames[name]:
		return []Atom{{Kind: Op, Runes: []rune(name)}}, nil
	case greek[name] != 0:
		return []Atom{{Kind: Ord, Runes: []rune{greek[name]}, Italic: true}}, nil
	case name == "cdot":
		return []Atom{{Kind: Bin, Runes: []rune{'·'}}}, nil
	}
	return nil, fmt.Errorf("%w: \\%s", ErrUnknownCommand, name)
}

// text parses \text{...}: upright, spaces kept, no nesting.
func (p *parser) text() ([]Atom, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	start := p.pos
	for !p.eof() && p.peek() != '}' {
		p.pos++
	}
	body := p.src[start:p.pos]
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return []Atom{{Kind: Ord, Runes: append([]rune(nil), body...)}}, nil
}

func symbolAtom(r rune) Atom {
	switch r {
	case '=', '<', '>':
		return Atom{Kind: Rel, Runes: []rune{r}}
	case '+':
		return Atom{Kind: Bin, Runes: []rune{r}}
	case '-':
		return Atom{Kind: Bin, Runes: []rune{'−'}}
	}
	return Atom{Kind: Ord, Runes: []rune{r}, Italic: unicode.IsLetter(r)}
}

// classify demotes binary operators with no left operand to ordinary atoms,
// as TeX does for a leading minus.
func classify(atoms []Atom) []Atom {
	for i := range atoms {
		if atoms[i].Kind != Bin {
			continue
		}
		if i == 0 || atoms[i-1].Kind == Bin || atoms[i-1].Kind == Rel || atoms[i-1].Kind == Op ||
			i == len(atoms)-1 {
			atoms[i].Kind = Ord
		}
	}
	return atoms
}
