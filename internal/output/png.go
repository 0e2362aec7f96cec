package output

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// pngDigits is the zero padding of frame numbers; enough for an hour at 60 fps.
const pngDigits = 6

// PNGSequence writes prefix_000000.png, prefix_000001.png, ...
type PNGSequence struct {
	prefix   string
	n        int
	enc      png.Encoder
	last     *image.RGBA
	lastFile string
}

// NewPNGSequence creates the directory of prefix if needed.
func NewPNGSequence(prefix string) (*PNGSequence, error) {
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return &PNGSequence{prefix: prefix, enc: png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

// Name returns the file name of frame i.
func (p *PNGSequence) Name(i int) string {
	return fmt.Sprintf("%s_%0*d.png", p.prefix, pngDigits, i)
}

// Frames returns how many frames were written.
func (p *PNGSequence) Frames() int { return p.n }

func (p *PNGSequence) WriteFrame(ctx context.Context, img *image.RGBA) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := p.Name(p.n)
	// still frames are encoded once and copied
	if img == p.last && p.lastFile != "" {
		if err := copyFile(p.lastFile, name); err != nil {
			return err
		}
	} else if err := p.encode(name, img); err != nil {
		return err
	}
	p.last, p.lastFile = img, name
	p.n++
	return nil
}

func (p *PNGSequence) encode(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := p.enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func (p *PNGSequence) Close() error { return nil }
