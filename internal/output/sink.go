// Package output holds the destinations rendered frames are written to.
package output

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"go-trig-proof/internal/config"
)

// ErrUnknownFormat is returned by New for a format it has no sink for.
var ErrUnknownFormat = errors.New("unknown output format")

// FrameSink consumes frames in order. A sink may keep a reference to img,
// so callers must not modify a frame after handing it over. The same image
// may be passed several times in a row for a still frame.
type FrameSink interface {
	WriteFrame(ctx context.Context, img *image.RGBA) error
	Close() error
}

// New returns the sink selected by s.Format, writing under s.OutputDir.
func New(s config.Settings) (FrameSink, error) {
	switch s.Format {
	case config.FormatPNG:
		return NewPNGSequence(filepath.Join(s.OutputDir, s.Prefix))
	case config.FormatGIF:
		return NewGIF(filepath.Join(s.OutputDir, s.Prefix+".gif"), s.FPS)
	case config.FormatMP4:
		return NewFFmpeg(s.FFmpeg, filepath.Join(s.OutputDir, s.Prefix+".mp4"), s.Width, s.Height, s.FPS)
	case config.FormatNone:
		return &Counter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, s.Format)
}

// Counter only counts frames.
type Counter struct {
	Frames int
}

func (c *Counter) WriteFrame(ctx context.Context, _ *image.RGBA) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Frames++
	return nil
}

func (c *Counter) Close() error { return nil }

// Channel hands frames to a consumer goroutine. WriteFrame blocks while the
// buffer is full and gives up when ctx is done.
type Channel struct {
	C chan *image.RGBA
}

// NewChannel returns a channel sink with room for buffer frames.
func NewChannel(buffer int) *Channel {
	return &Channel{C: make(chan *image.RGBA, buffer)}
}

func (c *Channel) WriteFrame(ctx context.Context, img *image.RGBA) error {
	select {
	case c.C <- img:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes C so that the consumer sees the end of the stream.
func (c *Channel) Close() error {
	close(c.C)
	return nil
}

// Multi writes every frame to all of its sinks.
type Multi []FrameSink

func (m Multi) WriteFrame(ctx context.Context, img *image.RGBA) error {
	for _, s := range m {
		if err := s.WriteFrame(ctx, img); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
