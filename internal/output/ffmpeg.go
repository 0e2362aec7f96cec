package output

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// FFmpeg streams raw RGBA frames into an ffmpeg process that encodes an
// H.264 mp4.
type FFmpeg struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	width  int
	height int
}

// NewFFmpeg starts bin (usually "ffmpeg" from PATH).
func NewFFmpeg(bin, path string, width, height, fps int) (*FFmpeg, error) {
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	cmd := exec.Command(bin, ffmpegArgs(path, width, height, fps)...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	return &FFmpeg{cmd: cmd, stdin: stdin, width: width, height: height}, nil
}

func ffmpegArgs(path string, width, height, fps int) []string {
	return []string{
		"-y", "-loglevel", "error",
		"-f", "rawvideo", "-pix_fmt", "rgba",
		"-s", strconv.Itoa(width) + "x" + strconv.Itoa(height),
		"-r", strconv.Itoa(fps),
		"-i", "-",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		path,
	}
}

func (f *FFmpeg) WriteFrame(ctx context.Context, img *image.RGBA) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := img.Bounds()
	if b.Dx() != f.width || b.Dy() != f.height {
		return fmt.Errorf("ffmpeg: frame is %dx%d, stream is %dx%d", b.Dx(), b.Dy(), f.width, f.height)
	}
	if img.Stride == 4*f.width {
		_, err := f.stdin.Write(img.Pix[:4*f.width*f.height])
		return err
	}
	for y := 0; y < f.height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*f.width]
		if _, err := f.stdin.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Close ends the input stream and waits for ffmpeg to finish the file.
func (f *FFmpeg) Close() error {
	if err := f.stdin.Close(); err != nil {
		return err
	}
	return f.cmd.Wait()
}
