// Package videoloop produces frames by decoding an MP4 file once at startup
// and replaying it in a loop. The container is probed with mp4ff, the actual
// pixel decode runs through an external ffmpeg process, and each native-size
// frame is scaled down to the canvas size as it is read.
package videoloop

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/image/draw"

	"github.com/user/framecast/pkg/pixel"
	"github.com/user/framecast/pkg/ports"
)

// ErrFFmpegNotFound is returned when no usable ffmpeg binary can be located.
var ErrFFmpegNotFound = errors.New("videoloop: ffmpeg not found")

// Producer replays decoded frames in an endless loop.
type Producer struct {
	label  string
	frames []*pixel.Buffer
	next   int
}

// Options configures the video decode.
type Options struct {
	// FFmpegPath overrides ffmpeg discovery.
	FFmpegPath string
}

// New decodes the MP4 at path into width x height RGB frames. It fails when
// the file is missing, the container has no video track, or ffmpeg is not
// available; callers typically drop the video mode from the rotation then.
func New(label, path string, width, height int, opts Options) (*Producer, error) {
	info, err := Probe(path)
	if err != nil {
		return nil, err
	}

	ffmpeg, err := findFFmpeg(opts.FFmpegPath)
	if err != nil {
		return nil, err
	}

	frames, err := decodeFrames(ffmpeg, path, info, width, height)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("videoloop: no frames decoded from %s", path)
	}

	return &Producer{label: label, frames: frames}, nil
}

// Label implements ports.FrameProducer.
func (p *Producer) Label() string { return p.label }

// Frame returns the next frame, wrapping to the start at the end of the clip.
func (p *Producer) Frame() (*pixel.Buffer, error) {
	frame := p.frames[p.next]
	p.next = (p.next + 1) % len(p.frames)
	return frame, nil
}

// FrameCount returns the number of decoded frames in the loop.
func (p *Producer) FrameCount() int { return len(p.frames) }

// decodeFrames runs ffmpeg to decode the whole file to raw RGB24 and scales
// each frame to the target size while streaming from the pipe, so only one
// native-size frame is held at a time.
func decodeFrames(ffmpeg, path string, info Info, width, height int) ([]*pixel.Buffer, error) {
	cmd := exec.Command(ffmpeg,
		"-i", path,
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-v", "error",
		"-",
	)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	reader := bufio.NewReaderSize(stdout, 1<<20)
	nativeSize := info.Width * info.Height * 3
	native := image.NewRGBA(image.Rect(0, 0, info.Width, info.Height))
	raw := make([]byte, nativeSize)

	var frames []*pixel.Buffer
	for {
		if _, err := io.ReadFull(reader, raw); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			cmd.Process.Kill()
			cmd.Wait()
			return nil, fmt.Errorf("read frame: %w", err)
		}
		rgbToRGBA(raw, native)
		frames = append(frames, scale(native, width, height))
	}

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}
	return frames, nil
}

// rgbToRGBA expands packed RGB24 bytes into the RGBA image used for scaling.
func rgbToRGBA(raw []byte, dst *image.RGBA) {
	di := 0
	for si := 0; si < len(raw); si += 3 {
		dst.Pix[di] = raw[si]
		dst.Pix[di+1] = raw[si+1]
		dst.Pix[di+2] = raw[si+2]
		dst.Pix[di+3] = 255
		di += 4
	}
}

// scale resizes a native frame down to the canvas size.
func scale(src *image.RGBA, width, height int) *pixel.Buffer {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	buf := pixel.NewBuffer(width, height)
	di := 0
	for si := 0; si < len(scaled.Pix); si += 4 {
		buf.Pix[di] = scaled.Pix[si]
		buf.Pix[di+1] = scaled.Pix[si+1]
		buf.Pix[di+2] = scaled.Pix[si+2]
		di += 3
	}
	return buf
}

// findFFmpeg searches for ffmpeg at the custom path, in PATH, then in common
// install locations.
func findFFmpeg(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s", ErrFFmpegNotFound, customPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	for _, p := range []string{
		"/usr/bin/ffmpeg",
		"/usr/local/bin/ffmpeg",
		"/opt/homebrew/bin/ffmpeg",
		"/snap/bin/ffmpeg",
	} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrFFmpegNotFound
}

var _ ports.FrameProducer = (*Producer)(nil)
