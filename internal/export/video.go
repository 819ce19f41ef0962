package export

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// VideoOptions selects the codec and quality parameters handed to ffmpeg.
// The defaults produce a QuickTime container with ProRes 4444, one of the
// few widely supported codecs that keeps the alpha channel.
type VideoOptions struct {
	FrameRate int
	Codec     string
	Profile   string
	PixFmt    string
}

// DefaultVideoOptions returns the alpha-preserving ProRes setup.
func DefaultVideoOptions(frameRate int) VideoOptions {
	return VideoOptions{
		FrameRate: frameRate,
		Codec:     "prores_ks",
		Profile:   "4444",
		PixFmt:    "yuva444p10le",
	}
}

// WriteVideo streams raw RGBA frames into an ffmpeg child process that
// encodes them into the video container at path. Frames are rendered one at
// a time and piped as they are produced, so the whole sequence is never held
// in memory. Encoding failures (missing ffmpeg binary, unsupported codec)
// come back as wrapped errors with ffmpeg's diagnostics attached.
func WriteVideo(ctx context.Context, path string, s *Sequence, o VideoOptions) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("video export needs ffmpeg on PATH: %w", err)
	}
	size := s.Canvas.Size()

	cmd := exec.CommandContext(ctx, "ffmpeg", ffmpegArgs(path, size, o)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	writeErr := func() error {
		defer stdin.Close()
		for i := 0; i < s.Frames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame := s.Render(i)
			// NRGBA rows are contiguous for a zero-origin frame,
			// so Pix can be streamed as one rawvideo frame.
			if _, err := stdin.Write(frame.Pix); err != nil {
				return fmt.Errorf("pipe frame %d: %w", i, err)
			}
		}
		return nil
	}()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w\n%s", err, tail(stderr.Bytes(), 600))
	}
	if writeErr != nil {
		return writeErr
	}
	logger.Info().Str("path", path).Int("frames", s.Frames).Str("codec", o.Codec).Msg("wrote video")
	return nil
}

// ffmpegArgs builds the ffmpeg invocation: raw straight-alpha RGBA frames on
// stdin, alpha-capable codec on the output.
func ffmpegArgs(path string, size int, o VideoOptions) []string {
	dim := strconv.Itoa(size) + "x" + strconv.Itoa(size)
	rate := strconv.Itoa(o.FrameRate)
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", dim,
		"-r", rate,
		"-i", "-",
		"-c:v", o.Codec,
	}
	if o.Profile != "" {
		args = append(args, "-profile:v", o.Profile)
	}
	if o.PixFmt != "" {
		args = append(args, "-pix_fmt", o.PixFmt)
	}
	return append(args, path)
}

func tail(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[len(b)-n:]
}
