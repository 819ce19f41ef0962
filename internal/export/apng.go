package export

import (
	"fmt"
	"os"

	"github.com/setanarut/apng"
)

// WriteAPNG renders the sequence and saves it as an animated PNG. APNG is
// lossless and keeps the full 8-bit alpha channel, so the transparent
// background survives intact; the tradeoff is file size.
func WriteAPNG(path string, s *Sequence, frameRate int) error {
	delay := 100 / frameRate // hundredths of a second per frame
	if delay < 1 {
		delay = 1
	}
	frames := s.All()
	delays := make([]uint16, len(frames))
	for i := range delays {
		delays[i] = uint16(delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := apng.EncodeAll(f, &apng.APNG{Images: frames, Delays: delays}); err != nil {
		f.Close()
		return fmt.Errorf("apng encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info().Str("path", path).Int("frames", len(frames)).Msg("wrote APNG")
	return nil
}
