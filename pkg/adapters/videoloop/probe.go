package videoloop

import (
	"fmt"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Info describes the video track of an MP4 file.
type Info struct {
	Width       int
	Height      int
	FrameCount  int
	DurationSec float64
}

// FPS returns the average frame rate, or 0 when the duration is unknown.
func (i Info) FPS() float64 {
	if i.DurationSec <= 0 {
		return 0
	}
	return float64(i.FrameCount) / i.DurationSec
}

// Probe parses the MP4 container and returns the video track's native
// dimensions and timing. The ffmpeg decode that follows needs the exact
// native size to slice the rawvideo byte stream into frames.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open video: %w", err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}
	if mp4File.Moov == nil {
		return Info{}, fmt.Errorf("no moov box in %s", path)
	}

	var info Info
	for _, trak := range mp4File.Moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil {
			stbl := trak.Mdia.Minf.Stbl
			if stbl.Stsd != nil {
				for _, child := range stbl.Stsd.Children {
					if visual, ok := child.(*mp4.VisualSampleEntryBox); ok {
						info.Width = int(visual.Width)
						info.Height = int(visual.Height)
					}
				}
			}
			if stbl.Stsz != nil {
				info.FrameCount = int(stbl.Stsz.SampleNumber)
			}
		}
		if trak.Mdia.Mdhd != nil && trak.Mdia.Mdhd.Timescale > 0 {
			info.DurationSec = float64(trak.Mdia.Mdhd.Duration) / float64(trak.Mdia.Mdhd.Timescale)
		}
		break
	}

	if info.Width == 0 || info.Height == 0 {
		return Info{}, fmt.Errorf("no video track found in %s", path)
	}
	return info, nil
}
