package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ffprobe / ffmpeg arguments for previews
const (
	FFprobeLogLevel      = "error"
	FFprobeStreamSelect  = "v:0"
	FFprobeEntries       = "stream=width,height:format=duration"
	FFprobeJSONFormat    = "json"
	FrameOutputFormat    = "image2pipe"
	FrameCodec           = "png"
	FrameOutputTarget    = "-"
	FrameScaleFilterTmpl = "scale=-2:%d"
)

// Extraction limits
const (
	DefaultFrameHeight   = 120
	MaxParallelExtracts  = 4
	MaxFramesPerPreview  = 64
	secondsFormatPrecise = 3
)

// Errors returned by the preview service
var (
	ErrNoVideoStream = errors.New("no video stream found")
	ErrNoDuration    = errors.New("video duration is unknown")
)

// VideoInfo describes the first video stream of a file
type VideoInfo struct {
	Path     string
	Duration time.Duration
	Width    int
	Height   int
}

// PreviewService probes videos and extracts evenly spaced frames
type PreviewService struct {
	ffmpegPath  string
	ffprobePath string
	parallel    int
	run         commandRunner
}

// NewPreviewService creates a preview service using ffmpeg/ffprobe from PATH
func NewPreviewService() *PreviewService {
	parallel := runtime.NumCPU()
	if parallel > MaxParallelExtracts {
		parallel = MaxParallelExtracts
	}
	return &PreviewService{
		ffmpegPath:  FFmpegCommand,
		ffprobePath: FFprobeCommand,
		parallel:    parallel,
		run:         runCommand,
	}
}

// runCommand executes name and returns stdout, folding stderr into the error
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// Probe reads duration and dimensions of the first video stream
func (p *PreviewService) Probe(ctx context.Context, path string) (VideoInfo, error) {
	if _, err := os.Stat(path); err != nil {
		return VideoInfo{}, fmt.Errorf("input file does not exist: %s", path)
	}

	out, err := p.run(ctx, p.ffprobePath, BuildProbeArgs(path)...)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	info, err := parseProbeOutput(out)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("failed to parse ffprobe output for %s: %w", path, err)
	}
	info.Path = path
	return info, nil
}

// BuildProbeArgs builds the ffprobe command arguments
func BuildProbeArgs(path string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-select_streams", FFprobeStreamSelect,
		"-show_entries", FFprobeEntries,
		"-of", FFprobeJSONFormat,
		path,
	}
}

type probeOutput struct {
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func parseProbeOutput(out []byte) (VideoInfo, error) {
	var parsed probeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return VideoInfo{}, err
	}
	if len(parsed.Streams) == 0 || parsed.Streams[0].Width <= 0 || parsed.Streams[0].Height <= 0 {
		return VideoInfo{}, ErrNoVideoStream
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(parsed.Format.Duration), 64)
	if err != nil || seconds <= 0 {
		return VideoInfo{}, ErrNoDuration
	}

	return VideoInfo{
		Duration: time.Duration(seconds * float64(time.Second)),
		Width:    parsed.Streams[0].Width,
		Height:   parsed.Streams[0].Height,
	}, nil
}

// Extract grabs count frames at evenly spaced timestamps, scaled to height
// pixels high. Frames are returned in timeline order.
func (p *PreviewService) Extract(ctx context.Context, path string, duration time.Duration, count, height int) ([]image.Image, error) {
	if count <= 0 {
		return nil, nil
	}
	if count > MaxFramesPerPreview {
		count = MaxFramesPerPreview
	}
	if duration <= 0 {
		return nil, ErrNoDuration
	}
	if height <= 0 {
		height = DefaultFrameHeight
	}

	frames := make([]image.Image, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallel)

	for i := 0; i < count; i++ {
		ts := FrameTimestamp(duration, count, i)
		g.Go(func() error {
			out, err := p.run(ctx, p.ffmpegPath, BuildFrameArgs(path, ts, height)...)
			if err != nil {
				return fmt.Errorf("frame %d at %v: %w", i, ts, err)
			}
			img, err := png.Decode(bytes.NewReader(out))
			if err != nil {
				return fmt.Errorf("frame %d at %v: decode: %w", i, ts, err)
			}
			frames[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("Frame extraction failed for %s: %v", path, err)
		return nil, err
	}
	return frames, nil
}

// FrameTimestamp returns the center of slot i when duration is split into count slots
func FrameTimestamp(duration time.Duration, count, i int) time.Duration {
	if count <= 0 {
		return 0
	}
	slot := float64(duration) / float64(count)
	return time.Duration(slot * (float64(i) + 0.5))
}

// BuildFrameArgs builds ffmpeg arguments that write one PNG frame to stdout
func BuildFrameArgs(path string, at time.Duration, height int) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-ss", formatSeconds(at),
		"-i", path,
		"-frames:v", "1",
		"-vf", fmt.Sprintf(FrameScaleFilterTmpl, height),
		"-f", FrameOutputFormat,
		"-vcodec", FrameCodec,
		FrameOutputTarget,
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', secondsFormatPrecise, 64)
}
