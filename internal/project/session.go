package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/clip-trimmer/internal/model"
)

const (
	// SidecarSuffix is appended to the video path to form the sidecar path
	SidecarSuffix = ".trim.yaml"
	// SessionVersion is the current sidecar format version
	SessionVersion = 1
)

// ErrNoSession is returned by Load when the video has no sidecar
var ErrNoSession = errors.New("no saved trim session")

// Session is the saved trim state of one video
type Session struct {
	Version        int             `yaml:"version"`
	Source         string          `yaml:"source"`
	Duration       time.Duration   `yaml:"duration"`
	Range          model.TrimRange `yaml:"range"`
	ThumbnailCount int             `yaml:"thumbnailCount,omitempty"`
	SavedAt        time.Time       `yaml:"savedAt"`
}

// SidecarPath returns "<video>.trim.yaml"
func SidecarPath(videoPath string) string {
	return videoPath + SidecarSuffix
}

// NewSession captures the selection of videoPath
func NewSession(videoPath string, duration time.Duration, r model.TrimRange, thumbnailCount int) *Session {
	return &Session{
		Version:        SessionVersion,
		Source:         filepath.Base(videoPath),
		Duration:       duration,
		Range:          r,
		ThumbnailCount: thumbnailCount,
	}
}

// Save writes the session next to videoPath, replacing any previous one
func Save(videoPath string, s *Session) error {
	if s == nil {
		return errors.New("session is nil")
	}
	if !s.Range.Valid() {
		return fmt.Errorf("%w: %s", model.ErrInvalidRange, s.Range)
	}

	out := *s
	if out.Version == 0 {
		out.Version = SessionVersion
	}
	out.SavedAt = time.Now().UTC().Truncate(time.Second)

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to encode trim session: %w", err)
	}

	path := SidecarPath(videoPath)
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create trim session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write trim session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write trim session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace trim session file: %w", err)
	}

	s.Version = out.Version
	s.SavedAt = out.SavedAt
	return nil
}

// Load reads the sidecar of videoPath
func Load(videoPath string) (*Session, error) {
	data, err := os.ReadFile(SidecarPath(videoPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read trim session file: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse trim session YAML: %w", err)
	}

	if err := validateSession(&s); err != nil {
		return nil, fmt.Errorf("invalid trim session: %w", err)
	}

	return &s, nil
}

func validateSession(s *Session) error {
	if s.Version < 1 || s.Version > SessionVersion {
		return fmt.Errorf("unsupported version %d", s.Version)
	}
	if s.Duration < 0 {
		return fmt.Errorf("duration must be >= 0, got %s", s.Duration)
	}
	if !s.Range.Valid() {
		return fmt.Errorf("%w: %s", model.ErrInvalidRange, s.Range)
	}
	if s.ThumbnailCount < 0 {
		return fmt.Errorf("thumbnailCount must be >= 0, got %d", s.ThumbnailCount)
	}
	return nil
}

// Restore maps the saved range onto a [0, maxValue] slider for a video of
// length total. A session saved for a different duration is clamped to the
// new one.
func (s *Session) Restore(maxValue float64, total time.Duration) (float64, float64) {
	return s.Range.SliderValues(maxValue, total)
}

// Matches reports whether the session was saved for a video of this length,
// allowing for container rounding.
func (s *Session) Matches(total time.Duration) bool {
	diff := s.Duration - total
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Second
}
