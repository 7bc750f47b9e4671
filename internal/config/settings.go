package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/clip-trimmer/internal/model"
	"github.com/ytget/clip-trimmer/internal/platform"
)

// NotifyPreference selects how often the trim slider reports changes
type NotifyPreference string

const (
	NotifyOnChange   NotifyPreference = "change"
	NotifyEveryEvent NotifyPreference = "every_event"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyThumbnailCount     = "thumbnail_count"
	KeyTrimMode           = "trim_mode"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyNotifyMode         = "notify_mode"
	KeySaveSidecar        = "save_sidecar"
)

// Default values
const (
	DefaultThumbnailCount     = 10
	MinThumbnailCount         = 1
	MaxThumbnailCount         = 32
	DefaultTrimMode           = model.TrimModeCopy
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	DefaultNotifyMode         = NotifyOnChange
	DefaultSaveSidecar        = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the directory exported clips are written to
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use system default Videos directory
		defaultDir, err := platform.GetHomeVideosDir()
		if err != nil {
			defaultDir = "/tmp/clips"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetThumbnailCount returns how many frames are drawn along the slider
func (s *Settings) GetThumbnailCount() int {
	value := s.app.Preferences().Int(KeyThumbnailCount)
	if value <= 0 {
		s.SetThumbnailCount(DefaultThumbnailCount)
		return DefaultThumbnailCount
	}
	return value
}

// SetThumbnailCount sets the number of slider frames
func (s *Settings) SetThumbnailCount(count int) {
	if count < MinThumbnailCount {
		count = MinThumbnailCount
	}
	if count > MaxThumbnailCount {
		count = MaxThumbnailCount
	}
	s.app.Preferences().SetInt(KeyThumbnailCount, count)
}

// GetTrimMode returns the configured export mode
func (s *Settings) GetTrimMode() model.TrimMode {
	mode := model.TrimMode(s.app.Preferences().String(KeyTrimMode))
	switch mode {
	case model.TrimModeCopy, model.TrimModeReencode:
		return mode
	default:
		s.SetTrimMode(DefaultTrimMode)
		return DefaultTrimMode
	}
}

// SetTrimMode sets the export mode
func (s *Settings) SetTrimMode(mode model.TrimMode) {
	if mode != model.TrimModeReencode {
		mode = model.TrimModeCopy
	}
	s.app.Preferences().SetString(KeyTrimMode, string(mode))
}

// GetTrimModeOptions returns available export modes
func (s *Settings) GetTrimModeOptions() []model.TrimMode {
	return []model.TrimMode{model.TrimModeCopy, model.TrimModeReencode}
}

// GetNotifyMode returns how often the slider reports changes
func (s *Settings) GetNotifyMode() NotifyPreference {
	mode := NotifyPreference(s.app.Preferences().String(KeyNotifyMode))
	switch mode {
	case NotifyOnChange, NotifyEveryEvent:
		return mode
	default:
		s.SetNotifyMode(DefaultNotifyMode)
		return DefaultNotifyMode
	}
}

// SetNotifyMode sets the slider notification mode
func (s *Settings) SetNotifyMode(mode NotifyPreference) {
	if mode != NotifyEveryEvent {
		mode = NotifyOnChange
	}
	s.app.Preferences().SetString(KeyNotifyMode, string(mode))
}

// GetSaveSidecar returns whether trim selections are saved next to the video
func (s *Settings) GetSaveSidecar() bool {
	return s.app.Preferences().BoolWithFallback(KeySaveSidecar, DefaultSaveSidecar)
}

// SetSaveSidecar sets whether trim selections are saved next to the video
func (s *Settings) SetSaveSidecar(save bool) {
	s.app.Preferences().SetBool(KeySaveSidecar, save)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal finished clips in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal finished clips in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
