package ui

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clip-trimmer/internal/config"
	"github.com/ytget/clip-trimmer/internal/model"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 520
	SettingsDialogHeight = 480
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry   *widget.Entry
	thumbnailEntry   *widget.Entry
	trimModeSelect   *widget.Select
	notifyModeRadio  *widget.RadioGroup
	saveSidecarCheck *widget.Check
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select

	// Display label <-> stored value
	trimModeLabels   map[model.TrimMode]string
	notifyModeLabels map[config.NotifyPreference]string
	languageLabels   map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the new values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		trimModeLabels: map[model.TrimMode]string{
			model.TrimModeCopy:     localization.GetText(KeyTrimModeCopy),
			model.TrimModeReencode: localization.GetText(KeyTrimModeReencode),
		},
		notifyModeLabels: map[config.NotifyPreference]string{
			config.NotifyOnChange:   localization.GetText(KeyNotifyOnChange),
			config.NotifyEveryEvent: localization.GetText(KeyNotifyEveryEvent),
		},
		languageLabels: settings.GetLanguageOptions(),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Output directory selection
	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	// Number of preview frames
	sd.thumbnailEntry = widget.NewEntry()
	sd.thumbnailEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinThumbnailCount, config.MaxThumbnailCount))
	sd.thumbnailEntry.Validator = validateThumbnailCount

	// Trim mode selection
	trimOptions := []string{}
	for _, mode := range sd.settings.GetTrimModeOptions() {
		trimOptions = append(trimOptions, sd.trimModeLabels[mode])
	}
	sd.trimModeSelect = widget.NewSelect(trimOptions, nil)

	// Slider notification mode
	sd.notifyModeRadio = widget.NewRadioGroup([]string{
		sd.notifyModeLabels[config.NotifyOnChange],
		sd.notifyModeLabels[config.NotifyEveryEvent],
	}, nil)
	sd.notifyModeRadio.Required = true

	sd.saveSidecarCheck = widget.NewCheck(l.GetText(KeySaveSidecar), nil)
	sd.autoRevealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	// Language selection, sorted by display name
	languageOptions := []string{}
	for _, name := range sd.languageLabels {
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyOutputDirectory), outputDirRow),
		widget.NewFormItem(l.GetText(KeyTrimMode), sd.trimModeSelect),
		widget.NewFormItem(l.GetText(KeyThumbnailCount), sd.thumbnailEntry),
		widget.NewFormItem(l.GetText(KeyNotifyMode), sd.notifyModeRadio),
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(
		form,
		widget.NewSeparator(),
		sd.saveSidecarCheck,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func validateThumbnailCount(text string) error {
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n < config.MinThumbnailCount || n > config.MaxThumbnailCount {
		return fmt.Errorf("must be between %d and %d", config.MinThumbnailCount, config.MaxThumbnailCount)
	}
	return nil
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.thumbnailEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailCount()))
	sd.trimModeSelect.SetSelected(sd.trimModeLabels[sd.settings.GetTrimMode()])
	sd.notifyModeRadio.SetSelected(sd.notifyModeLabels[sd.settings.GetNotifyMode()])
	sd.saveSidecarCheck.SetChecked(sd.settings.GetSaveSidecar())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the values currently shown in the dialog
func (sd *SettingsDialog) apply() {
	if dir := sd.outputDirEntry.Text; dir != "" {
		sd.settings.SetOutputDirectory(dir)
	}

	if text := sd.thumbnailEntry.Text; text != "" {
		if count, err := strconv.Atoi(text); err == nil {
			sd.settings.SetThumbnailCount(count)
		}
	}

	for mode, label := range sd.trimModeLabels {
		if label == sd.trimModeSelect.Selected {
			sd.settings.SetTrimMode(mode)
		}
	}

	for mode, label := range sd.notifyModeLabels {
		if label == sd.notifyModeRadio.Selected {
			sd.settings.SetNotifyMode(mode)
		}
	}

	sd.settings.SetSaveSidecar(sd.saveSidecarCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	for code, name := range sd.languageLabels {
		if name == sd.languageSelect.Selected {
			sd.settings.SetLanguage(code)
		}
	}
}
