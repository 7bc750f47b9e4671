package ui

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clip-trimmer/internal/config"
	"github.com/ytget/clip-trimmer/internal/media"
	"github.com/ytget/clip-trimmer/internal/model"
	"github.com/ytget/clip-trimmer/internal/platform"
	"github.com/ytget/clip-trimmer/internal/project"
)

// Toast notification constants
const (
	RootToastWidth    = 300
	RootToastHeight   = 120
	RootToastMargin   = 20
	RootToastAutoHide = 5 * time.Second
)

// loadedVideo is the video currently shown in the slider
type loadedVideo struct {
	path string
	info media.VideoInfo
	// ctx is canceled when a newer load supersedes this video
	ctx context.Context
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	device       *DeviceLayout

	preview  media.FrameSource
	exporter media.Exporter

	// Current video; owned by the UI goroutine
	video      *loadedVideo
	loadSeq    int
	loadCtx    context.Context
	loadCancel context.CancelFunc

	// Frame extraction in flight for the current video
	extractSeq    int
	extractCancel context.CancelFunc

	// Trim controls
	slider        *RangeSlider
	fileLabel     *widget.Label
	startLabel    *widget.Label
	endLabel      *widget.Label
	durationLabel *widget.Label
	openBtn       *widget.Button
	exportBtn     *widget.Button
	resetBtn      *widget.Button

	// Export list; rows show snapshots taken from the export service
	exportList  *widget.List
	exportTasks []*model.ExportTask

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Sidecar save debouncing
	saveTimer *time.Timer
	saveMutex sync.Mutex

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, preview media.FrameSource, exporter media.Exporter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		log.Printf("Failed to ensure output directory %s: %v", outputDir, err)
	}
	exporter.SetOutputDirectory(outputDir)

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		device:       NewDeviceLayout(),
		preview:      preview,
		exporter:     exporter,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for export updates
	ui.exporter.SetUpdateCallback(ui.onExportUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	l := ui.localization

	ui.openBtn = widget.NewButton(IconOpen+" "+l.GetText(KeyOpenVideo), ui.onOpenVideo)
	ui.openBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.fileLabel = widget.NewLabel(l.GetText(KeyNoVideo))
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	left := container.NewHBox(settingsBtn, ui.openBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn, ui.openBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, nil, ui.fileLabel)

	// Notification panel under the top row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Trim slider
	appSettings := fyne.CurrentApp().Settings()
	ui.slider = NewRangeSliderWithStyle(RangeSliderStyleForTheme(appSettings.Theme(), appSettings.ThemeVariant()))
	ui.slider.SetRange(0, RangeSliderScale)
	ui.slider.NotifyMode = notifyModeFor(ui.settings.GetNotifyMode())
	ui.slider.SetOnChanged(ui.onRangeChanged)
	sliderHeight := canvas.NewRectangle(color.Transparent)
	sliderHeight.SetMinSize(fyne.NewSize(0, ui.device.SliderHeight()))
	sliderBox := container.NewStack(sliderHeight, ui.slider)

	// Selection readout and actions
	ui.startLabel = widget.NewLabel("")
	ui.endLabel = widget.NewLabel("")
	ui.durationLabel = widget.NewLabel("")
	for _, label := range []*widget.Label{ui.startLabel, ui.endLabel, ui.durationLabel} {
		label.TextStyle = fyne.TextStyle{Monospace: true}
	}
	times := container.NewHBox(ui.startLabel, ui.endLabel, ui.durationLabel)

	ui.resetBtn = widget.NewButton(l.GetText(KeyResetSelection), ui.onResetSelection)
	ui.exportBtn = widget.NewButton(IconExport+" "+l.GetText(KeyExport), ui.onExport)
	ui.exportBtn.Importance = widget.HighImportance
	actions := container.NewHBox(ui.resetBtn, ui.exportBtn)

	controls := ui.device.Controls(times, actions)

	ui.exportList = widget.NewList(
		func() int { return len(ui.exportTasks) },
		func() fyne.CanvasObject { return ui.createExportItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateExportItem(id, obj) },
	)

	top := container.NewVBox(topPanel, ui.notificationContainer, sliderBox, controls, widget.NewSeparator())
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.exportList))

	ui.updateSelectionLabels()
	ui.updateControls()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenVideo), ui.onOpenVideo)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.openBtn.SetText(IconOpen + " " + l.GetText(KeyOpenVideo))
	ui.exportBtn.SetText(IconExport + " " + l.GetText(KeyExport))
	ui.resetBtn.SetText(l.GetText(KeyResetSelection))
	if ui.video == nil {
		ui.fileLabel.SetText(l.GetText(KeyNoVideo))
	}
	ui.updateSelectionLabels()
	ui.exportList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	before := ui.settings.GetThumbnailCount()
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.applySettings(before)
	})
}

// applySettings pushes stored settings into the running UI and services
func (ui *RootUI) applySettings(previousThumbnailCount int) {
	ui.slider.NotifyMode = notifyModeFor(ui.settings.GetNotifyMode())

	outputDir := ui.settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		log.Printf("Failed to ensure output directory %s: %v", outputDir, err)
	}
	ui.exporter.SetOutputDirectory(outputDir)

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	if ui.video != nil && ui.settings.GetThumbnailCount() != previousThumbnailCount {
		ui.extractFrames(ui.loadSeq, ui.video)
	}
}

// notifyModeFor maps the stored preference to the slider mode
func notifyModeFor(pref config.NotifyPreference) NotifyMode {
	if pref == config.NotifyEveryEvent {
		return NotifyEveryEvent
	}
	return NotifyOnChange
}

// onOpenVideo lets the user pick a video file
func (ui *RootUI) onOpenVideo() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File dialog failed: %v", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.LoadVideo(path)
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(platform.VideoExtensions))
	fileDialog.Show()
}

// LoadVideo probes path and fills the slider with its frames. Probing and
// extraction run off the UI goroutine; a newer load supersedes an older one.
func (ui *RootUI) LoadVideo(path string) {
	if !platform.IsVideoFile(path) {
		ui.showNotification(ui.localization.GetText(KeyNotAVideo)+": "+filepath.Base(path), false)
		return
	}

	if ui.loadCancel != nil {
		ui.loadCancel()
	}
	ui.loadSeq++
	seq := ui.loadSeq
	ctx, cancel := context.WithCancel(context.Background())
	ui.loadCtx = ctx
	ui.loadCancel = cancel

	log.Printf("Loading video %s", path)
	ui.showNotification(ui.localization.GetText(KeyLoadingVideo), true)

	go func() {
		probeCtx, probeCancel := context.WithTimeout(ctx, ProbeTimeout)
		info, err := ui.preview.Probe(probeCtx, path)
		probeCancel()
		if err != nil {
			log.Printf("Probe failed for %s: %v", path, err)
			if !errors.Is(err, context.Canceled) {
				ui.showNotification(ui.localization.GetText(KeyVideoLoadFailed)+": "+err.Error(), false)
			}
			return
		}

		var session *project.Session
		if ui.settings.GetSaveSidecar() {
			session, err = project.Load(path)
			if err != nil && !errors.Is(err, project.ErrNoSession) {
				log.Printf("Ignoring trim session for %s: %v", path, err)
			}
		}

		fyne.Do(func() {
			video := ui.applyVideo(seq, path, info, session)
			if video != nil {
				ui.extractFrames(seq, video)
			}
		})
	}()
}

// applyVideo installs a probed video, restoring a saved selection when one
// matches. It returns nil when a newer load has started.
func (ui *RootUI) applyVideo(seq int, path string, info media.VideoInfo, session *project.Session) *loadedVideo {
	if seq != ui.loadSeq {
		return nil
	}

	ctx := ui.loadCtx
	if ctx == nil {
		ctx = context.Background()
	}
	ui.video = &loadedVideo{path: path, info: info, ctx: ctx}
	ui.fileLabel.SetText(filepath.Base(path) + MiddleDotSeparator + model.FormatTimestamp(info.Duration))

	ui.slider.SetThumbnails(nil)
	ui.slider.SetRange(0, RangeSliderScale)
	ui.slider.SetValues(0, RangeSliderScale)

	restored := false
	if session != nil && session.Matches(info.Duration) {
		ui.slider.SetValues(session.Restore(RangeSliderScale, info.Duration))
		restored = true
	}

	ui.updateSelectionLabels()
	ui.updateControls()

	if restored {
		log.Printf("Restored trim session for %s: %s", path, session.Range)
		ui.showNotification(ui.localization.GetText(KeySessionRestored), false)
	}
	return ui.video
}

// extractFrames grabs preview frames for video in the background. It cancels
// an extraction already running, and the video's load context bounds it.
func (ui *RootUI) extractFrames(seq int, video *loadedVideo) {
	if ui.extractCancel != nil {
		ui.extractCancel()
	}
	ui.extractSeq++
	gen := ui.extractSeq
	ctx, cancel := context.WithTimeout(video.ctx, ExtractTimeout)
	ui.extractCancel = cancel

	count := ui.settings.GetThumbnailCount()
	ui.showNotification(ui.localization.GetText(KeyExtractingFrames), true)

	go func() {
		defer cancel()

		frames, err := ui.preview.Extract(ctx, video.path, video.info.Duration, count, media.DefaultFrameHeight)
		if err != nil {
			log.Printf("Frame extraction failed for %s: %v", video.path, err)
			if !errors.Is(ctx.Err(), context.Canceled) {
				ui.showNotification(ui.localization.GetText(KeyVideoLoadFailed)+": "+err.Error(), false)
			}
			return
		}

		fyne.Do(func() {
			if gen != ui.extractSeq {
				return
			}
			if ui.applyFrames(seq, frames) {
				ui.showNotification(ui.localization.GetText(KeyVideoLoaded), false)
			}
		})
	}()
}

// applyFrames hands extracted frames to the slider unless a newer load started
func (ui *RootUI) applyFrames(seq int, frames []image.Image) bool {
	if seq != ui.loadSeq || ui.video == nil {
		return false
	}
	ui.slider.SetThumbnails(frames)
	return true
}

// currentRange converts the slider thumbs to timestamps of the loaded video
func (ui *RootUI) currentRange() model.TrimRange {
	if ui.video == nil {
		return model.TrimRange{}
	}
	lo, hi := ui.slider.Values()
	return model.RangeFromSliderValues(lo, hi, ui.slider.MaxValue, ui.video.info.Duration)
}

// onRangeChanged is the slider listener
func (ui *RootUI) onRangeChanged(_, _ float64) {
	ui.updateSelectionLabels()
	ui.updateControls()
	ui.scheduleSessionSave()
}

// onResetSelection selects the whole video
func (ui *RootUI) onResetSelection() {
	ui.slider.SetValues(ui.slider.MinValue, ui.slider.MaxValue)
	ui.onRangeChanged(ui.slider.Values())
}

// updateSelectionLabels shows start, end and length of the selection
func (ui *RootUI) updateSelectionLabels() {
	l := ui.localization
	if ui.video == nil {
		ui.startLabel.SetText(l.GetText(KeyStart) + ": " + DashPlaceholder)
		ui.endLabel.SetText(l.GetText(KeyEnd) + ": " + DashPlaceholder)
		ui.durationLabel.SetText(l.GetText(KeyDuration) + ": " + DashPlaceholder)
		return
	}

	r := ui.currentRange()
	ui.startLabel.SetText(l.GetText(KeyStart) + ": " + model.FormatTimestamp(r.Start))
	ui.endLabel.SetText(l.GetText(KeyEnd) + ": " + model.FormatTimestamp(r.End))
	ui.durationLabel.SetText(l.GetText(KeyDuration) + ": " + model.FormatTimestamp(r.Duration()))
}

// updateControls enables actions that apply to the current state
func (ui *RootUI) updateControls() {
	if ui.video != nil && ui.currentRange().Valid() {
		ui.exportBtn.Enable()
	} else {
		ui.exportBtn.Disable()
	}
	if ui.video != nil {
		ui.resetBtn.Enable()
	} else {
		ui.resetBtn.Disable()
	}
}

// scheduleSessionSave writes the sidecar once the selection settles
func (ui *RootUI) scheduleSessionSave() {
	if ui.video == nil || !ui.settings.GetSaveSidecar() {
		return
	}
	r := ui.currentRange()
	if !r.Valid() {
		return
	}
	session := project.NewSession(ui.video.path, ui.video.info.Duration, r, ui.settings.GetThumbnailCount())
	path := ui.video.path

	ui.saveMutex.Lock()
	defer ui.saveMutex.Unlock()
	if ui.saveTimer != nil {
		ui.saveTimer.Stop()
	}
	ui.saveTimer = time.AfterFunc(SidecarSaveDebounce, func() {
		if err := project.Save(path, session); err != nil {
			log.Printf("Failed to save trim session for %s: %v", path, err)
		}
	})
}

// onExport starts exporting the current selection
func (ui *RootUI) onExport() {
	if ui.video == nil {
		ui.showNotification(ui.localization.GetText(KeyNoVideo), false)
		return
	}
	r := ui.currentRange()
	if !r.Valid() {
		ui.showNotification(ui.localization.GetText(KeyInvalidSelection), false)
		return
	}

	task, err := ui.exporter.StartExport(ui.video.path, r, ui.settings.GetTrimMode())
	if err != nil {
		log.Printf("Failed to start export of %s: %v", ui.video.path, err)
		ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
		return
	}

	log.Printf("Export started: ID=%s, Range=%s, OutputPath=%s", task.ID, task.Range, task.OutputPath)
	if snapshot, ok := ui.exporter.Snapshot(task.ID); ok {
		ui.applyExportUpdate(&snapshot)
	}
	ui.showNotification(ui.localization.GetText(KeyExportStarted)+": "+filepath.Base(task.OutputPath), false)
}

// onExportUpdate handles task updates from the export service goroutine
func (ui *RootUI) onExportUpdate(task *model.ExportTask) {
	snapshot, ok := ui.exporter.Snapshot(task.ID)
	if !ok {
		return
	}

	// Progress ticks are throttled; status changes always go through
	if snapshot.Status == model.TaskStatusExporting && !ui.debouncedUIUpdate() {
		return
	}

	fyne.Do(func() {
		ui.applyExportUpdate(&snapshot)
	})
}

// applyExportUpdate merges a task snapshot into the export list. Must run on
// the UI goroutine.
func (ui *RootUI) applyExportUpdate(task *model.ExportTask) {
	index := -1
	for i, existing := range ui.exportTasks {
		if existing.ID == task.ID {
			index = i
			break
		}
	}

	justCompleted := false
	justFailed := false
	if index < 0 {
		// Newest first
		ui.exportTasks = append([]*model.ExportTask{task}, ui.exportTasks...)
		index = 0
	} else {
		previous := ui.exportTasks[index].Status
		justCompleted = previous != model.TaskStatusCompleted && task.Status == model.TaskStatusCompleted
		justFailed = previous != model.TaskStatusError && task.Status == model.TaskStatusError
		ui.exportTasks[index] = task
	}

	ui.exportList.RefreshItem(index)

	if justCompleted {
		log.Printf("Export %s completed, OutputPath: %s", task.ID, task.OutputPath)
		platform.NotifyMediaScanner(task.OutputPath)
		ui.sendCompletionNotification(task)
		if ui.settings.GetAutoRevealOnComplete() {
			ui.onRevealFile(task.OutputPath)
		}
	}
	if justFailed {
		ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+task.LastError, false)
	}
}

// debouncedUIUpdate reports whether enough time passed since the last update
func (ui *RootUI) debouncedUIUpdate() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}
	ui.lastUIUpdate = now
	return true
}

// createExportItem creates a new export list item
func (ui *RootUI) createExportItem() fyne.CanvasObject {
	row := NewExportRow(nil, ui.localization)
	row.SetCallbacks(ui.onStopExport, ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	return row
}

// updateExportItem binds a list item to its task
func (ui *RootUI) updateExportItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.exportTasks) {
		return
	}
	if row, ok := item.(*ExportRow); ok {
		row.UpdateTask(ui.exportTasks[id])
	}
}

// onStopExport handles the stop button of an export row
func (ui *RootUI) onStopExport(taskID string) {
	if err := ui.exporter.StopExport(taskID); err != nil {
		log.Printf("Error stopping export %s: %v", taskID, err)
		ui.showNotification(ui.localization.GetText(KeyErrorStoppingTask)+": "+err.Error(), false)
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onOpenFile handles opening a clip with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	fyne.CurrentApp().Clipboard().SetContent(filePath)
	ui.showNotification(ui.localization.GetText(KeyPathCopied), false)
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// sendCompletionNotification sends a system notification for a finished clip
func (ui *RootUI) sendCompletionNotification(task *model.ExportTask) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyExportCompleted),
		Content: task.GetDisplayTitle(),
	})
	ui.showToastNotification(task)
}

// showToastNotification shows an in-app toast with actions for the clip
func (ui *RootUI) showToastNotification(task *model.ExportTask) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyExportCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(task.GetDisplayTitle())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	path := task.OutputPath
	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() { ui.onRevealFile(path) })
	revealBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() { ui.onOpenFile(path) })

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		toastPopup.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(RootToastWidth, RootToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.ShowAtPosition(fyne.NewPos(canvasSize.Width-toastSize.Width-RootToastMargin, RootToastMargin))

	time.AfterFunc(RootToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

// Close cancels background work and flushes a pending sidecar save
func (ui *RootUI) Close() {
	if ui.loadCancel != nil {
		ui.loadCancel()
	}
	if ui.extractCancel != nil {
		ui.extractCancel()
	}
	ui.hideNotification()

	ui.saveMutex.Lock()
	defer ui.saveMutex.Unlock()
	if ui.saveTimer != nil && ui.saveTimer.Stop() && ui.video != nil {
		r := ui.currentRange()
		if r.Valid() {
			session := project.NewSession(ui.video.path, ui.video.info.Duration, r, ui.settings.GetThumbnailCount())
			if err := project.Save(ui.video.path, session); err != nil {
				log.Printf("Failed to save trim session for %s: %v", ui.video.path, err)
			}
		}
	}
}
