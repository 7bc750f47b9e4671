package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clip-trimmer/internal/model"
)

// Progress calculation constants
const (
	MaxProgressPercent  = 100
	MinProgressPercent  = 1
	RoundingCoefficient = 0.5
)

// effectivePercent turns task progress into a label percentage. A task that
// has made any progress never shows 0%.
func effectivePercent(task *model.ExportTask) int {
	if task.Status == model.TaskStatusCompleted {
		return MaxProgressPercent
	}
	percent := task.Percent
	if percent <= 0 && task.Progress > 0 {
		percent = int(task.Progress*MaxProgressPercent + RoundingCoefficient)
		if percent == 0 {
			percent = MinProgressPercent
		}
	}
	if percent < 0 {
		percent = 0
	}
	if percent > MaxProgressPercent {
		percent = MaxProgressPercent
	}
	return percent
}

// ExportRow shows one export task in the export list
type ExportRow struct {
	widget.BaseWidget

	task         *model.ExportTask
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	rangeLabel    *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label

	// Action buttons
	stopBtn   *widget.Button
	revealBtn *widget.Button // reveal in file manager
	playBtn   *widget.Button // open file with default app (player)
	copyBtn   *widget.Button

	// Callbacks
	onStop     func(taskID string)
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewExportRow creates a new export row widget
func NewExportRow(task *model.ExportTask, localization *Localization) *ExportRow {
	if task == nil {
		task = &model.ExportTask{Status: model.TaskStatusPending}
	}

	er := &ExportRow{
		task:         task,
		localization: localization,
	}
	er.ExtendBaseWidget(er)
	er.createUI()
	er.updateFromTask()
	return er
}

// SetCallbacks sets the action callbacks
func (er *ExportRow) SetCallbacks(
	onStop func(taskID string),
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
) {
	er.onStop = onStop
	er.onReveal = onReveal
	er.onOpen = onOpen
	er.onCopyPath = onCopyPath
}

// UpdateTask updates the row with new task data
func (er *ExportRow) UpdateTask(task *model.ExportTask) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil task for existing task %s", er.task.ID)
		return
	}

	er.task = task
	er.updateFromTask()
	er.Refresh()
}

// Task returns the task currently shown
func (er *ExportRow) Task() *model.ExportTask {
	return er.task
}

// createUI creates the UI components
func (er *ExportRow) createUI() {
	er.titleLabel = widget.NewLabel("")
	er.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	er.titleLabel.Truncation = fyne.TextTruncateEllipsis
	er.titleLabel.Alignment = fyne.TextAlignLeading

	er.rangeLabel = widget.NewLabel("")
	er.rangeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	er.statusLabel = widget.NewLabel("")
	er.statusLabel.Alignment = fyne.TextAlignTrailing
	er.progressLabel = widget.NewLabel("")
	er.progressLabel.Alignment = fyne.TextAlignTrailing

	er.stopBtn = widget.NewButton(IconStop, func() {
		if er.onStop != nil {
			er.onStop(er.task.ID)
		}
	})
	er.stopBtn.Importance = widget.MediumImportance

	er.revealBtn = widget.NewButton(er.localization.GetText(KeyReveal), func() {
		er.withOutputPath(er.onReveal)
	})
	er.revealBtn.Importance = widget.MediumImportance

	er.playBtn = widget.NewButton(IconPlay, func() {
		er.withOutputPath(er.onOpen)
	})
	er.playBtn.Importance = widget.MediumImportance

	er.copyBtn = widget.NewButton(er.localization.GetText(KeyCopyPath), func() {
		er.withOutputPath(er.onCopyPath)
	})
	er.copyBtn.Importance = widget.MediumImportance
}

// withOutputPath calls fn with the clip path once the export has finished
func (er *ExportRow) withOutputPath(fn func(string)) {
	if fn == nil {
		return
	}
	if !er.outputReady() {
		log.Printf("No output available for task %s (status: %s)", er.task.ID, er.task.Status)
		if c := fyne.CurrentApp().Driver().CanvasForObject(er); c != nil {
			widget.ShowPopUp(widget.NewLabel(er.localization.GetText(KeyPathNotAvailable)), c)
		}
		return
	}
	fn(er.task.OutputPath)
}

func (er *ExportRow) outputReady() bool {
	return er.task.Status == model.TaskStatusCompleted && er.task.OutputPath != ""
}

// updateFromTask updates UI components based on task state
func (er *ExportRow) updateFromTask() {
	er.titleLabel.SetText(er.task.GetDisplayTitle())

	rangeText := er.task.Range.String()
	if er.task.Mode != "" {
		rangeText += MiddleDotSeparator + string(er.task.Mode)
	}
	er.rangeLabel.SetText(rangeText)

	// Update status label color and text
	switch er.task.Status {
	case model.TaskStatusError:
		er.statusLabel.Importance = widget.DangerImportance
		er.statusLabel.SetText(IconError + " " + er.task.Status.String())
	case model.TaskStatusCompleted:
		er.statusLabel.Importance = widget.SuccessImportance
		er.statusLabel.SetText(er.task.Status.String())
	case model.TaskStatusExporting:
		er.statusLabel.Importance = widget.HighImportance
		er.statusLabel.SetText(IconExport + " " + er.task.Status.String())
	case model.TaskStatusStopped:
		er.statusLabel.Importance = widget.MediumImportance
		er.statusLabel.SetText(IconStop + " " + er.task.Status.String())
	default:
		er.statusLabel.Importance = widget.MediumImportance
		er.statusLabel.SetText(er.task.Status.String())
	}

	switch {
	case er.task.Status == model.TaskStatusCompleted:
		er.progressLabel.SetText("")
	case er.task.Status == model.TaskStatusError:
		er.progressLabel.SetText(DashPlaceholder)
	default:
		er.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, effectivePercent(er.task)))
	}

	er.updateButtons()
}

// updateButtons updates button states based on task status
func (er *ExportRow) updateButtons() {
	if er.task.Status.CanStop() {
		er.stopBtn.Enable()
	} else {
		er.stopBtn.Disable()
	}

	// Reveal, play and copy only make sense for a finished clip
	if er.outputReady() {
		er.revealBtn.Enable()
		er.playBtn.Enable()
		er.copyBtn.Enable()
	} else {
		er.revealBtn.Disable()
		er.playBtn.Disable()
		er.copyBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (er *ExportRow) CreateRenderer() fyne.WidgetRenderer {
	return &exportRowRenderer{row: er}
}

// exportRowRenderer renders the export row widget
type exportRowRenderer struct {
	row    *ExportRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *exportRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *exportRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *exportRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *exportRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *exportRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *exportRowRenderer) createLayout() {
	er := r.row

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	leftSide := container.NewVBox(er.titleLabel, er.rangeLabel)

	rightSide := container.NewVBox(
		fixedWidth(StatusLabelWidth, er.statusLabel),
		fixedWidth(PercentLabelWidth, er.progressLabel),
	)

	actionRow := container.NewHBox(
		er.stopBtn,
		er.revealBtn,
		er.playBtn,
		er.copyBtn,
	)

	// Action buttons pinned to the right, title takes the remaining space
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, rightSide)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, leftSide)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
