package ui

import (
	"context"
	"image"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/clip-trimmer/internal/config"
	"github.com/ytget/clip-trimmer/internal/media"
	"github.com/ytget/clip-trimmer/internal/model"
	"github.com/ytget/clip-trimmer/internal/project"
)

type fakePreview struct{}

func (fakePreview) Probe(context.Context, string) (media.VideoInfo, error) {
	return media.VideoInfo{}, nil
}

func (fakePreview) Extract(context.Context, string, time.Duration, int, int) ([]image.Image, error) {
	return nil, nil
}

type startCall struct {
	path string
	r    model.TrimRange
	mode model.TrimMode
}

type fakeExporter struct {
	mu        sync.Mutex
	tasks     map[string]*model.ExportTask
	starts    []startCall
	outputDir string
	onUpdate  func(*model.ExportTask)
}

func newFakeExporter() *fakeExporter {
	return &fakeExporter{tasks: make(map[string]*model.ExportTask)}
}

func (f *fakeExporter) SetUpdateCallback(cb func(*model.ExportTask)) { f.onUpdate = cb }
func (f *fakeExporter) SetOutputDirectory(dir string)                { f.outputDir = dir }

func (f *fakeExporter) StartExport(path string, r model.TrimRange, mode model.TrimMode) (*model.ExportTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts = append(f.starts, startCall{path, r, mode})
	task := &model.ExportTask{
		ID:         "export-1",
		InputPath:  path,
		OutputPath: filepath.Join(f.outputDir, "clip-trim.mp4"),
		Range:      r,
		Mode:       mode,
		Status:     model.TaskStatusPending,
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeExporter) StopExport(string) error { return nil }

func (f *fakeExporter) GetTask(id string) (*model.ExportTask, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	return task, ok
}

func (f *fakeExporter) Snapshot(id string) (model.ExportTask, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return model.ExportTask{}, false
	}
	return *task, true
}

func (f *fakeExporter) GetAllTasks() []*model.ExportTask { return nil }

// blockingPreview hands out each Extract context and holds the call until
// that context ends.
type blockingPreview struct {
	started chan extractCall
}

type extractCall struct {
	path  string
	count int
	ctx   context.Context
}

func (p *blockingPreview) Probe(_ context.Context, path string) (media.VideoInfo, error) {
	return media.VideoInfo{Path: path, Duration: 10 * time.Second, Width: 640, Height: 360}, nil
}

func (p *blockingPreview) Extract(ctx context.Context, path string, _ time.Duration, count, _ int) ([]image.Image, error) {
	p.started <- extractCall{path: path, count: count, ctx: ctx}
	<-ctx.Done()
	return nil, ctx.Err()
}

func waitExtract(t *testing.T, p *blockingPreview) extractCall {
	t.Helper()
	select {
	case call := <-p.started:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("extraction did not start")
		return extractCall{}
	}
}

func isDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func newTestRootUI(t *testing.T) (*RootUI, *fakeExporter) {
	return newTestRootUIWith(t, fakePreview{})
}

func newTestRootUIWith(t *testing.T, preview media.FrameSource) (*RootUI, *fakeExporter) {
	t.Helper()
	app := test.NewApp()
	app.Preferences().SetString(config.KeyOutputDir, t.TempDir())
	app.Preferences().SetBool(config.KeyAutoRevealComplete, false)
	app.Preferences().SetBool(config.KeySaveSidecar, false)

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)
	window.Resize(fyne.NewSize(800, 600))

	exporter := newFakeExporter()
	ui := NewRootUI(window, app, preview, exporter)
	ui.slider.Resize(fyne.NewSize(400+2*ui.slider.Style().HorizontalPadding, 100))
	return ui, exporter
}

func TestNotifyModeFor(t *testing.T) {
	assert.Equal(t, NotifyOnChange, notifyModeFor(config.NotifyOnChange))
	assert.Equal(t, NotifyEveryEvent, notifyModeFor(config.NotifyEveryEvent))
	assert.Equal(t, NotifyOnChange, notifyModeFor("unknown"))
}

func TestRootUI_InitialState(t *testing.T) {
	ui, exporter := newTestRootUI(t)

	assert.NotEmpty(t, exporter.outputDir)
	assert.NotNil(t, exporter.onUpdate)
	assert.Nil(t, ui.video)
	assert.True(t, ui.exportBtn.Disabled())
	assert.True(t, ui.resetBtn.Disabled())
	assert.Equal(t, RangeSliderScale, ui.slider.MaxValue)
	assert.Contains(t, ui.startLabel.Text, DashPlaceholder)
}

func TestRootUI_ApplyVideo(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.loadSeq = 1

	video := ui.applyVideo(1, "/videos/holiday.mp4", media.VideoInfo{Duration: 100 * time.Second}, nil)
	require.NotNil(t, video)

	assert.False(t, ui.exportBtn.Disabled())
	assert.Equal(t, model.TrimRange{Start: 0, End: 100 * time.Second}, ui.currentRange())
	assert.Contains(t, ui.fileLabel.Text, "holiday.mp4")
	assert.Contains(t, ui.endLabel.Text, "01:40.0")
	assert.Contains(t, ui.durationLabel.Text, "01:40.0")
}

func TestRootUI_ApplyVideoRestoresSession(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.loadSeq = 1
	total := 200 * time.Second

	session := project.NewSession("/videos/a.mp4", total, model.TrimRange{Start: 50 * time.Second, End: 150 * time.Second}, 10)
	ui.applyVideo(1, "/videos/a.mp4", media.VideoInfo{Duration: total}, session)

	lo, hi := ui.slider.Values()
	assert.InDelta(t, 250.0, lo, 1e-9)
	assert.InDelta(t, 750.0, hi, 1e-9)
	assert.Equal(t, 50*time.Second, ui.currentRange().Start)

	// A session for a different video length is ignored
	ui.loadSeq = 2
	ui.applyVideo(2, "/videos/a.mp4", media.VideoInfo{Duration: time.Hour}, session)
	lo, hi = ui.slider.Values()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, RangeSliderScale, hi)
}

func TestRootUI_StaleLoadsAreIgnored(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.loadSeq = 3

	assert.Nil(t, ui.applyVideo(2, "/videos/old.mp4", media.VideoInfo{Duration: time.Minute}, nil))
	assert.Nil(t, ui.video)
	assert.False(t, ui.applyFrames(3, frames(2)), "no video loaded yet")

	ui.applyVideo(3, "/videos/new.mp4", media.VideoInfo{Duration: time.Minute}, nil)
	assert.False(t, ui.applyFrames(2, frames(2)))
	assert.Empty(t, ui.slider.Thumbnails())

	assert.True(t, ui.applyFrames(3, frames(4)))
	assert.Len(t, ui.slider.Thumbnails(), 4)
}

func TestRootUI_SliderDragUpdatesSelection(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.loadSeq = 1
	ui.applyVideo(1, "/videos/a.mp4", media.VideoInfo{Duration: 100 * time.Second}, nil)

	pad := ui.slider.Style().HorizontalPadding
	ui.slider.Resize(fyne.NewSize(400+2*pad, 100))
	ui.slider.PointerDown(pad + 100) // a quarter of the 400px track

	r := ui.currentRange()
	assert.Equal(t, 25*time.Second, r.Start)
	assert.Equal(t, 100*time.Second, r.End)
	assert.Contains(t, ui.startLabel.Text, "00:25.0")
	assert.Contains(t, ui.durationLabel.Text, "01:15.0")

	ui.onResetSelection()
	assert.Equal(t, time.Duration(0), ui.currentRange().Start)
}

func TestRootUI_Export(t *testing.T) {
	ui, exporter := newTestRootUI(t)
	ui.settings.SetTrimMode(model.TrimModeReencode)
	ui.loadSeq = 1
	ui.applyVideo(1, "/videos/a.mp4", media.VideoInfo{Duration: 100 * time.Second}, nil)
	ui.slider.SetValues(100, 300)

	ui.onExport()

	require.Len(t, exporter.starts, 1)
	call := exporter.starts[0]
	assert.Equal(t, "/videos/a.mp4", call.path)
	assert.Equal(t, model.TrimRange{Start: 10 * time.Second, End: 30 * time.Second}, call.r)
	assert.Equal(t, model.TrimModeReencode, call.mode)

	require.Len(t, ui.exportTasks, 1)
	assert.Equal(t, "export-1", ui.exportTasks[0].ID)
	assert.Equal(t, 1, ui.exportList.Length())
}

func TestRootUI_ExportRejectsEmptySelection(t *testing.T) {
	ui, exporter := newTestRootUI(t)
	ui.loadSeq = 1
	ui.applyVideo(1, "/videos/a.mp4", media.VideoInfo{Duration: 100 * time.Second}, nil)
	ui.slider.SetValues(500, 500)

	ui.onExport()
	assert.Empty(t, exporter.starts)
	assert.Empty(t, ui.exportTasks)
}

func TestRootUI_ApplyExportUpdate(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.applyExportUpdate(&model.ExportTask{ID: "a", Status: model.TaskStatusPending})
	ui.applyExportUpdate(&model.ExportTask{ID: "b", Status: model.TaskStatusPending})
	require.Len(t, ui.exportTasks, 2)
	assert.Equal(t, "b", ui.exportTasks[0].ID, "newest first")

	ui.applyExportUpdate(&model.ExportTask{ID: "a", Status: model.TaskStatusExporting, Percent: 40})
	require.Len(t, ui.exportTasks, 2)
	assert.Equal(t, 40, ui.exportTasks[1].Percent)

	ui.applyExportUpdate(&model.ExportTask{ID: "a", Status: model.TaskStatusError, LastError: "boom"})
	assert.Equal(t, model.TaskStatusError, ui.exportTasks[1].Status)
}

func TestRootUI_DebouncedUIUpdate(t *testing.T) {
	ui, _ := newTestRootUI(t)

	assert.True(t, ui.debouncedUIUpdate())
	assert.False(t, ui.debouncedUIUpdate())

	ui.uiUpdateMutex.Lock()
	ui.lastUIUpdate = time.Now().Add(-2 * UIUpdateDebounce)
	ui.uiUpdateMutex.Unlock()
	assert.True(t, ui.debouncedUIUpdate())
}

func TestRootUI_LoadVideoRejectsNonVideo(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.LoadVideo("/docs/readme.txt")
	assert.Equal(t, 0, ui.loadSeq)
	assert.Nil(t, ui.video)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.onLanguageChange("ru")
	assert.Equal(t, "ru", ui.settings.GetLanguage())
	assert.Contains(t, ui.exportBtn.Text, "Экспорт")
}

func TestRootUI_SessionSaveDebounced(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.settings.SetSaveSidecar(true)

	video := filepath.Join(t.TempDir(), "clip.mp4")
	ui.loadSeq = 1
	ui.applyVideo(1, video, media.VideoInfo{Duration: 100 * time.Second}, nil)
	ui.slider.SetValues(100, 200)
	ui.scheduleSessionSave()

	require.Eventually(t, func() bool {
		_, err := project.Load(video)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	session, err := project.Load(video)
	require.NoError(t, err)
	assert.Equal(t, model.TrimRange{Start: 10 * time.Second, End: 20 * time.Second}, session.Range)
}

func TestRootUI_NewLoadCancelsExtraction(t *testing.T) {
	preview := &blockingPreview{started: make(chan extractCall, 4)}
	ui, _ := newTestRootUIWith(t, preview)
	t.Cleanup(ui.Close)

	ui.LoadVideo("/tmp/a.mp4")
	first := waitExtract(t, preview)
	assert.Equal(t, "/tmp/a.mp4", first.path)
	assert.False(t, isDone(first.ctx))

	ui.LoadVideo("/tmp/b.mp4")
	assert.Eventually(t, func() bool { return isDone(first.ctx) }, 2*time.Second, 10*time.Millisecond,
		"extraction for the superseded video keeps running")

	second := waitExtract(t, preview)
	assert.Equal(t, "/tmp/b.mp4", second.path)
	assert.False(t, isDone(second.ctx))
}

func TestRootUI_ReextractCancelsPrevious(t *testing.T) {
	preview := &blockingPreview{started: make(chan extractCall, 4)}
	ui, _ := newTestRootUIWith(t, preview)
	t.Cleanup(ui.Close)

	ui.loadSeq = 1
	video := ui.applyVideo(1, "/videos/a.mp4", media.VideoInfo{Duration: time.Minute}, nil)
	require.NotNil(t, video)

	ui.extractFrames(1, video)
	first := waitExtract(t, preview)

	ui.settings.SetThumbnailCount(4)
	ui.extractFrames(1, video)
	second := waitExtract(t, preview)

	assert.Eventually(t, func() bool { return isDone(first.ctx) }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, isDone(second.ctx))
	assert.Equal(t, 4, second.count)
}
