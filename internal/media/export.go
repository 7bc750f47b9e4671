package media

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/clip-trimmer/internal/model"
)

// FFmpeg constants for export settings
const (
	// Video codec settings (re-encode mode)
	VideoCodec  = "libx264"
	VideoPreset = "medium"
	VideoCRF    = "23"

	// Audio codec settings (re-encode mode)
	AudioCodec   = "aac"
	AudioBitrate = "128k"

	// Stream copy settings
	CopyCodec            = "copy"
	AvoidNegativeTSValue = "make_zero"

	// Container flags
	FastStartFlag = "+faststart"

	// Output naming
	TrimmedInfix        = "-trim-"
	OutputDuplicateTmpl = "%s (%d)%s"
	OutputTimestampTmpl = "%02dm%02ds"
	OutputExtensionMP4  = ".mp4"

	// Executable and I/O constants
	FFmpegCommand      = "ffmpeg"
	FFprobeCommand     = "ffprobe"
	ProgressPipeTarget = "pipe:2"
	ProgressTimePrefix = "out_time_us="
	TaskIDPrefix       = "export-"
)

// Service handles clip export operations
type Service struct {
	tasks      map[string]*model.ExportTask
	cancels    map[string]context.CancelFunc
	tasksMutex sync.RWMutex
	outputDir  string
	ffmpegPath string
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service writing into outputDir.
// An empty outputDir writes next to the input file.
func NewService(outputDir string) *Service {
	return &Service{
		tasks:      make(map[string]*model.ExportTask),
		cancels:    make(map[string]context.CancelFunc),
		outputDir:  outputDir,
		ffmpegPath: FFmpegCommand,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetOutputDirectory changes where new exports are written
func (s *Service) SetOutputDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.outputDir = dir
}

// StartExport starts writing the selected range of inputPath to a new file
func (s *Service) StartExport(inputPath string, r model.TrimRange, mode model.TrimMode) (*model.ExportTask, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidRange, r)
	}
	if mode != model.TrimModeReencode {
		mode = model.TrimModeCopy
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check if an export is already running for this file
	for _, task := range s.tasks {
		if task.InputPath == inputPath && task.Status.IsActive() {
			return nil, fmt.Errorf("export already in progress for file: %s", inputPath)
		}
	}

	// Check if input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file does not exist: %s", inputPath)
	}

	task := &model.ExportTask{
		ID:         generateTaskID(),
		InputPath:  inputPath,
		OutputPath: s.availableOutputPath(generateOutputPath(s.outputDir, inputPath, r, mode)),
		Range:      r,
		Mode:       mode,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.tasks[task.ID] = task
	s.cancels[task.ID] = cancel

	// Start export in background
	go s.runExport(ctx, task)

	return task, nil
}

// StopExport stops a running export task
func (s *Service) StopExport(taskID string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[taskID]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("export task not found: %s", taskID)
	}
	if !task.Status.CanStop() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("export task is not active: %s", task.Status)
	}

	task.Status = model.TaskStatusStopping
	cancel := s.cancels[taskID]
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	if cancel != nil {
		cancel()
	}
	return nil
}

// runExport performs the actual export
func (s *Service) runExport(ctx context.Context, task *model.ExportTask) {
	defer s.releaseCancel(task.ID)

	if !s.setStatus(task, model.TaskStatusStarting) {
		s.finish(ctx, task, context.Canceled, false)
		return
	}

	if err := os.MkdirAll(filepath.Dir(task.OutputPath), 0o755); err != nil {
		s.finish(ctx, task, fmt.Errorf("failed to create output directory: %w", err), false)
		return
	}

	args := BuildExportArgs(task.InputPath, task.OutputPath, task.Range, task.Mode)
	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)

	// Setup progress monitoring
	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.finish(ctx, task, fmt.Errorf("failed to create stderr pipe: %w", err), false)
		return
	}

	if err := cmd.Start(); err != nil {
		s.finish(ctx, task, fmt.Errorf("failed to start ffmpeg: %w", err), false)
		return
	}
	log.Printf("Exporting %s [%s] to %s", task.InputPath, task.Range, task.OutputPath)

	s.setStatus(task, model.TaskStatusExporting)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.monitorProgress(stderr, task)
	}()

	<-done
	s.finish(ctx, task, cmd.Wait(), true)
}

// setStatus moves the task to status unless a stop was requested
func (s *Service) setStatus(task *model.ExportTask, status model.TaskStatus) bool {
	s.tasksMutex.Lock()
	if task.Status == model.TaskStatusStopping {
		s.tasksMutex.Unlock()
		return false
	}
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return true
}

// finish records the final state of a task. A partial output is removed only
// when ffmpeg ran and may have written it.
func (s *Service) finish(ctx context.Context, task *model.ExportTask, err error, wrote bool) {
	s.tasksMutex.Lock()
	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		task.Status = model.TaskStatusStopped
		if wrote {
			os.Remove(task.OutputPath)
		}
	case err != nil:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		if wrote {
			os.Remove(task.OutputPath)
		}
		log.Printf("Export failed for %s: %v", task.InputPath, err)
	default:
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

func (s *Service) releaseCancel(taskID string) {
	s.tasksMutex.Lock()
	cancel := s.cancels[taskID]
	delete(s.cancels, taskID)
	s.tasksMutex.Unlock()

	if cancel != nil {
		cancel()
	}
}

// GetTask returns an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// Snapshot returns a copy of the task taken under the service lock
func (s *Service) Snapshot(taskID string) (model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	if !exists {
		return model.ExportTask{}, false
	}
	return *task, true
}

// GetAllTasks returns all tasks ordered by start time
func (s *Service) GetAllTasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ExportTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sortTasks(tasks)
	return tasks
}

func sortTasks(tasks []*model.ExportTask) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
}

// BuildExportArgs builds the ffmpeg command arguments for a trim
func BuildExportArgs(inputPath, outputPath string, r model.TrimRange, mode model.TrimMode) []string {
	args := []string{
		"-y",                          // Overwrite output file
		"-ss", formatSeconds(r.Start), // Seek before decoding
		"-i", inputPath, // Input file
		"-t", formatSeconds(r.Duration()), // Clip length
	}

	if mode == model.TrimModeReencode {
		args = append(args,
			"-c:v", VideoCodec, // Video codec
			"-preset", VideoPreset, // Encoding preset
			"-crf", VideoCRF, // Constant rate factor
			"-c:a", AudioCodec, // Audio codec
			"-b:a", AudioBitrate, // Audio bitrate
			"-movflags", FastStartFlag, // MP4 optimization
		)
	} else {
		args = append(args,
			"-c", CopyCodec, // Stream copy
			"-avoid_negative_ts", AvoidNegativeTSValue, // Rebase timestamps
		)
	}

	return append(args,
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats", // No stats output
		outputPath, // Output file
	)
}

// monitorProgress monitors ffmpeg progress output
func (s *Service) monitorProgress(stderr io.ReadCloser, task *model.ExportTask) {
	defer stderr.Close()
	scanner := bufio.NewScanner(stderr)
	total := task.Range.Duration()

	for scanner.Scan() {
		elapsed, ok := parseProgressLine(scanner.Text())
		if !ok || total <= 0 {
			continue
		}

		progress := float64(elapsed) / float64(total)
		if progress > 1.0 {
			progress = 1.0
		}

		s.tasksMutex.Lock()
		task.Progress = progress
		task.Percent = int(progress * 100)
		s.tasksMutex.Unlock()

		s.notifyUpdate(task)
	}
}

// parseProgressLine parses "out_time_us=123456" into a duration
func parseProgressLine(line string) (time.Duration, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ProgressTimePrefix) {
		return 0, false
	}
	us, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
	if err != nil || us < 0 {
		return 0, false
	}
	return time.Duration(us) * time.Microsecond, true
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// generateOutputPath builds "<dir>/<base>-trim-<start>-<end><ext>".
// Re-encoded clips are always MP4.
func generateOutputPath(outputDir, inputPath string, r model.TrimRange, mode model.TrimMode) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	if mode == model.TrimModeReencode || ext == "" {
		ext = OutputExtensionMP4
	}

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	name := base + TrimmedInfix + formatOutputTimestamp(r.Start) + "-" + formatOutputTimestamp(r.End) + ext
	return filepath.Join(dir, name)
}

// availableOutputPath returns path, or "<name> (n)<ext>" when path exists on
// disk or belongs to another export. Callers hold tasksMutex.
func (s *Service) availableOutputPath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	candidate := path
	for n := 2; s.outputTaken(candidate); n++ {
		candidate = fmt.Sprintf(OutputDuplicateTmpl, stem, n, ext)
	}
	return candidate
}

func (s *Service) outputTaken(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}
	for _, task := range s.tasks {
		if task.OutputPath == path && task.Status.HoldsOutput() {
			return true
		}
	}
	return false
}

func formatOutputTimestamp(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf(OutputTimestampTmpl, total/60, total%60)
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
