package media

import (
	"context"
	"image"
	"time"

	"github.com/ytget/clip-trimmer/internal/model"
)

// Exporter defines the interface for the clip export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	StartExport(inputPath string, r model.TrimRange, mode model.TrimMode) (*model.ExportTask, error)
	StopExport(taskID string) error
	GetTask(taskID string) (*model.ExportTask, bool)
	Snapshot(taskID string) (model.ExportTask, bool)
	GetAllTasks() []*model.ExportTask
	SetOutputDirectory(dir string)
}

// FrameSource provides the data the trim slider is built from.
type FrameSource interface {
	Probe(ctx context.Context, path string) (VideoInfo, error)
	Extract(ctx context.Context, path string, duration time.Duration, count, height int) ([]image.Image, error)
}

// commandRunner runs an executable and returns its stdout
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)
