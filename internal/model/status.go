package model

// TaskStatus represents the status of an export task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means ffmpeg is being prepared for the task
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusExporting means the clip is being written
	TaskStatusExporting TaskStatus = "Exporting"

	// TaskStatusStopping means the task is in the process of stopping
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the task was stopped by user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusExporting || ts == TaskStatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}

// CanStop reports whether a stop request still has an effect. A task that is
// already stopping cannot be stopped again.
func (ts TaskStatus) CanStop() bool {
	return ts == TaskStatusPending || ts == TaskStatusStarting || ts == TaskStatusExporting
}

// HoldsOutput reports whether the task may still write its output path, so
// no other export may be given the same path.
func (ts TaskStatus) HoldsOutput() bool {
	return ts == TaskStatusPending || ts.IsActive()
}
