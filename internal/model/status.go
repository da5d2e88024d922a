package model

// State represents what the controller is currently doing
type State string

const (
	// StateIdle means no download is in flight
	StateIdle State = "Idle"

	// StateDownloading means a download request is being processed
	StateDownloading State = "Downloading"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsActive returns true while a request is in flight
func (s State) IsActive() bool {
	return s == StateDownloading
}

// ProgressStatus is the stage reported by a download engine
type ProgressStatus string

const (
	ProgressStarting       ProgressStatus = "starting"
	ProgressDownloading    ProgressStatus = "downloading"
	ProgressPostProcessing ProgressStatus = "post_processing"
	ProgressFinished       ProgressStatus = "finished"
	ProgressError          ProgressStatus = "error"
)

// String returns the string representation of ProgressStatus
func (ps ProgressStatus) String() string {
	return string(ps)
}

// IsTerminal returns true for statuses after which no transfer progress follows
func (ps ProgressStatus) IsTerminal() bool {
	return ps == ProgressFinished || ps == ProgressError
}
