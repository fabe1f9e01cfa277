package domain

import "time"

// MirrorOp names the store mutation a MirrorResult describes
type MirrorOp string

const (
	MirrorOpDelete MirrorOp = "delete"
	MirrorOpSave   MirrorOp = "save"
)

// MirrorResult is the outcome of one mirrored store mutation.
// Primary and Shared hold the error of each step, nil on success.
// Shared is never attempted when a save fails in the primary directory.
type MirrorResult struct {
	FileName string
	Op       MirrorOp
	Primary  error
	Shared   error
}

// Err returns the error that decides whether the operation happened at all
func (r MirrorResult) Err() error {
	return r.Primary
}

// Diverged reports a successful primary step whose mirror step failed
func (r MirrorResult) Diverged() bool {
	return r.Primary == nil && r.Shared != nil
}

// MirrorEvent is a recorded divergence between the primary and shared directories
type MirrorEvent struct {
	CreatedAt time.Time
	Error     string
	FileName  string
	ID        string
	Op        MirrorOp
}

// MirrorReport compares the custom sounds present in both directories
type MirrorReport struct {
	PrimaryOnly []string
	SharedOnly  []string
	InSync      []string
}

// Consistent reports whether both directories hold the same file names
func (r MirrorReport) Consistent() bool {
	return len(r.PrimaryOnly) == 0 && len(r.SharedOnly) == 0
}
