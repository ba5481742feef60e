package models

import "time"

// Issue represents a single tracker issue
type Issue struct {
	ID          int
	ProjectID   int
	Number      int
	Title       string
	Description string // Markdown source
	StatusID    int
	Closed      bool
	Priority    int
	MilestoneID int
	Labels      string // Comma separated label ids, as stored
	MergeState  string // One of the MergeStatus values, empty when not a pull request
	Opener      string
	UserTest    int
	OpenedAt    time.Time
	ModifiedAt  time.Time
}

// Activity is a recorded change on an issue
// Text changes keep both versions so the view can render a diff
type Activity struct {
	ID        int
	IssueID   int
	User      string
	Event     string // "comment", "change", "reference"
	Field     string // Changed field for "change" events (e.g., "description", "labels")
	Relation  string // Relation key for "reference" events
	Target    int    // Referenced issue number for "reference" events
	Old       string
	New       string
	CreatedAt time.Time
}
