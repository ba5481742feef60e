package models

// Label represents a colored tag that can be applied to issues
// Labels are project-specific, similar to GitHub labels
type Label struct {
	ID        int
	Name      string
	Color     string // 6 hex digits without a leading '#' (e.g., "7d56f4")
	ProjectID int    // ID of the project this label belongs to
}
