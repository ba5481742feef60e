package models

// Project represents a tracked repository
// Projects are the top-level organizational unit and own labels and milestones
type Project struct {
	ID    int
	Title string
	Alias string // URL segment used in issue links (e.g., "joomla-cms")
}

// Milestone represents a project milestone
type Milestone struct {
	ID        int
	ProjectID int
	Title     string
}
