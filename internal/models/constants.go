package models

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority constants, lower is more important
const (
	PriorityCritical = 1
	PriorityUrgent   = 2
	PriorityMedium   = 3
	PriorityLow      = 4
	PriorityVeryLow  = 5
)

// DefaultPriority is used for new issues
const DefaultPriority = PriorityMedium

// ============================================================================
// MERGE STATUS
// ============================================================================

// MergeStatus is the combined CI state of a pull request
type MergeStatus string

const (
	MergeSuccess MergeStatus = "success"
	MergePending MergeStatus = "pending"
	MergeError   MergeStatus = "error"
	MergeFailure MergeStatus = "failure"
)

// ============================================================================
// USER TEST OPTIONS
// ============================================================================

// User test result constants
const (
	UserTestNotTested    = 0
	UserTestSuccessful   = 1
	UserTestUnsuccessful = 2
)

// ============================================================================
// LABEL FALLBACK
// ============================================================================

// Rendering values used for label ids missing from the project
const (
	UnknownLabelColor     = "000000"
	UnknownLabelTextColor = "#ffffff"
	UnknownLabelName      = "?"
)
