package models

// Priority represents an issue priority level
type Priority struct {
	ID          int
	Description string
	Class       string // Badge CSS class, empty for the lowest levels
}

// IDLabel is one entry of an ordered id -> localized label table
type IDLabel struct {
	ID    int
	Label string
}
