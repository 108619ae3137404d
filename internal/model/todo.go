package model

// Todo is the domain model for a todo entry.
// ID and Title are fixed at creation; there is no edit.
type Todo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
