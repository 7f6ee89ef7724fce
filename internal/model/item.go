package model

// Item is the domain model for a todo entry.
// ID and Task are fixed at creation; only Done changes afterwards.
type Item struct {
	ID   int    `json:"id"`
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// Seed returns the five items every session starts with.
func Seed() []Item {
	return []Item{
		{ID: 1, Task: "faire  A", Done: false},
		{ID: 2, Task: "faire B", Done: false},
		{ID: 3, Task: "faire quelque chose C", Done: true},
		{ID: 4, Task: "faire quelque chose D", Done: false},
		{ID: 5, Task: "faire quelque chose E", Done: false},
	}
}
