package types

import "fmt"

// Checkbox glyphs used by the task renderings.
const (
	checkboxDone = "🗹"
	checkboxOpen = "☐"
)

// Task is one to-do entry. IDs are positive and unique within the
// collection at rest, but the swap operation reassigns them, so an id is
// not stable over the file's history.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// NewTask returns a not-done task with the given id and description.
// No validation is performed; callers supply well-formed input.
func NewTask(id int, description string) Task {
	return Task{ID: id, Description: description}
}

// Checkbox returns the glyph for the task's done state.
func (t Task) Checkbox() string {
	if t.Done {
		return checkboxDone
	}
	return checkboxOpen
}

// Label renders the task as one plain-text line: "<id> <checkbox> <description>".
func (t Task) Label() string {
	return fmt.Sprintf("%d %s %s", t.ID, t.Checkbox(), t.Description)
}

// Row renders the same three fields tab-separated, in id, checkbox,
// description order, for column-aligned output.
func (t Task) Row() string {
	return fmt.Sprintf("%d\t%s\t%s", t.ID, t.Checkbox(), t.Description)
}
