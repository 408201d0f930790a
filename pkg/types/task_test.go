package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask(3, "buy milk")

	assert.Equal(t, 3, task.ID)
	assert.Equal(t, "buy milk", task.Description)
	assert.False(t, task.Done, "new tasks start not done")
}

func TestTaskCheckbox(t *testing.T) {
	tests := []struct {
		name string
		done bool
		want string
	}{
		{name: "open task renders empty box", done: false, want: "☐"},
		{name: "done task renders filled box", done: true, want: "🗹"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{ID: 1, Description: "walk dog", Done: tt.done}
			assert.Equal(t, tt.want, task.Checkbox())
		})
	}
}

func TestTaskLabel(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "open task",
			task: Task{ID: 1, Description: "buy milk"},
			want: "1 ☐ buy milk",
		},
		{
			name: "done task",
			task: Task{ID: 12, Description: "walk dog", Done: true},
			want: "12 🗹 walk dog",
		},
		{
			name: "description is passed through untouched",
			task: Task{ID: 2, Description: "  spaces \t and tabs  "},
			want: "2 ☐   spaces \t and tabs  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Label())
		})
	}
}

func TestTaskRow(t *testing.T) {
	open := Task{ID: 7, Description: "water plants"}
	assert.Equal(t, "7\t☐\twater plants", open.Row())

	done := Task{ID: 8, Description: "call plumber", Done: true}
	assert.Equal(t, "8\t🗹\tcall plumber", done.Row())
}
