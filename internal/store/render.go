package store

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/ticklab/ticklist/pkg/types"
)

// dimmed is the style for done tasks. fatih/color disables itself when
// output is not a terminal, so captured output stays plain text.
var dimmed = color.New(color.Faint)

// renderLine returns the task's display line, dimmed when done.
func renderLine(t types.Task) string {
	if t.Done {
		return dimmed.Sprint(t.Label())
	}
	return t.Label()
}

// writeTable writes the tasks as three aligned columns: id, checkbox,
// description.
func writeTable(w io.Writer, tasks []types.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range tasks {
		fmt.Fprintln(tw, t.Row())
	}
	tw.Flush()
}
