package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ticklab/ticklist/pkg/types"
)

// ConfirmFunc asks the operator a yes/no question and reports the
// answer. A non-nil error means the answer could not be read at all,
// which aborts the operation rather than counting as a "no".
type ConfirmFunc func(prompt string) (bool, error)

// Store exposes one operation per user-facing command on top of a
// Backend. Operations report their outcome on the configured writers
// instead of returning errors: a task that cannot be found, or a
// collection that cannot be written back, is a printed diagnostic, not
// a failed process.
type Store struct {
	backend Backend
	out     io.Writer
	errOut  io.Writer
	confirm ConfirmFunc
}

// Option configures a Store.
type Option func(*Store)

// WithOutput directs normal output (task lines, summaries, prompts)
// to w.
func WithOutput(w io.Writer) Option {
	return func(s *Store) { s.out = w }
}

// WithErrOutput directs diagnostics to w.
func WithErrOutput(w io.Writer) Option {
	return func(s *Store) { s.errOut = w }
}

// WithConfirm replaces the interactive confirmation used by Reset.
func WithConfirm(f ConfirmFunc) Option {
	return func(s *Store) { s.confirm = f }
}

// New wraps an already-open backend. By default output goes to stdout,
// diagnostics to stderr, and confirmations read from stdin.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
	s.confirm = s.stdinConfirm
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open builds the backend selected by cfg and wraps it in a Store.
func Open(cfg types.Config, opts ...Option) (*Store, error) {
	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	return New(backend, opts...), nil
}

// Close releases the backend.
func (s *Store) Close() error { return s.backend.Close() }

// Location returns the resolved path of the backing file.
func (s *Store) Location() string { return s.backend.Location() }

// Init materializes an empty backing store if none can be read yet. A
// readable store is left untouched.
func (s *Store) Init() error {
	if _, err := s.backend.Load(); err == nil {
		return nil
	}
	return s.backend.Persist(nil)
}

// load returns the stored collection, or the empty collection on any
// read failure. Missing, unreadable, and malformed files all collapse
// to "no tasks"; callers never observe a read error.
func (s *Store) load() []types.Task {
	tasks, err := s.backend.Load()
	if err != nil {
		return nil
	}
	return tasks
}

// persist writes the collection back. On failure it prints a diagnostic
// naming the backing file; the mutation is lost.
func (s *Store) persist(tasks []types.Task) {
	if err := s.backend.Persist(tasks); err != nil {
		fmt.Fprintf(s.errOut, "Could not write to %s\n", s.backend.Location())
	}
}

// Add appends a new open task with id one above the current maximum.
// Freed ids below the maximum are never reused.
func (s *Store) Add(description string) {
	tasks := s.load()

	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	tasks = append(tasks, types.NewTask(maxID+1, description))
	s.persist(tasks)
}

// List prints one line per task in ascending id order, hiding done
// tasks unless all is set. Done tasks render dimmed.
func (s *Store) List(all bool) {
	for _, t := range s.visible(all) {
		fmt.Fprintln(s.out, renderLine(t))
	}
}

// ListTable prints the same selection as List in aligned columns.
func (s *Store) ListTable(all bool) {
	writeTable(s.out, s.visible(all))
}

// visible returns the collection sorted by id ascending, dropping done
// tasks unless all is set.
func (s *Store) visible(all bool) []types.Task {
	tasks := s.load()
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	var visible []types.Task
	for _, t := range tasks {
		if !t.Done || all {
			visible = append(visible, t)
		}
	}
	return visible
}

// Update replaces the description of the task with the given id. The
// done flag is untouched.
func (s *Store) Update(id int, description string) {
	tasks := s.load()

	i := indexOf(tasks, id)
	if i < 0 {
		fmt.Fprintln(s.errOut, "Task not found")
		return
	}

	tasks[i].Description = description
	s.persist(tasks)
}

// Mark sets the done flag of the task with the given id.
func (s *Store) Mark(id int, done bool) {
	tasks := s.load()

	i := indexOf(tasks, id)
	if i < 0 {
		fmt.Fprintln(s.errOut, "Task not found")
		return
	}

	tasks[i].Done = done
	s.persist(tasks)
}

// Delete removes the task with the given id. Remaining tasks keep
// their ids.
func (s *Store) Delete(id int) {
	tasks := s.load()

	i := indexOf(tasks, id)
	if i < 0 {
		fmt.Fprintln(s.errOut, "Task not found")
		return
	}

	tasks = append(tasks[:i], tasks[i+1:]...)
	s.persist(tasks)
}

// Swap exchanges the id fields of two tasks. Descriptions and done
// flags stay attached to their storage positions, so swapping the same
// pair twice restores the original labeling.
func (s *Store) Swap(id1, id2 int) {
	tasks := s.load()

	i1 := indexOf(tasks, id1)
	if i1 < 0 {
		fmt.Fprintln(s.errOut, "Task 1 not found")
		return
	}
	i2 := indexOf(tasks, id2)
	if i2 < 0 {
		fmt.Fprintln(s.errOut, "Task 2 not found")
		return
	}

	tasks[i1].ID = id2
	tasks[i2].ID = id1
	s.persist(tasks)
}

// Reset empties the task list. An already-empty collection returns
// immediately without touching the backing file. Without force the
// operator is asked first and only a "y" answer (trimmed, case
// insensitive) empties the list; a declined confirmation writes the
// unchanged collection back, and an unreadable answer aborts without
// writing.
func (s *Store) Reset(force bool) {
	tasks := s.load()

	if len(tasks) == 0 {
		return
	}

	truncate := force
	if !truncate {
		prompt := fmt.Sprintf("Are you sure you want to permanently delete %s (y/N)?",
			pluralize(len(tasks), "task", "tasks"))
		answer, err := s.confirm(prompt)
		if err != nil {
			fmt.Fprintln(s.errOut, "Could not read user input")
			return
		}
		truncate = answer
	}

	if truncate {
		tasks = tasks[:0]
	}
	s.persist(tasks)
}

// Infos prints the backing file location and the done, remaining, and
// total task counts.
func (s *Store) Infos() {
	tasks := s.load()

	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}

	fmt.Fprintf(s.out, "File location: %s\n", s.backend.Location())
	fmt.Fprintf(s.out, "Done tasks: %d\n", done)
	fmt.Fprintf(s.out, "Remaining tasks: %d\n", len(tasks)-done)
	fmt.Fprintf(s.out, "Total tasks: %d\n", len(tasks))
}

// stdinConfirm prints the prompt and reads one line from standard
// input. The answer is the trimmed, lowercased input compared against
// "y". End of input counts as an empty answer, not a read failure.
func (s *Store) stdinConfirm(prompt string) (bool, error) {
	fmt.Fprintln(s.out, prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}

// indexOf returns the position of the task with the given id, or -1.
func indexOf(tasks []types.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// pluralize renders a count with its noun: "1 task", "3 tasks".
func pluralize(n int, singular, plural string) string {
	if n == 0 || n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
