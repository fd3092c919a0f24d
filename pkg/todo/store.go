package todo

import (
	"strings"

	"moodtodo/pkg/persona"
	"moodtodo/pkg/utils"
)

// Store owns the ordered task list, the pending input text and the
// active persona selection. It is not safe for concurrent use; the UI
// drives it from a single event loop.
type Store struct {
	tasks   []Task
	pending string
	active  string
	lastID  int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// nextID hands out identities from a counter so tasks created in one
// batch never collide.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// Tasks returns a copy of the tasks in display order
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Find looks up a task by id
func (s *Store) Find(id int64) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Counts returns the number of completed tasks and the total
func (s *Store) Counts() (done, total int) {
	for _, t := range s.tasks {
		if t.Done {
			done++
		}
	}
	return done, len(s.tasks)
}

// Pending returns the not yet submitted input text
func (s *Store) Pending() string {
	return s.pending
}

// SetPending replaces the pending input text
func (s *Store) SetPending(text string) {
	s.pending = text
}

// Add appends a task with the trimmed text. Blank text is ignored.
// Returns true when a task was added.
func (s *Store) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	next := make([]Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	task := Task{ID: s.nextID(), Text: text}
	s.tasks = append(next, task)
	s.pending = ""

	utils.Log("Added task %d: %s", task.ID, task.Text)
	return true
}

// Submit adds the pending input text as a new task
func (s *Store) Submit() bool {
	return s.Add(s.pending)
}

// Toggle flips the done flag of the task with the given id
func (s *Store) Toggle(id int64) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	next := make([]Task, len(s.tasks))
	copy(next, s.tasks)
	next[idx].Done = !next[idx].Done
	s.tasks = next

	utils.Log("Toggled task %d: done=%t", id, next[idx].Done)
}

// Remove deletes the task with the given id
func (s *Store) Remove(id int64) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)
	s.tasks = next

	utils.Log("Removed task %d", id)
}

// SeedFromPersona appends the persona's starter todos whose text is not
// already in the list, in the persona's order. Matching is by text across
// the whole list, not per persona. Returns the number of tasks added.
func (s *Store) SeedFromPersona(p persona.Persona) int {
	present := make(map[string]struct{}, len(s.tasks))
	for _, t := range s.tasks {
		present[t.Text] = struct{}{}
	}

	var added []Task
	for _, label := range p.StarterTodos {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := present[label]; ok {
			continue
		}
		present[label] = struct{}{}
		added = append(added, Task{ID: s.nextID(), Text: label})
	}

	if len(added) == 0 {
		return 0
	}

	next := make([]Task, 0, len(s.tasks)+len(added))
	next = append(next, s.tasks...)
	s.tasks = append(next, added...)

	utils.Log("Seeded %d task(s) from persona %s", len(added), p.ID)
	return len(added)
}

// ActivePersona returns the highlighted persona id, if any
func (s *Store) ActivePersona() (string, bool) {
	return s.active, s.active != ""
}

// ToggleActivePersona selects the persona, or clears the selection when
// it is already the active one
func (s *Store) ToggleActivePersona(id string) {
	if s.active == id {
		s.active = ""
		return
	}
	s.active = id
}

// SelectAndSeed toggles the persona highlight and seeds its starter
// todos. Seeding happens on deselect as well.
func (s *Store) SelectAndSeed(p persona.Persona) int {
	s.ToggleActivePersona(p.ID)
	return s.SeedFromPersona(p)
}

func (s *Store) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
