package todo

// Task represents a single todo entry
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Status returns the checkbox prefix used when a task is displayed
func (t Task) Status() string {
	if t.Done {
		return "[x]"
	}
	return "[ ]"
}
