// Package persona holds the read-only catalog of starter templates used to
// seed the task list.
package persona

import (
	"errors"
	"fmt"
	"strings"
)

// Persona is a named bundle of starter todos
type Persona struct {
	ID           string   `mapstructure:"id" json:"id"`
	Name         string   `mapstructure:"name" json:"name"`
	Mood         string   `mapstructure:"mood" json:"mood"`
	ImageURL     string   `mapstructure:"image_url" json:"image_url"`
	StarterTodos []string `mapstructure:"starter_todos" json:"starter_todos"`
}

// Catalog is an ordered, immutable list of personas
type Catalog struct {
	personas []Persona
	index    map[string]int
}

// New validates the personas and builds a catalog keeping their order
func New(personas []Persona) (*Catalog, error) {
	c := &Catalog{
		personas: make([]Persona, 0, len(personas)),
		index:    make(map[string]int, len(personas)),
	}

	for i, p := range personas {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("persona %d: empty id", i)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("persona %q: empty name", p.ID)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("persona %q: duplicate id", p.ID)
		}

		todos, err := cleanTodos(p.StarterTodos)
		if err != nil {
			return nil, fmt.Errorf("persona %q: %w", p.ID, err)
		}
		p.StarterTodos = todos

		c.index[p.ID] = len(c.personas)
		c.personas = append(c.personas, p)
	}

	return c, nil
}

func cleanTodos(labels []string) ([]string, error) {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, errors.New("empty starter todo")
		}
		if seen[label] {
			return nil, fmt.Errorf("duplicate starter todo %q", label)
		}
		seen[label] = true
		out = append(out, label)
	}
	return out, nil
}

// All returns the personas in declared order
func (c *Catalog) All() []Persona {
	out := make([]Persona, len(c.personas))
	for i, p := range c.personas {
		p.StarterTodos = append([]string(nil), p.StarterTodos...)
		out[i] = p
	}
	return out
}

// Get looks up a persona by id
func (c *Catalog) Get(id string) (Persona, bool) {
	i, ok := c.index[id]
	if !ok {
		return Persona{}, false
	}
	p := c.personas[i]
	p.StarterTodos = append([]string(nil), p.StarterTodos...)
	return p, true
}

// At returns the persona at position i in declared order
func (c *Catalog) At(i int) (Persona, bool) {
	if i < 0 || i >= len(c.personas) {
		return Persona{}, false
	}
	return c.Get(c.personas[i].ID)
}

// Len returns the number of personas
func (c *Catalog) Len() int {
	return len(c.personas)
}
