package cli

import (
	"fmt"
	"strings"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/models"
	"github.com/yonasmekonnen/nesha/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Service *app.Service
}

// ResolveHabit finds a habit by ID or unique ID prefix.
func (c *Context) ResolveHabit(id string) (models.Habit, error) {
	var match models.Habit
	count := 0
	for _, h := range c.Service.Habits() {
		if h.ID == id {
			return h, nil
		}
		if strings.HasPrefix(h.ID, id) {
			match = h
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return models.Habit{}, fmt.Errorf("no habit found with ID %s", id)
	default:
		return models.Habit{}, fmt.Errorf("ID prefix %s matches %d habits", id, count)
	}
}

// ResolveTask finds a task by ID or unique ID prefix.
func (c *Context) ResolveTask(id string) (models.Task, error) {
	var match models.Task
	count := 0
	for _, t := range c.Service.Tasks() {
		if t.ID == id {
			return t, nil
		}
		if strings.HasPrefix(t.ID, id) {
			match = t
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return models.Task{}, fmt.Errorf("no task found with ID %s", id)
	default:
		return models.Task{}, fmt.Errorf("ID prefix %s matches %d tasks", id, count)
	}
}

// ResolveNote finds a note by ID or unique ID prefix.
func (c *Context) ResolveNote(id string) (models.Note, error) {
	var match models.Note
	count := 0
	for _, n := range c.Service.Notes() {
		if n.ID == id {
			return n, nil
		}
		if strings.HasPrefix(n.ID, id) {
			match = n
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return models.Note{}, fmt.Errorf("no note found with ID %s", id)
	default:
		return models.Note{}, fmt.Errorf("ID prefix %s matches %d notes", id, count)
	}
}

// ShortID truncates a UUID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Checkbox renders a completion marker.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
