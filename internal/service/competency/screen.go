package competency

import (
	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/pkg/resource"
)

// ListScreen is the in-memory state of the Competencies List.
type ListScreen struct {
	Competencies resource.Result[[]competency.Competency]
	// Editing holds the edit modal's values; nil when the modal is closed.
	Editing *competency.Competency
	// ConfirmDeleteID is the row awaiting delete confirmation, 0 for none.
	ConfirmDeleteID int
	Error           string
}

// Items returns the loaded competencies, empty unless loading succeeded.
func (l *ListScreen) Items() []competency.Competency {
	if !l.Competencies.Ok() {
		return nil
	}
	return l.Competencies.Data
}

// Find returns the loaded competency with id.
func (l *ListScreen) Find(id int) (competency.Competency, bool) {
	for _, c := range l.Items() {
		if c.ID == id {
			return c, true
		}
	}
	return competency.Competency{}, false
}

// BeginEdit opens the modal pre-filled with the row's current values.
func (l *ListScreen) BeginEdit(id int) bool {
	c, ok := l.Find(id)
	if !ok {
		return false
	}
	l.Editing = &c
	return true
}

func (l *ListScreen) CancelEdit() {
	l.Editing = nil
}

// RequestDelete asks for confirmation. It changes no rows.
func (l *ListScreen) RequestDelete(id int) {
	if _, ok := l.Find(id); ok {
		l.ConfirmDeleteID = id
	}
}

// Merge replaces the entry with id by updated; all others are kept. An
// updated value without an id takes id.
func (l *ListScreen) Merge(id int, updated competency.Competency) {
	if updated.ID == 0 {
		updated.ID = id
	}
	items := l.Items()
	merged := make([]competency.Competency, len(items))
	for i, c := range items {
		if c.ID == id {
			merged[i] = updated
			continue
		}
		merged[i] = c
	}
	l.Competencies.Data = merged
}

// Remove drops the entry with id without refetching.
func (l *ListScreen) Remove(id int) {
	items := l.Items()
	kept := make([]competency.Competency, 0, len(items))
	for _, c := range items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	l.Competencies.Data = kept
}
