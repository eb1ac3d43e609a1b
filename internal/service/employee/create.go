package employee

import (
	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/domain/employee"
	"github.com/cmlabs-hris/competency-web/internal/pkg/resource"
)

// CreateForm is the state of the Create Employee screen.
type CreateForm struct {
	Catalog resource.Result[[]competency.Competency]
	Values  employee.CreateEmployeeRequest
	Message string
	Error   string
}

// Option is one entry of a row's competency picker.
type Option struct {
	ID       int
	Name     string
	Selected bool
}

// Row is a competency requirement row ready for rendering.
type Row struct {
	Index         int
	RequiredScore int
	Options       []Option
}

// AddRow appends an empty requirement row.
func (f *CreateForm) AddRow() {
	f.Values.Competencies = append(f.Values.Competencies, employee.CompetencyRequirement{})
}

// RemoveRow deletes the row at index i, keeping the order of the others.
func (f *CreateForm) RemoveRow(i int) error {
	if i < 0 || i >= len(f.Values.Competencies) {
		return employee.ErrRowOutOfRange
	}
	rows := make([]employee.CompetencyRequirement, 0, len(f.Values.Competencies)-1)
	rows = append(rows, f.Values.Competencies[:i]...)
	rows = append(rows, f.Values.Competencies[i+1:]...)
	f.Values.Competencies = rows
	return nil
}

// Available returns the catalog minus every competency chosen in a row other
// than i.
func (f *CreateForm) Available(i int) []competency.Competency {
	taken := make(map[int]bool)
	for j, row := range f.Values.Competencies {
		if j != i && row.CompetencyID != 0 {
			taken[row.CompetencyID] = true
		}
	}

	var available []competency.Competency
	for _, c := range f.catalog() {
		if !taken[c.ID] {
			available = append(available, c)
		}
	}
	return available
}

// Options returns row i's picker entries: the available competencies plus,
// when it is otherwise excluded, the row's own current selection.
func (f *CreateForm) Options(i int) []Option {
	selected := 0
	if i >= 0 && i < len(f.Values.Competencies) {
		selected = f.Values.Competencies[i].CompetencyID
	}

	available := f.Available(i)
	options := make([]Option, 0, len(available)+1)
	present := false
	for _, c := range available {
		options = append(options, Option{ID: c.ID, Name: c.Name, Selected: c.ID == selected})
		if c.ID == selected {
			present = true
		}
	}

	if selected > 0 && !present {
		options = append(options, Option{ID: selected, Name: f.catalogName(selected), Selected: true})
	}
	return options
}

// Rows returns every requirement row with its picker options.
func (f *CreateForm) Rows() []Row {
	rows := make([]Row, len(f.Values.Competencies))
	for i, row := range f.Values.Competencies {
		rows[i] = Row{
			Index:         i,
			RequiredScore: row.RequiredScore,
			Options:       f.Options(i),
		}
	}
	return rows
}

// LoadingCatalog reports whether the picker should show a loading notice.
func (f *CreateForm) LoadingCatalog() bool {
	return f.Catalog.IsLoading() && len(f.Catalog.Data) == 0
}

func (f *CreateForm) catalog() []competency.Competency {
	if !f.Catalog.Ok() {
		return nil
	}
	return f.Catalog.Data
}

func (f *CreateForm) catalogName(id int) string {
	for _, c := range f.catalog() {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown"
}
