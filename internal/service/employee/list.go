package employee

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"

	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/domain/employee"
	"github.com/cmlabs-hris/competency-web/internal/pkg/resource"
)

// GoodAverage is the threshold at or above which an average is shown as good.
const GoodAverage = 7.0

// ListScreen is the state of the Employee List.
type ListScreen struct {
	Employees resource.Result[[]employee.Employee]
	Rows      []EmployeeRow
	Error     string
}

type EmployeeRow struct {
	Employee      employee.Employee
	Expanded      bool
	ToggleURL     string
	Department    string
	Status        string
	LastEvaluated string
	Average       string
	AverageGood   bool
	HasAverage    bool
	Competencies  []CompetencyLine
}

type CompetencyLine struct {
	CompetencyID  int
	Name          string
	RequiredScore int
	ActualScore   string
	Evaluated     bool
	Passed        bool
}

// Expansion is the set of expanded employee ids. The zero value has every
// row collapsed.
type Expansion map[int]bool

// ParseExpansion reads repeated `expanded` ids; unparsable ids are ignored.
func ParseExpansion(values []string) Expansion {
	e := Expansion{}
	for _, v := range values {
		if id, err := strconv.Atoi(v); err == nil {
			e[id] = true
		}
	}
	return e
}

// Toggle returns a copy of e with only id's state flipped.
func (e Expansion) Toggle(id int) Expansion {
	next := make(Expansion, len(e)+1)
	for k, v := range e {
		if v {
			next[k] = true
		}
	}
	if next[id] {
		delete(next, id)
	} else {
		next[id] = true
	}
	return next
}

func (e Expansion) IDs() []int {
	ids := make([]int, 0, len(e))
	for id, v := range e {
		if v {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Query encodes e as a URL query, e.g. "expanded=1&expanded=4".
func (e Expansion) Query() string {
	values := url.Values{}
	for _, id := range e.IDs() {
		values.Add("expanded", strconv.Itoa(id))
	}
	return values.Encode()
}

// AverageScore returns the mean of the evaluated scores, ignoring nil ones.
func AverageScore(competencies []employee.Competency) (float64, bool) {
	var sum float64
	var n int
	for _, c := range competencies {
		if c.ActualScore != nil {
			sum += *c.ActualScore
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// FormatAverage renders the average rounded half up to one decimal, or "N/A".
func FormatAverage(competencies []employee.Competency) string {
	avg, ok := AverageScore(competencies)
	if !ok {
		return "N/A"
	}
	return strconv.FormatFloat(roundTenth(avg), 'f', 1, 64)
}

// NameLookup indexes the catalog by id.
func NameLookup(catalog []competency.Competency) map[int]string {
	names := make(map[int]string, len(catalog))
	for _, c := range catalog {
		names[c.ID] = c.Name
	}
	return names
}

// CompetencyName falls back to "Competency #<id>" for ids missing from names.
func CompetencyName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Competency #%d", id)
}

func buildRows(employees []employee.Employee, names map[int]string, expanded Expansion, basePath string) []EmployeeRow {
	rows := make([]EmployeeRow, len(employees))
	for i, emp := range employees {
		row := EmployeeRow{
			Employee:      emp,
			Expanded:      expanded[emp.ID],
			ToggleURL:     toggleURL(basePath, expanded.Toggle(emp.ID)),
			Department:    departmentName(emp),
			Status:        emp.EvaluationStatus.Label(),
			LastEvaluated: "N/A",
			Average:       FormatAverage(emp.Competencies),
		}
		if emp.LastEvaluatedDate != nil && *emp.LastEvaluatedDate != "" {
			row.LastEvaluated = *emp.LastEvaluatedDate
		}
		if avg, ok := AverageScore(emp.Competencies); ok {
			row.HasAverage = true
			row.AverageGood = roundTenth(avg) >= GoodAverage
		}
		for _, c := range emp.Competencies {
			line := CompetencyLine{
				CompetencyID:  c.CompetencyID,
				Name:          CompetencyName(names, c.CompetencyID),
				RequiredScore: c.RequiredScore,
				ActualScore:   "N/A",
				Passed:        c.Passed(),
			}
			if c.ActualScore != nil {
				line.Evaluated = true
				line.ActualScore = strconv.FormatFloat(*c.ActualScore, 'f', -1, 64)
			}
			row.Competencies = append(row.Competencies, line)
		}
		rows[i] = row
	}
	return rows
}

func toggleURL(basePath string, next Expansion) string {
	if q := next.Query(); q != "" {
		return basePath + "?" + q
	}
	return basePath
}

func departmentName(emp employee.Employee) string {
	if emp.Department != nil && emp.Department.Name != "" {
		return emp.Department.Name
	}
	return fmt.Sprintf("Department #%d", emp.DepartmentID)
}

// roundTenth rounds to one decimal with ties away from zero, so 7.25 is 7.3.
func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}

// attachCompetencies fills employees whose payload had no competencies field
// from the flat employee-competency rows.
func attachCompetencies(employees []employee.Employee, rows []employee.Competency) {
	byEmployee := make(map[int][]employee.Competency)
	for _, r := range rows {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}
	for i := range employees {
		if employees[i].Competencies == nil {
			employees[i].Competencies = byEmployee[employees[i].ID]
			if employees[i].Competencies == nil {
				employees[i].Competencies = []employee.Competency{}
			}
		}
	}
}

func needsCompetencies(employees []employee.Employee) bool {
	for _, e := range employees {
		if e.Competencies == nil {
			return true
		}
	}
	return false
}
