package competency

// Competency is a named skill an employee can be scored against.
type Competency struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
