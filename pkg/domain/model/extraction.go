package model

// Extraction is the structured record decoded from one model response. It is
// ephemeral: validated and then folded into a Note, never persisted on its own.
type Extraction struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Summary    string   `json:"summary"`
	Categories []string `json:"categories"`
}

// MissingFields returns the names of required fields the extraction lacks.
// Categories may be empty but must be present (non-nil).
func (e *Extraction) MissingFields() []string {
	var missing []string
	if e.Title == "" {
		missing = append(missing, "title")
	}
	if e.Content == "" {
		missing = append(missing, "content")
	}
	if e.Summary == "" {
		missing = append(missing, "summary")
	}
	if e.Categories == nil {
		missing = append(missing, "categories")
	}
	return missing
}
