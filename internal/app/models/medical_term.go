package models

type MedicationResult struct {
	Name      string   `json:"name"`
	Strengths []string `json:"strengths"`
}

// TermResult is used for allergy and condition lookups, which only carry a display name.
type TermResult struct {
	Name string `json:"name"`
}
