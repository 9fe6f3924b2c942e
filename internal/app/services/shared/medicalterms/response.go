package medicalterms

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"errors"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// searchResponse is the Clinical Tables array format:
// [total, codes, {extraField: [...]}, [[display, ...], ...]].
type searchResponse struct {
	Total   int
	Codes   []string
	Extra   map[string][][]string
	Display [][]string
}

func decodeSearchResponse(body io.Reader) (*searchResponse, error) {
	var raw []json.RawMessage
	err := json.NewDecoder(body).Decode(&raw)
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, errors.New("unexpected clinical tables response shape")
	}

	response := &searchResponse{}
	err = json.Unmarshal(raw[0], &response.Total)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(raw[1], &response.Codes)
	if err != nil {
		return nil, err
	}
	if string(raw[2]) != "null" {
		err = json.Unmarshal(raw[2], &response.Extra)
		if err != nil {
			return nil, err
		}
	}
	err = json.Unmarshal(raw[3], &response.Display)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (r *searchResponse) names() []string {
	names := make([]string, 0, len(r.Display))
	for i, display := range r.Display {
		switch {
		case len(display) > 0:
			names = append(names, strings.TrimSpace(display[0]))
		case i < len(r.Codes):
			names = append(names, strings.TrimSpace(r.Codes[i]))
		}
	}
	return names
}

func (r *searchResponse) terms() []models.TermResult {
	names := r.names()
	results := make([]models.TermResult, 0, len(names))
	for _, name := range names {
		results = append(results, models.TermResult{Name: name})
	}
	return results
}

func (r *searchResponse) medications() []models.MedicationResult {
	names := r.names()
	strengths := r.Extra[constvars.MedicalTermsExtraFieldStrengths]

	results := make([]models.MedicationResult, 0, len(names))
	for i, name := range names {
		result := models.MedicationResult{Name: name, Strengths: []string{}}
		if i < len(strengths) {
			for _, strength := range strengths[i] {
				if trimmed := strings.TrimSpace(strength); trimmed != "" {
					result.Strengths = append(result.Strengths, trimmed)
				}
			}
		}
		results = append(results, result)
	}
	return results
}
