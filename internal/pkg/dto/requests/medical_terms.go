package requests

type MedicalTermsQuery struct {
	Kind  string `json:"kind" validate:"required,oneof=medications allergies conditions"`
	Query string `json:"q" validate:"max=100"`
}
