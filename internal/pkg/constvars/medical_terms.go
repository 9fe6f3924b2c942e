package constvars

const (
	MedicalTermKindMedications = "medications"
	MedicalTermKindAllergies   = "allergies"
	MedicalTermKindConditions  = "conditions"
)

const (
	MedicalTermsCacheKeyMedication = "medication:"
	MedicalTermsCacheKeyAllergy    = "allergy:"
	MedicalTermsCacheKeyCondition  = "condition:"
)

const (
	MedicalTermsPathMedications = "/rxterms/v3/search"
	MedicalTermsPathAllergies   = "/rxterms/v3/search"
	MedicalTermsPathConditions  = "/conditions/v3/search"

	MedicalTermsExtraFieldStrengths = "STRENGTHS_AND_FORMS"
	MedicalTermsMinQueryLength      = 3
	MedicalTermsMaxResults          = 10
)
