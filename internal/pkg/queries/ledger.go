package queries

const (
	InsertAppointmentLedgerEntry = `
		INSERT INTO appointment_ledger (provider_appointment_id, appointment_type_id, datetime, email, outcome, degraded_reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	GetAppointmentLedgerEntriesByEmail = `
		SELECT id, provider_appointment_id, appointment_type_id, datetime, email, outcome, degraded_reason, created_at
		FROM appointment_ledger
		WHERE email = $1
		ORDER BY created_at DESC, id DESC`
)
