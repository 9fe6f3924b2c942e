package queries

const (
	InsertDocument = `
		INSERT INTO documents (id, member_id, category, file_name, object_name, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	GetDocumentByID = `
		SELECT id, member_id, category, file_name, object_name, content_type, size_bytes, created_at
		FROM documents
		WHERE id = $1`

	GetDocumentsByMemberID = `
		SELECT id, member_id, category, file_name, object_name, content_type, size_bytes, created_at
		FROM documents
		WHERE member_id = $1
		ORDER BY created_at DESC`
)
