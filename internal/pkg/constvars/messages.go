package constvars

const (
	UploadDocumentSuccessMessage = "document uploaded successfully"
	GetDocumentsSuccessMessage   = "documents retrieved successfully"
	GetDocumentURLSuccessMessage = "document url created successfully"
	GetBrandConfigSuccessMessage = "brand config retrieved successfully"
)

const (
	HealthStatusOK      = "ok"
	HeaderValueDegraded = "true"
)
