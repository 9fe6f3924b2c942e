package requests

import (
	"io"
)

type UploadDocumentRequest struct {
	MemberID    string    `json:"memberId" validate:"required,max=64"`
	Category    string    `json:"category" validate:"required,oneof=claim eob id_card referral other"`
	FileName    string    `json:"fileName" validate:"required,max=255"`
	ContentType string    `json:"contentType" validate:"required"`
	SizeBytes   int64     `json:"sizeBytes" validate:"gt=0"`
	File        io.Reader `json:"-"`
}

type ListDocumentsQuery struct {
	MemberID string `json:"memberId" validate:"required,max=64"`
}
