package models

import "time"

type Document struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"memberId"`
	Category    string    `json:"category"`
	FileName    string    `json:"fileName"`
	ObjectName  string    `json:"objectName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DocumentURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
