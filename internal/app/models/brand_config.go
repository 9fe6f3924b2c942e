package models

import "time"

// BrandConfig is one row of the flat brand_configs table.
type BrandConfig struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"slug"`
	DisplayName  string    `json:"displayName"`
	PrimaryColor string    `json:"primaryColor"`
	LogoURL      string    `json:"logoUrl"`
	SupportPhone string    `json:"supportPhone"`
	SupportEmail string    `json:"supportEmail"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
