package dto

// CatalogQuery filters catalog listings by subject prefix, e.g. "COM SCI".
type CatalogQuery struct {
	Subject string `form:"subject" json:"subject"`
}
