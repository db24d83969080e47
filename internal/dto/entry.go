package dto

import "geo-catalog-service/internal/domain"

// SearchResponse is the JSON search envelope.
type SearchResponse struct {
	Results    []*domain.Entry `json:"results"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

// EntryRow is the compact listing shape rendered in the results table.
type EntryRow struct {
	ObjectID        int64
	GSEID           string
	Title           string
	Organism        string
	DataType        string
	LibraryStrategy string
	SubmissionDate  string
}
