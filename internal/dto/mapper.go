package dto

import (
	"geo-catalog-service/internal/domain"
	"geo-catalog-service/internal/usecase"
)

func ToSearchResponse(result *usecase.SearchResult) SearchResponse {
	return SearchResponse{
		Results:    result.Entries,
		Total:      result.Total,
		Page:       result.Page,
		PerPage:    result.PerPage,
		TotalPages: result.TotalPages,
	}
}

func ToEntryRow(e *domain.Entry) EntryRow {
	return EntryRow{
		ObjectID:        e.ObjectID,
		GSEID:           e.GSEID,
		Title:           e.Title,
		Organism:        e.Organism,
		DataType:        e.DataType,
		LibraryStrategy: e.LibraryStrategy,
		SubmissionDate:  e.SubmissionDate,
	}
}

func ToEntryRows(entries []*domain.Entry) []EntryRow {
	rows := make([]EntryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ToEntryRow(e))
	}
	return rows
}
