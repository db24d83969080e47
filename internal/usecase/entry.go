package usecase

import (
	"context"
	"strings"

	"geo-catalog-service/internal/domain"
	"geo-catalog-service/internal/pagination"
)

// SearchParams are the raw request inputs before normalization.
type SearchParams struct {
	Query             string
	Organisms         []string
	DataTypes         []string
	LibraryStrategies []string
	Page              int
}

// SearchResult is one framed page of the catalog.
type SearchResult struct {
	Entries    []*domain.Entry
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type EntryUseCase struct {
	repo    domain.EntryRepository
	perPage int
}

func NewEntryUseCase(repo domain.EntryRepository, perPage int) *EntryUseCase {
	if perPage <= 0 {
		perPage = 20
	}
	return &EntryUseCase{repo: repo, perPage: perPage}
}

// Search normalizes the request and fetches the matching page plus the
// total count. A page below 1 is clamped to 1; a page past the last one
// comes back as an empty slice with the total reported truthfully.
func (uc *EntryUseCase) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	filter := domain.SearchFilter{
		Query:             strings.TrimSpace(params.Query),
		Organisms:         cleanValues(params.Organisms),
		DataTypes:         cleanValues(params.DataTypes),
		LibraryStrategies: cleanValues(params.LibraryStrategies),
		Limit:             uc.perPage,
		Offset:            pagination.Offset(page, uc.perPage),
	}

	entries, total, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}

	return &SearchResult{
		Entries:    entries,
		Total:      total,
		Page:       page,
		PerPage:    uc.perPage,
		TotalPages: pagination.TotalPages(total, uc.perPage),
	}, nil
}

func (uc *EntryUseCase) Get(ctx context.Context, id int64) (*domain.Entry, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *EntryUseCase) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	return uc.repo.FilterOptions(ctx)
}

// cleanValues trims each selection and drops empties, so a filter group
// that is present but blank adds no predicate.
func cleanValues(values []string) []string {
	var cleaned []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}
