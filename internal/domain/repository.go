package domain

import "context"

// SearchFilter carries one request's predicate inputs. An empty Query adds
// no text clause; an empty value slice adds no membership clause.
type SearchFilter struct {
	Query             string
	Organisms         []string
	DataTypes         []string
	LibraryStrategies []string
	Limit             int
	Offset            int
}

// FilterOptions are the distinct non-empty values present in the record set
// for each filterable column, ascending.
type FilterOptions struct {
	Organisms         []string `json:"organisms"`
	DataTypes         []string `json:"data_types"`
	LibraryStrategies []string `json:"library_strategies"`
}

type EntryRepository interface {
	// Search returns one page of entries matching the filter, ordered by
	// object_id, plus the total match count for the same predicate.
	Search(ctx context.Context, filter SearchFilter) ([]*Entry, int, error)
	GetByID(ctx context.Context, id int64) (*Entry, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
}
