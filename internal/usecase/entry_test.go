package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"geo-catalog-service/internal/domain"
	"geo-catalog-service/internal/testutil"
)

func TestEntryUseCase_Search_FramesPage(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	entries := []*domain.Entry{{ObjectID: 41}, {ObjectID: 42}, {ObjectID: 43}, {ObjectID: 44}, {ObjectID: 45}}
	repo.On("Search", mock.Anything, domain.SearchFilter{Limit: 20, Offset: 40}).Return(entries, 45, nil)

	result, err := uc.Search(context.Background(), SearchParams{Page: 3})
	assert.NoError(t, err)
	assert.Len(t, result.Entries, 5)
	assert.Equal(t, 45, result.Total)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 20, result.PerPage)
	assert.Equal(t, 3, result.TotalPages)
	repo.AssertExpectations(t)
}

func TestEntryUseCase_Search_NormalizesInputs(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	expected := domain.SearchFilter{
		Query:     "placenta",
		Organisms: []string{"Homo sapiens"},
		Limit:     20,
		Offset:    0,
	}
	repo.On("Search", mock.Anything, expected).Return([]*domain.Entry{}, 0, nil)

	result, err := uc.Search(context.Background(), SearchParams{
		Query:     "  placenta  ",
		Organisms: []string{" Homo sapiens ", "", "   "},
		DataTypes: []string{""},
		Page:      -2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	repo.AssertExpectations(t)
}

func TestEntryUseCase_Search_EmptyMatchSet(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	repo.On("Search", mock.Anything, mock.AnythingOfType("domain.SearchFilter")).Return(nil, 0, nil)

	result, err := uc.Search(context.Background(), SearchParams{Query: "no such term", Page: 1})
	assert.NoError(t, err)
	assert.NotNil(t, result.Entries)
	assert.Empty(t, result.Entries)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.TotalPages)
}

func TestEntryUseCase_Search_RepoError(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	storeErr := errors.New("connection refused")
	repo.On("Search", mock.Anything, mock.AnythingOfType("domain.SearchFilter")).Return(nil, 0, storeErr)

	result, err := uc.Search(context.Background(), SearchParams{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, storeErr)
}

func TestEntryUseCase_Search_IsIdempotent(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	entries := []*domain.Entry{{ObjectID: 2}, {ObjectID: 17}, {ObjectID: 40}}
	repo.On("Search", mock.Anything, mock.AnythingOfType("domain.SearchFilter")).Return(entries, 3, nil)

	first, err := uc.Search(context.Background(), SearchParams{Query: "placenta", Page: 1})
	assert.NoError(t, err)
	second, err := uc.Search(context.Background(), SearchParams{Query: "placenta", Page: 1})
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int64{2, 17, 40}, []int64{
		first.Entries[0].ObjectID, first.Entries[1].ObjectID, first.Entries[2].ObjectID,
	})
}

func TestEntryUseCase_Get(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	entry := &domain.Entry{ObjectID: 7, Title: "Placental transcriptome"}
	repo.On("GetByID", mock.Anything, int64(7)).Return(entry, nil)

	got, err := uc.Get(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestEntryUseCase_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	repo.On("GetByID", mock.Anything, int64(9999)).Return(nil, domain.ErrEntryNotFound)

	_, err := uc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestEntryUseCase_FilterOptions(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 20)

	opts := &domain.FilterOptions{
		Organisms:         []string{"Homo sapiens", "Mus musculus"},
		DataTypes:         []string{"Expression profiling by high throughput sequencing"},
		LibraryStrategies: []string{"RNA-Seq"},
	}
	repo.On("FilterOptions", mock.Anything).Return(opts, nil)

	got, err := uc.FilterOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, opts, got)
}

func TestNewEntryUseCase_DefaultsPerPage(t *testing.T) {
	repo := new(testutil.MockEntryRepo)
	uc := NewEntryUseCase(repo, 0)

	repo.On("Search", mock.Anything, domain.SearchFilter{Limit: 20, Offset: 0}).Return([]*domain.Entry{}, 0, nil)

	result, err := uc.Search(context.Background(), SearchParams{Page: 1})
	assert.NoError(t, err)
	assert.Equal(t, 20, result.PerPage)
}
