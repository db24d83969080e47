package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"geo-catalog-service/internal/domain"
)

type entryRepo struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) domain.EntryRepository {
	return &entryRepo{pool: pool}
}

// entryColumns is the SELECT list for geo_metadata in registry order.
// Descriptive columns are nullable in storage but always strings in the
// domain, so they are coalesced here.
var entryColumns = func() string {
	cols := []string{domain.ColumnObjectID}
	for _, col := range domain.SearchColumns() {
		cols = append(cols, fmt.Sprintf("COALESCE(%s, '')", col))
	}
	return strings.Join(cols, ", ")
}()

// buildConditions turns the request's text term and filter selections into
// WHERE conditions with bound arguments. The page and count queries both
// run off the same output, so their predicates cannot drift apart.
func buildConditions(filter domain.SearchFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		pos := len(args)
		clauses := make([]string, 0, len(domain.SearchColumns()))
		for _, col := range domain.SearchColumns() {
			clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", col, pos))
		}
		conditions = append(conditions, "("+strings.Join(clauses, " OR ")+")")
	}

	groups := []struct {
		column string
		values []string
	}{
		{domain.ColumnOrganism, filter.Organisms},
		{domain.ColumnDataType, filter.DataTypes},
		{domain.ColumnLibraryStrategy, filter.LibraryStrategies},
	}
	for _, g := range groups {
		if len(g.values) == 0 {
			continue
		}
		placeholders := make([]string, 0, len(g.values))
		for _, v := range g.values {
			args = append(args, v)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conditions = append(conditions, fmt.Sprintf("%s IN (%s)", g.column, strings.Join(placeholders, ", ")))
	}

	return conditions, args
}

func (r *entryRepo) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Entry, int, error) {
	conditions, args := buildConditions(filter)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM geo_metadata" + whereClause
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM geo_metadata%s ORDER BY object_id LIMIT $%d OFFSET $%d",
		entryColumns, whereClause, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		e := &domain.Entry{}
		if err := rows.Scan(entryScanDest(e)...); err != nil {
			return nil, 0, fmt.Errorf("scan entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate entry rows: %w", err)
	}

	return entries, total, nil
}

func (r *entryRepo) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	query := fmt.Sprintf("SELECT %s FROM geo_metadata WHERE object_id = $1", entryColumns)

	e := &domain.Entry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(entryScanDest(e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("get entry by id: %w", err)
	}

	return e, nil
}

func (r *entryRepo) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	opts := &domain.FilterOptions{}
	targets := []struct {
		column string
		dest   *[]string
	}{
		{domain.ColumnOrganism, &opts.Organisms},
		{domain.ColumnDataType, &opts.DataTypes},
		{domain.ColumnLibraryStrategy, &opts.LibraryStrategies},
	}

	for _, t := range targets {
		values, err := r.distinctValues(ctx, t.column)
		if err != nil {
			return nil, err
		}
		*t.dest = values
	}

	return opts, nil
}

func (r *entryRepo) distinctValues(ctx context.Context, column string) ([]string, error) {
	// column is always one of the fixed filter columns, never user input.
	query := fmt.Sprintf(
		"SELECT DISTINCT %s FROM geo_metadata WHERE %s IS NOT NULL AND %s <> '' ORDER BY %s",
		column, column, column, column,
	)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s values: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s value: %w", column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s values: %w", column, err)
	}

	return values, nil
}

// entryScanDest returns scan destinations matching entryColumns order.
func entryScanDest(e *domain.Entry) []interface{} {
	return []interface{}{
		&e.ObjectID,
		&e.GSEID,
		&e.DataType,
		&e.Superseries,
		&e.SampleSize,
		&e.Title,
		&e.Organism,
		&e.Characteristics,
		&e.ExtractedMolecule,
		&e.ExtractionProtocol,
		&e.LibraryStrategy,
		&e.LibrarySource,
		&e.LibrarySelection,
		&e.InstrumentModel,
		&e.AssayDescription,
		&e.DataProcessing,
		&e.PlatformID,
		&e.SRAStudyID,
		&e.BioprojectID,
		&e.FileTypes,
		&e.SubmissionDate,
		&e.LastUpdateDate,
		&e.OrganizationName,
		&e.ContactName,
		&e.Email,
		&e.Country,
		&e.PMID,
		&e.PMCID,
		&e.DOI,
		&e.SupervisorName,
		&e.SupervisorEmail,
		&e.MainTopic,
		&e.PregnancyTrimester,
		&e.BirthweightProvided,
		&e.GADeliveryProvided,
		&e.GADeliveryWeeks,
		&e.GACollectionProvided,
		&e.GACollectionWeeks,
		&e.SexProvided,
		&e.ParityProvided,
		&e.GravidityProvided,
		&e.OffspringNumberProvided,
		&e.RaceEthnicityProvided,
		&e.GeneticAncestryProvided,
		&e.MaternalHeightProvided,
		&e.MaternalWeightProvided,
		&e.PaternalHeightProvided,
		&e.PaternalWeightProvided,
		&e.MaternalAgeProvided,
		&e.PaternalAgeProvided,
		&e.PregnancyComplicationsCollected,
		&e.DeliveryModeProvided,
		&e.PregnancyComplicationsList,
		&e.FetalComplicationsListed,
		&e.FetalComplicationsList,
		&e.OtherPhenotypes,
		&e.HospitalCenter,
		&e.SampleCountry,
	}
}
