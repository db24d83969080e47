// Package importer loads the source metadata spreadsheet into the
// geo_metadata table, replacing any prior contents.
package importer

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"geo-catalog-service/internal/domain"
)

// headerColumns maps the spreadsheet's header labels to internal column
// identifiers where plain normalization would not land on the right column.
var headerColumns = map[string]string{
	"GEO Series ID (GSE___)": "gse_id",
	"Data type":              "data_type",
	"SuperSeries, list GEO Series that are part of the SuperSeries": "superseries",
	"Sample size (placenta)":                 "sample_size",
	"Platform ID (list)":                     "platform_id",
	"SRA Study ID (raw data)":                "sra_study_id",
	"BioSample/BioProject ID":                "bioproject_id",
	"File types/resources provided (list)":   "file_types",
	"Organization name":                      "organization_name",
	"E-mail(s)":                              "email",
	"Supervisor/PI Name":                     "supervisor_name",
	"Supervisor/PI Email":                    "supervisor_email",
	"GA at Delivery Provided":                "ga_delivery_provided",
	"GA at Delivery (weeks)":                 "ga_delivery_weeks",
	"GA at Collection Provided":              "ga_collection_provided",
	"GA at Collection (weeks)":               "ga_collection_weeks",
	"Sex of Offspring Provided":              "sex_provided",
	"Pregnancy Complications":                "pregnancy_complications_list",
	"Fetal Complications":                    "fetal_complications_list",
	"Sample Collection Country":              "sample_country",
}

var headerSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeHeader turns a free-form header label into a column-shaped
// identifier: lowercase, separator runs collapsed to underscores.
func normalizeHeader(label string) string {
	normalized := headerSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), "_")
	return strings.Trim(normalized, "_")
}

// mapHeader resolves a spreadsheet header label to a registry column.
func mapHeader(label string) (string, bool) {
	if col, ok := headerColumns[strings.TrimSpace(label)]; ok {
		return col, true
	}
	col := normalizeHeader(label)
	if col != domain.ColumnObjectID && domain.KnownColumn(col) {
		return col, true
	}
	return "", false
}

// Table holds parsed spreadsheet content: resolved column identifiers and
// row values aligned to them.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Parse reads the first sheet of an .xlsx workbook. The first row is the
// header; headers that resolve to no registry column are skipped.
func Parse(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	header := rows[0]
	var columns []string
	var indexes []int
	for i, label := range header {
		col, ok := mapHeader(label)
		if !ok {
			log.WithField("header", label).Warn("unmapped spreadsheet column skipped")
			continue
		}
		columns = append(columns, col)
		indexes = append(indexes, i)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no spreadsheet columns map to the schema")
	}

	table := &Table{Columns: columns}
	for _, row := range rows[1:] {
		values := make([]string, len(indexes))
		for j, idx := range indexes {
			if idx < len(row) {
				values[j] = strings.TrimSpace(row[idx])
			}
		}
		table.Rows = append(table.Rows, values)
	}

	return table, nil
}

type Loader struct {
	pool *pgxpool.Pool
}

func NewLoader(pool *pgxpool.Pool) *Loader {
	return &Loader{pool: pool}
}

// Load replaces the table contents with the parsed rows, assigning dense
// 1-based object_ids in row order.
func (l *Loader) Load(ctx context.Context, table *Table) (int, error) {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE geo_metadata"); err != nil {
		return 0, fmt.Errorf("truncate geo_metadata: %w", err)
	}

	copyColumns := append([]string{domain.ColumnObjectID}, table.Columns...)
	copyRows := make([][]interface{}, 0, len(table.Rows))
	for i, row := range table.Rows {
		values := make([]interface{}, 0, len(row)+1)
		values = append(values, int64(i+1))
		for _, cell := range row {
			if cell == "" {
				values = append(values, nil)
				continue
			}
			values = append(values, cell)
		}
		copyRows = append(copyRows, values)
	}

	count, err := tx.CopyFrom(ctx, pgx.Identifier{"geo_metadata"}, copyColumns, pgx.CopyFromRows(copyRows))
	if err != nil {
		return 0, fmt.Errorf("bulk load geo_metadata: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import transaction: %w", err)
	}

	return int(count), nil
}
