package domain

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns_ObjectIDFirst(t *testing.T) {
	cols := Columns()
	require.NotEmpty(t, cols)
	assert.Equal(t, ColumnObjectID, cols[0])
}

func TestColumns_NoDuplicates(t *testing.T) {
	seen := map[string]bool{}
	for _, col := range Columns() {
		assert.False(t, seen[col], "duplicate column %s", col)
		seen[col] = true
	}
}

func TestSearchColumns_ExcludesIdentifier(t *testing.T) {
	assert.NotContains(t, SearchColumns(), ColumnObjectID)
	assert.Len(t, SearchColumns(), len(Columns())-1)
}

func TestEveryColumnHasLabel(t *testing.T) {
	for _, col := range Columns() {
		label, ok := displayLabels[col]
		assert.True(t, ok, "column %s has no display label", col)
		assert.NotEmpty(t, label)
	}
	assert.Len(t, displayLabels, len(Columns()))
}

func TestEveryDescriptiveColumnHasAccessor(t *testing.T) {
	e := &Entry{}
	for _, col := range SearchColumns() {
		_, ok := entryValues[col]
		assert.True(t, ok, "column %s has no value accessor", col)
		assert.Equal(t, "", e.Value(col))
	}
	assert.Len(t, entryValues, len(SearchColumns()))
}

func TestFilterColumnsAreRegistered(t *testing.T) {
	for _, col := range FilterColumns {
		assert.True(t, KnownColumn(col))
	}
}

// The registry and the storage schema must not drift apart; a mismatch is a
// defect caught here, not at request time.
func TestRegistryMatchesMigration(t *testing.T) {
	sql, err := os.ReadFile("../../migrations/0001_create_geo_metadata.up.sql")
	require.NoError(t, err)

	schema := string(sql)
	tableBody := schema[strings.Index(schema, "("):strings.Index(schema, ";")]

	for _, col := range Columns() {
		assert.Contains(t, tableBody, "\n    "+col+" ", "column %s missing from migration", col)
	}

	// Same count both ways: every migration column is registered too.
	assert.Equal(t, len(Columns()), strings.Count(tableBody, ",")+1)
}

func TestEntryValue_UnknownColumn(t *testing.T) {
	e := &Entry{Title: "x"}
	assert.Equal(t, "", e.Value("no_such_column"))
	assert.Equal(t, "x", e.Value("title"))
}

func TestEntryFields_RegistryOrder(t *testing.T) {
	e := &Entry{GSEID: "GSE100", Title: "Placental transcriptome"}
	fields := e.Fields()

	require.Len(t, fields, len(SearchColumns()))
	assert.Equal(t, ColumnGSEID, fields[0].Column)
	assert.Equal(t, "GEO Series ID", fields[0].Label)
	assert.Equal(t, "GSE100", fields[0].Value)
}

func TestLabel_FallsBackToIdentifier(t *testing.T) {
	assert.Equal(t, "Object ID", Label(ColumnObjectID))
	assert.Equal(t, "mystery_column", Label("mystery_column"))
}
