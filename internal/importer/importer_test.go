package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "data_type", normalizeHeader("Data type"))
	assert.Equal(t, "race_ethnicity_provided", normalizeHeader("Race/Ethnicity Provided"))
	assert.Equal(t, "hospital_center", normalizeHeader("Hospital/Center"))
	assert.Equal(t, "title", normalizeHeader("  Title  "))
}

func TestMapHeader(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"GEO Series ID (GSE___)", "gse_id"},
		{"Data type", "data_type"},
		{"Title", "title"},
		{"Organism", "organism"},
		{"Library Strategy", "library_strategy"},
		{"E-mail(s)", "email"},
		{"GA at Delivery (weeks)", "ga_delivery_weeks"},
		{"Supervisor/PI Name", "supervisor_name"},
		{"Sample Collection Country", "sample_country"},
	}
	for _, tc := range cases {
		col, ok := mapHeader(tc.label)
		assert.True(t, ok, tc.label)
		assert.Equal(t, tc.want, col)
	}
}

func TestMapHeader_UnknownAndReserved(t *testing.T) {
	_, ok := mapHeader("Reviewer notes (internal)")
	assert.False(t, ok)

	// The identifier column is assigned at load time, never read from the
	// sheet.
	_, ok = mapHeader("Object ID")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{
		"GEO Series ID (GSE___)", "Title", "Organism", "Reviewer notes (internal)",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{
		"GSE100", "Placental transcriptome", "Homo sapiens", "looks fine",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]string{
		"GSE200", "Mouse decidua atlas",
	}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := Parse(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"gse_id", "title", "organism"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"GSE100", "Placental transcriptome", "Homo sapiens"}, table.Rows[0])
	// Missing trailing cells come back empty, not misaligned.
	assert.Equal(t, []string{"GSE200", "Mouse decidua atlas", ""}, table.Rows[1])
}

func TestParse_NoMappableColumns(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Foo", "Bar"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = Parse(buf)
	assert.Error(t, err)
}
