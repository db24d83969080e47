package domain

// Column identifiers referenced outside the registry.
const (
	ColumnObjectID        = "object_id"
	ColumnGSEID           = "gse_id"
	ColumnOrganism        = "organism"
	ColumnDataType        = "data_type"
	ColumnLibraryStrategy = "library_strategy"
)

// FilterColumns are the columns whose distinct values are exposed as
// discrete filter choices.
var FilterColumns = []string{ColumnOrganism, ColumnDataType, ColumnLibraryStrategy}

// columnOrder is the fixed storage-column order. It must match the
// geo_metadata table definition; the schema sync test enforces that.
var columnOrder = []string{
	ColumnObjectID,
	ColumnGSEID,
	ColumnDataType,
	"superseries",
	"sample_size",
	"title",
	ColumnOrganism,
	"characteristics",
	"extracted_molecule",
	"extraction_protocol",
	ColumnLibraryStrategy,
	"library_source",
	"library_selection",
	"instrument_model",
	"assay_description",
	"data_processing",
	"platform_id",
	"sra_study_id",
	"bioproject_id",
	"file_types",
	"submission_date",
	"last_update_date",
	"organization_name",
	"contact_name",
	"email",
	"country",
	"pmid",
	"pmcid",
	"doi",
	"supervisor_name",
	"supervisor_email",
	"main_topic",
	"pregnancy_trimester",
	"birthweight_provided",
	"ga_delivery_provided",
	"ga_delivery_weeks",
	"ga_collection_provided",
	"ga_collection_weeks",
	"sex_provided",
	"parity_provided",
	"gravidity_provided",
	"offspring_number_provided",
	"race_ethnicity_provided",
	"genetic_ancestry_provided",
	"maternal_height_provided",
	"maternal_weight_provided",
	"paternal_height_provided",
	"paternal_weight_provided",
	"maternal_age_provided",
	"paternal_age_provided",
	"pregnancy_complications_collected",
	"delivery_mode_provided",
	"pregnancy_complications_list",
	"fetal_complications_listed",
	"fetal_complications_list",
	"other_phenotypes",
	"hospital_center",
	"sample_country",
}

var displayLabels = map[string]string{
	ColumnObjectID:          "Object ID",
	ColumnGSEID:             "GEO Series ID",
	ColumnDataType:          "Data Type",
	"superseries":           "SuperSeries",
	"sample_size":           "Sample Size",
	"title":                 "Title",
	ColumnOrganism:          "Organism",
	"characteristics":       "Characteristics",
	"extracted_molecule":    "Extracted Molecule",
	"extraction_protocol":   "Extraction Protocol",
	ColumnLibraryStrategy:   "Library Strategy",
	"library_source":        "Library Source",
	"library_selection":     "Library Selection",
	"instrument_model":      "Instrument Model",
	"assay_description":     "Assay Description",
	"data_processing":       "Data Processing",
	"platform_id":           "Platform ID",
	"sra_study_id":          "SRA Study ID",
	"bioproject_id":         "BioProject ID",
	"file_types":            "File Types",
	"submission_date":       "Submission Date",
	"last_update_date":      "Last Update Date",
	"organization_name":     "Organization",
	"contact_name":          "Contact Name",
	"email":                 "Email",
	"country":               "Country",
	"pmid":                  "PubMed ID",
	"pmcid":                 "PMC ID",
	"doi":                   "DOI",
	"supervisor_name":       "Supervisor/PI Name",
	"supervisor_email":      "Supervisor/PI Email",
	"main_topic":            "Main Topic",
	"pregnancy_trimester":   "Pregnancy Trimester",
	"birthweight_provided":  "Birthweight Provided",
	"ga_delivery_provided":  "GA at Delivery Provided",
	"ga_delivery_weeks":     "GA at Delivery (weeks)",
	"ga_collection_provided": "GA at Collection Provided",
	"ga_collection_weeks":   "GA at Collection (weeks)",
	"sex_provided":          "Sex of Offspring Provided",
	"parity_provided":       "Parity Provided",
	"gravidity_provided":    "Gravidity Provided",
	"offspring_number_provided": "Offspring Number Provided",
	"race_ethnicity_provided":   "Race/Ethnicity Provided",
	"genetic_ancestry_provided": "Genetic Ancestry Provided",
	"maternal_height_provided":  "Maternal Height Provided",
	"maternal_weight_provided":  "Maternal Weight Provided",
	"paternal_height_provided":  "Paternal Height Provided",
	"paternal_weight_provided":  "Paternal Weight Provided",
	"maternal_age_provided":     "Maternal Age Provided",
	"paternal_age_provided":     "Paternal Age Provided",
	"pregnancy_complications_collected": "Pregnancy Complications Collected",
	"delivery_mode_provided":       "Delivery Mode Provided",
	"pregnancy_complications_list": "Pregnancy Complications",
	"fetal_complications_listed":   "Fetal Complications Listed",
	"fetal_complications_list":     "Fetal Complications",
	"other_phenotypes":             "Other Phenotypes",
	"hospital_center":              "Hospital/Center",
	"sample_country":               "Sample Collection Country",
}

// Columns returns every storage column in table order, object_id first.
func Columns() []string {
	cols := make([]string, len(columnOrder))
	copy(cols, columnOrder)
	return cols
}

// SearchColumns returns the columns the free-text predicate runs against:
// every column except the primary identifier, in table order.
func SearchColumns() []string {
	return Columns()[1:]
}

// Label returns the human-readable label for a column, falling back to the
// column identifier itself.
func Label(column string) string {
	if label, ok := displayLabels[column]; ok {
		return label
	}
	return column
}

// KnownColumn reports whether the identifier names a storage column.
func KnownColumn(column string) bool {
	_, ok := displayLabels[column]
	return ok
}
