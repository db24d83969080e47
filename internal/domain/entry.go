package domain

// Entry is one GEO series metadata record. The record set is loaded once by
// the import command and never mutated by the serving path, so entries carry
// no created/updated bookkeeping.
type Entry struct {
	ObjectID                        int64  `json:"object_id"`
	GSEID                           string `json:"gse_id"`
	DataType                        string `json:"data_type"`
	Superseries                     string `json:"superseries"`
	SampleSize                      string `json:"sample_size"`
	Title                           string `json:"title"`
	Organism                        string `json:"organism"`
	Characteristics                 string `json:"characteristics"`
	ExtractedMolecule               string `json:"extracted_molecule"`
	ExtractionProtocol              string `json:"extraction_protocol"`
	LibraryStrategy                 string `json:"library_strategy"`
	LibrarySource                   string `json:"library_source"`
	LibrarySelection                string `json:"library_selection"`
	InstrumentModel                 string `json:"instrument_model"`
	AssayDescription                string `json:"assay_description"`
	DataProcessing                  string `json:"data_processing"`
	PlatformID                      string `json:"platform_id"`
	SRAStudyID                      string `json:"sra_study_id"`
	BioprojectID                    string `json:"bioproject_id"`
	FileTypes                       string `json:"file_types"`
	SubmissionDate                  string `json:"submission_date"`
	LastUpdateDate                  string `json:"last_update_date"`
	OrganizationName                string `json:"organization_name"`
	ContactName                     string `json:"contact_name"`
	Email                           string `json:"email"`
	Country                         string `json:"country"`
	PMID                            string `json:"pmid"`
	PMCID                           string `json:"pmcid"`
	DOI                             string `json:"doi"`
	SupervisorName                  string `json:"supervisor_name"`
	SupervisorEmail                 string `json:"supervisor_email"`
	MainTopic                       string `json:"main_topic"`
	PregnancyTrimester              string `json:"pregnancy_trimester"`
	BirthweightProvided             string `json:"birthweight_provided"`
	GADeliveryProvided              string `json:"ga_delivery_provided"`
	GADeliveryWeeks                 string `json:"ga_delivery_weeks"`
	GACollectionProvided            string `json:"ga_collection_provided"`
	GACollectionWeeks               string `json:"ga_collection_weeks"`
	SexProvided                     string `json:"sex_provided"`
	ParityProvided                  string `json:"parity_provided"`
	GravidityProvided               string `json:"gravidity_provided"`
	OffspringNumberProvided         string `json:"offspring_number_provided"`
	RaceEthnicityProvided           string `json:"race_ethnicity_provided"`
	GeneticAncestryProvided         string `json:"genetic_ancestry_provided"`
	MaternalHeightProvided          string `json:"maternal_height_provided"`
	MaternalWeightProvided          string `json:"maternal_weight_provided"`
	PaternalHeightProvided          string `json:"paternal_height_provided"`
	PaternalWeightProvided          string `json:"paternal_weight_provided"`
	MaternalAgeProvided             string `json:"maternal_age_provided"`
	PaternalAgeProvided             string `json:"paternal_age_provided"`
	PregnancyComplicationsCollected string `json:"pregnancy_complications_collected"`
	DeliveryModeProvided            string `json:"delivery_mode_provided"`
	PregnancyComplicationsList      string `json:"pregnancy_complications_list"`
	FetalComplicationsListed        string `json:"fetal_complications_listed"`
	FetalComplicationsList          string `json:"fetal_complications_list"`
	OtherPhenotypes                 string `json:"other_phenotypes"`
	HospitalCenter                  string `json:"hospital_center"`
	SampleCountry                   string `json:"sample_country"`
}

// Field pairs a column with its display label and this entry's value, in
// registry order. Used by the detail view.
type Field struct {
	Column string
	Label  string
	Value  string
}

// Fields returns every descriptive column of the entry in registry order.
func (e *Entry) Fields() []Field {
	cols := SearchColumns()
	fields := make([]Field, 0, len(cols))
	for _, col := range cols {
		fields = append(fields, Field{Column: col, Label: Label(col), Value: e.Value(col)})
	}
	return fields
}

// Value returns the entry's value for a descriptive column, or the empty
// string for an unknown column.
func (e *Entry) Value(column string) string {
	get, ok := entryValues[column]
	if !ok {
		return ""
	}
	return get(e)
}

var entryValues = map[string]func(*Entry) string{
	ColumnGSEID:                       func(e *Entry) string { return e.GSEID },
	ColumnDataType:                    func(e *Entry) string { return e.DataType },
	"superseries":                     func(e *Entry) string { return e.Superseries },
	"sample_size":                     func(e *Entry) string { return e.SampleSize },
	"title":                           func(e *Entry) string { return e.Title },
	ColumnOrganism:                    func(e *Entry) string { return e.Organism },
	"characteristics":                 func(e *Entry) string { return e.Characteristics },
	"extracted_molecule":              func(e *Entry) string { return e.ExtractedMolecule },
	"extraction_protocol":             func(e *Entry) string { return e.ExtractionProtocol },
	ColumnLibraryStrategy:             func(e *Entry) string { return e.LibraryStrategy },
	"library_source":                  func(e *Entry) string { return e.LibrarySource },
	"library_selection":               func(e *Entry) string { return e.LibrarySelection },
	"instrument_model":                func(e *Entry) string { return e.InstrumentModel },
	"assay_description":               func(e *Entry) string { return e.AssayDescription },
	"data_processing":                 func(e *Entry) string { return e.DataProcessing },
	"platform_id":                     func(e *Entry) string { return e.PlatformID },
	"sra_study_id":                    func(e *Entry) string { return e.SRAStudyID },
	"bioproject_id":                   func(e *Entry) string { return e.BioprojectID },
	"file_types":                      func(e *Entry) string { return e.FileTypes },
	"submission_date":                 func(e *Entry) string { return e.SubmissionDate },
	"last_update_date":                func(e *Entry) string { return e.LastUpdateDate },
	"organization_name":               func(e *Entry) string { return e.OrganizationName },
	"contact_name":                    func(e *Entry) string { return e.ContactName },
	"email":                           func(e *Entry) string { return e.Email },
	"country":                         func(e *Entry) string { return e.Country },
	"pmid":                            func(e *Entry) string { return e.PMID },
	"pmcid":                           func(e *Entry) string { return e.PMCID },
	"doi":                             func(e *Entry) string { return e.DOI },
	"supervisor_name":                 func(e *Entry) string { return e.SupervisorName },
	"supervisor_email":                func(e *Entry) string { return e.SupervisorEmail },
	"main_topic":                      func(e *Entry) string { return e.MainTopic },
	"pregnancy_trimester":             func(e *Entry) string { return e.PregnancyTrimester },
	"birthweight_provided":            func(e *Entry) string { return e.BirthweightProvided },
	"ga_delivery_provided":            func(e *Entry) string { return e.GADeliveryProvided },
	"ga_delivery_weeks":               func(e *Entry) string { return e.GADeliveryWeeks },
	"ga_collection_provided":          func(e *Entry) string { return e.GACollectionProvided },
	"ga_collection_weeks":             func(e *Entry) string { return e.GACollectionWeeks },
	"sex_provided":                    func(e *Entry) string { return e.SexProvided },
	"parity_provided":                 func(e *Entry) string { return e.ParityProvided },
	"gravidity_provided":              func(e *Entry) string { return e.GravidityProvided },
	"offspring_number_provided":       func(e *Entry) string { return e.OffspringNumberProvided },
	"race_ethnicity_provided":         func(e *Entry) string { return e.RaceEthnicityProvided },
	"genetic_ancestry_provided":       func(e *Entry) string { return e.GeneticAncestryProvided },
	"maternal_height_provided":        func(e *Entry) string { return e.MaternalHeightProvided },
	"maternal_weight_provided":        func(e *Entry) string { return e.MaternalWeightProvided },
	"paternal_height_provided":        func(e *Entry) string { return e.PaternalHeightProvided },
	"paternal_weight_provided":        func(e *Entry) string { return e.PaternalWeightProvided },
	"maternal_age_provided":           func(e *Entry) string { return e.MaternalAgeProvided },
	"paternal_age_provided":           func(e *Entry) string { return e.PaternalAgeProvided },
	"pregnancy_complications_collected": func(e *Entry) string { return e.PregnancyComplicationsCollected },
	"delivery_mode_provided":          func(e *Entry) string { return e.DeliveryModeProvided },
	"pregnancy_complications_list":    func(e *Entry) string { return e.PregnancyComplicationsList },
	"fetal_complications_listed":      func(e *Entry) string { return e.FetalComplicationsListed },
	"fetal_complications_list":        func(e *Entry) string { return e.FetalComplicationsList },
	"other_phenotypes":                func(e *Entry) string { return e.OtherPhenotypes },
	"hospital_center":                 func(e *Entry) string { return e.HospitalCenter },
	"sample_country":                  func(e *Entry) string { return e.SampleCountry },
}
